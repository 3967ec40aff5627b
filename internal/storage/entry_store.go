package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/timecalc"
)

// EntryStore persists the whole shift collection as a single serialized
// block under one key. Every mutation is a read-modify-write of the
// entire collection; the substrate only guarantees atomicity of the
// single write.
type EntryStore struct {
	db *DB
}

// NewEntryStore creates a new entry store.
func NewEntryStore(db *DB) *EntryStore {
	return &EntryStore{db: db}
}

// CorruptDataError reports a block under the entries key that no longer
// deserializes into the entry collection. The collection is treated as
// empty for the session, but the corruption must be surfaced, never
// silently discarded.
type CorruptDataError struct {
	Cause error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("stored entries are corrupt: %v", e.Cause)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Cause
}

// IsCorruptData reports whether err carries a CorruptDataError.
func IsCorruptData(err error) bool {
	var ce *CorruptDataError
	return apperrors.As(err, &ce)
}

// Load reads the full collection. A missing key yields an empty
// collection and no error. An undecodable block yields an empty
// collection together with a CorruptDataError so callers can keep
// rendering while reporting the data loss.
func (s *EntryStore) Load() ([]model.Entry, error) {
	data, err := s.db.GetBytes(model.KeyEntries)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return []model.Entry{}, nil
		}
		return nil, apperrors.NewSystemError("failed to read entries", err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []model.Entry{}, &CorruptDataError{Cause: err}
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// Save serializes the full collection and writes it back under the
// entries key, replacing the previous block wholesale.
func (s *EntryStore) Save(entries []model.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return apperrors.NewSystemError("failed to serialize entries", err)
	}
	if err := s.db.SetBytes(model.KeyEntries, data); err != nil {
		return apperrors.NewSystemError("failed to persist entries", err)
	}
	return nil
}

// UpsertResult describes a completed upsert.
type UpsertResult struct {
	Entry    model.Entry   // the newly created entry
	Entries  []model.Entry // collection snapshot after the save
	Replaced bool          // an earlier entry for the same date was removed
}

// Upsert validates the draft, removes any existing entry for the same
// date, appends a new entry with a fresh ID and the computed hours, and
// persists the result. Replace-by-date deliberately caps the store at
// one entry per date even though IDs could support more. Nothing is
// written when validation fails.
func (s *EntryStore) Upsert(draft model.Draft) (*UpsertResult, error) {
	hours, err := timecalc.ComputeHours(draft.Start, draft.End)
	if err != nil {
		return nil, err
	}
	if hours <= 0 {
		return nil, apperrors.ErrEndNotAfterStart
	}

	entries, err := s.Load()
	if err != nil {
		// Refuse to write over a corrupt block; overwriting would
		// destroy the evidence of data loss.
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.NewSystemError("failed to generate entry ID", err)
	}

	entry := model.Entry{
		ID:       id.String(),
		Date:     draft.Date,
		Start:    draft.Start,
		End:      draft.End,
		Location: strings.TrimSpace(draft.Location),
		Hours:    hours,
	}

	updated := make([]model.Entry, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if e.Date == entry.Date {
			replaced = true
			continue
		}
		updated = append(updated, e)
	}
	updated = append(updated, entry)

	if err := s.Save(updated); err != nil {
		return nil, err
	}

	return &UpsertResult{
		Entry:    entry,
		Entries:  updated,
		Replaced: replaced,
	}, nil
}

// ClearMonth removes every entry whose date falls in the given YYYY-MM
// month and persists the remainder. It returns the surviving snapshot
// and the number of removed entries. A month with no entries is
// rejected with ErrEmptyMonth before any write.
func (s *EntryStore) ClearMonth(yearMonth string) ([]model.Entry, int, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, 0, err
	}

	remaining := make([]model.Entry, 0, len(entries))
	removed := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Date, yearMonth) {
			removed++
			continue
		}
		remaining = append(remaining, e)
	}

	if removed == 0 {
		return entries, 0, apperrors.ErrEmptyMonth
	}

	if err := s.Save(remaining); err != nil {
		return nil, 0, err
	}
	return remaining, removed, nil
}
