package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/storage"
)

func setupStore(t *testing.T, dates ...string) *storage.EntryStore {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := storage.NewEntryStore(db)
	for _, date := range dates {
		_, err := store.Upsert(model.Draft{Date: date, Start: "09:00", End: "17:00"})
		require.NoError(t, err)
	}
	return store
}

func TestClearMonthConfirm(t *testing.T) {
	store := setupStore(t, "2024-03-01", "2024-03-15", "2024-04-01")
	w := NewClearMonth(store)

	assert.Equal(t, Idle, w.State())
	assert.Empty(t, w.YearMonth())

	w.Request("2024-03")
	assert.Equal(t, ConfirmPending, w.State())
	assert.Equal(t, "2024-03", w.YearMonth())

	// Arming alone must not mutate anything.
	entries, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	remaining, removed, err := w.Confirm()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2024-04-01", remaining[0].Date)
	assert.Equal(t, Idle, w.State())
}

func TestClearMonthCancel(t *testing.T) {
	store := setupStore(t, "2024-03-01", "2024-04-01")
	before, err := store.Load()
	require.NoError(t, err)

	w := NewClearMonth(store)
	w.Request("2024-03")
	w.Cancel()
	assert.Equal(t, Idle, w.State())

	// A cancelled clear leaves collection and persisted state untouched.
	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// After cancelling, confirm is no longer possible.
	_, _, err = w.Confirm()
	assert.ErrorIs(t, err, apperrors.ErrNoPendingClear)
}

func TestClearMonthConfirmWhileIdle(t *testing.T) {
	w := NewClearMonth(setupStore(t, "2024-03-01"))

	_, _, err := w.Confirm()
	assert.ErrorIs(t, err, apperrors.ErrNoPendingClear)
}

func TestClearMonthEmptyTarget(t *testing.T) {
	store := setupStore(t, "2024-04-01")
	w := NewClearMonth(store)

	w.Request("2024-03")
	_, _, err := w.Confirm()
	assert.ErrorIs(t, err, apperrors.ErrEmptyMonth)
	assert.Equal(t, Idle, w.State())

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestClearMonthRearm(t *testing.T) {
	store := setupStore(t, "2024-03-01", "2024-04-01")
	w := NewClearMonth(store)

	w.Request("2024-03")
	w.Cancel()
	w.Request("2024-04")

	remaining, removed, err := w.Confirm()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2024-03-01", remaining[0].Date)
}
