package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
)

func setupEntryStore(t *testing.T) *EntryStore {
	return NewEntryStore(setupTestDB(t))
}

func mustUpsert(t *testing.T, store *EntryStore, draft model.Draft) *UpsertResult {
	t.Helper()
	res, err := store.Upsert(draft)
	require.NoError(t, err)
	return res
}

// =============================================================================
// Load/Save Tests
// =============================================================================

func TestLoadEmptyStore(t *testing.T) {
	store := setupEntryStore(t)

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupEntryStore(t)

	saved := []model.Entry{
		{ID: "a", Date: "2024-03-01", Start: "09:00", End: "17:00", Location: "Office", Hours: 8},
		{ID: "b", Date: "2024-03-02", Start: "10:00", End: "12:30", Location: "Home", Hours: 2.5},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, saved, loaded)
}

func TestLoadCorruptBlock(t *testing.T) {
	db := setupTestDB(t)
	store := NewEntryStore(db)

	require.NoError(t, db.SetBytes(model.KeyEntries, []byte("{not json")))

	entries, err := store.Load()
	assert.True(t, IsCorruptData(err))
	// Views keep rendering from an empty collection while the error is
	// surfaced to the caller.
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

// =============================================================================
// Upsert Tests
// =============================================================================

func TestUpsertCreates(t *testing.T) {
	store := setupEntryStore(t)

	res := mustUpsert(t, store, model.Draft{
		Date: "2024-03-01", Start: "09:00", End: "17:30", Location: "  Office  ",
	})

	assert.NotEmpty(t, res.Entry.ID)
	assert.Equal(t, 8.5, res.Entry.Hours)
	assert.Equal(t, "Office", res.Entry.Location)
	assert.False(t, res.Replaced)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, res.Entries, loaded)
}

func TestUpsertRejectsNonPositiveHours(t *testing.T) {
	store := setupEntryStore(t)
	mustUpsert(t, store, model.Draft{Date: "2024-03-01", Start: "09:00", End: "17:00"})

	before, err := store.Load()
	require.NoError(t, err)

	for _, draft := range []model.Draft{
		{Date: "2024-03-02", Start: "10:00", End: "09:00"},
		{Date: "2024-03-02", Start: "09:00", End: "09:00"},
	} {
		_, err := store.Upsert(draft)
		assert.ErrorIs(t, err, apperrors.ErrEndNotAfterStart)
	}

	// No partial write happened
	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpsertReplacesSameDate(t *testing.T) {
	store := setupEntryStore(t)

	old := mustUpsert(t, store, model.Draft{
		Date: "2024-03-01", Start: "08:00", End: "12:00", Location: "Old place",
	})
	other := mustUpsert(t, store, model.Draft{
		Date: "2024-03-02", Start: "09:00", End: "17:00", Location: "Other day",
	})

	res := mustUpsert(t, store, model.Draft{
		Date: "2024-03-01", Start: "10:00", End: "18:30", Location: "New place",
	})
	assert.True(t, res.Replaced)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	byDate := make(map[string]model.Entry)
	for _, e := range loaded {
		byDate[e.Date] = e
	}

	// Old same-day values are gone, only the new ones remain.
	replacement := byDate["2024-03-01"]
	assert.NotEqual(t, old.Entry.ID, replacement.ID)
	assert.Equal(t, "10:00", replacement.Start)
	assert.Equal(t, "18:30", replacement.End)
	assert.Equal(t, "New place", replacement.Location)
	assert.Equal(t, 8.5, replacement.Hours)

	// Entries for other dates are untouched.
	assert.Equal(t, other.Entry, byDate["2024-03-02"])
}

func TestUpsertNeverDuplicatesDates(t *testing.T) {
	store := setupEntryStore(t)

	drafts := []model.Draft{
		{Date: "2024-03-01", Start: "08:00", End: "09:00"},
		{Date: "2024-03-01", Start: "09:00", End: "10:00"},
		{Date: "2024-03-02", Start: "08:00", End: "09:00"},
		{Date: "2024-03-01", Start: "10:00", End: "11:00"},
		{Date: "2024-03-02", Start: "09:00", End: "10:00"},
	}
	for _, d := range drafts {
		mustUpsert(t, store, d)
	}

	loaded, err := store.Load()
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, e := range loaded {
		seen[e.Date]++
	}
	for date, count := range seen {
		assert.Equal(t, 1, count, "date %s appears %d times", date, count)
	}
	assert.Len(t, loaded, 2)
}

func TestUpsertRefusesCorruptBlock(t *testing.T) {
	db := setupTestDB(t)
	store := NewEntryStore(db)
	require.NoError(t, db.SetBytes(model.KeyEntries, []byte("garbage")))

	_, err := store.Upsert(model.Draft{Date: "2024-03-01", Start: "09:00", End: "17:00"})
	assert.True(t, IsCorruptData(err))

	// The corrupt block is left in place as evidence.
	raw, err := db.GetBytes(model.KeyEntries)
	require.NoError(t, err)
	assert.Equal(t, []byte("garbage"), raw)
}

// =============================================================================
// ClearMonth Tests
// =============================================================================

func TestClearMonth(t *testing.T) {
	store := setupEntryStore(t)
	mustUpsert(t, store, model.Draft{Date: "2024-03-01", Start: "09:00", End: "17:00"})
	mustUpsert(t, store, model.Draft{Date: "2024-03-15", Start: "09:00", End: "17:00"})
	kept := mustUpsert(t, store, model.Draft{Date: "2024-04-01", Start: "09:00", End: "17:00"})

	remaining, removed, err := store.ClearMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.Entry, remaining[0])

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, remaining, loaded)
}

func TestClearMonthEmptyTarget(t *testing.T) {
	store := setupEntryStore(t)
	mustUpsert(t, store, model.Draft{Date: "2024-04-01", Start: "09:00", End: "17:00"})

	before, err := store.Load()
	require.NoError(t, err)

	_, _, err = store.ClearMonth("2024-03")
	assert.ErrorIs(t, err, apperrors.ErrEmptyMonth)

	// Zero writes on an empty target
	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// =============================================================================
// ThemeStore Tests
// =============================================================================

func TestThemeStoreDefault(t *testing.T) {
	store := NewThemeStore(setupTestDB(t))

	theme, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, theme.Mode)
}

func TestThemeStoreSetGet(t *testing.T) {
	db := setupTestDB(t)
	store := NewThemeStore(db)

	require.NoError(t, store.Set(model.ThemeDark))
	theme, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, theme.Mode)

	err = store.Set("sepia")
	assert.True(t, apperrors.IsUserError(err))
}

func TestThemeKeyIndependentOfEntries(t *testing.T) {
	db := setupTestDB(t)
	entries := NewEntryStore(db)
	themes := NewThemeStore(db)

	res, err := entries.Upsert(model.Draft{Date: "2024-03-01", Start: "09:00", End: "17:00"})
	require.NoError(t, err)
	require.NoError(t, themes.Set(model.ThemeDark))

	loaded, err := entries.Load()
	require.NoError(t, err)
	assert.Equal(t, res.Entries, loaded)

	theme, err := themes.Get()
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, theme.Mode)
}
