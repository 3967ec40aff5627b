package storage

import (
	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
)

// ThemeStore persists the display preference under its own key,
// entirely separate from entry data.
type ThemeStore struct {
	db *DB
}

// NewThemeStore creates a new theme store.
func NewThemeStore(db *DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// Get retrieves the stored preference, defaulting to light when unset.
func (s *ThemeStore) Get() (*model.Theme, error) {
	theme := &model.Theme{}
	err := s.db.Get(model.KeyTheme, theme)
	if err == nil {
		return theme, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, apperrors.NewSystemError("failed to read theme preference", err)
	}

	return model.NewTheme(model.ThemeLight), nil
}

// Set stores the preference.
func (s *ThemeStore) Set(mode string) error {
	if !model.ValidThemeMode(mode) {
		return apperrors.NewUserErrorWithField("theme", mode,
			"Invalid theme",
			"Use 'light' or 'dark'")
	}
	return s.db.Set(model.NewTheme(mode))
}
