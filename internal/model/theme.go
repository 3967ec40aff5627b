package model

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme holds the light/dark display preference (singleton).
type Theme struct {
	Key  string `json:"key"`
	Mode string `json:"mode"`
}

// SetKey sets the database key for this theme.
func (t *Theme) SetKey(key string) {
	t.Key = key
}

// GetKey returns the database key for this theme.
func (t *Theme) GetKey() string {
	return t.Key
}

// NewTheme creates a theme preference with the given mode.
func NewTheme(mode string) *Theme {
	return &Theme{
		Key:  KeyTheme,
		Mode: mode,
	}
}

// ValidThemeMode reports whether mode is a recognized theme value.
func ValidThemeMode(mode string) bool {
	return mode == ThemeLight || mode == ThemeDark
}
