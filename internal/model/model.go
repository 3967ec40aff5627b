// Package model defines the domain models for workhours.
package model

// Model is the interface that singleton database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Database keys. The entry collection lives as one serialized block
// under KeyEntries; the theme preference has its own key and its own
// lifecycle and must never be conflated with entry data.
const (
	KeyEntries = "entries"
	KeyTheme   = "theme"
)
