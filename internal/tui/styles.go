// Package tui provides the interactive terminal prompts for workhours.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for interactive prompts.
var (
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
)

// Base styles for prompts.
var (
	// StylePrompt is used for the confirmation question.
	StylePrompt = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// StyleHint is used for the key hint after the question.
	StyleHint = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
