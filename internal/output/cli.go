package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/view"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleHours = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Hours formats an hour value for emphasis.
func (c *CLIFormatter) Hours(hours float64) string {
	text := FormatHours(hours)
	if c.IsColorEnabled() {
		return styleHours.Render(text)
	}
	return text
}

// EntryLine renders one entry as a single list line.
func (c *CLIFormatter) EntryLine(e model.Entry) string {
	parts := []string{
		DisplayDate(e.Date),
		fmt.Sprintf("%s → %s", e.Start, e.End),
		c.Hours(e.Hours) + "h",
	}
	if e.Location != "" {
		parts = append(parts, e.Location)
	}
	return strings.Join(parts, "  ")
}

// PrintEntryList prints entries one per line with a leading bullet.
func (c *CLIFormatter) PrintEntryList(entries []model.Entry) {
	for _, e := range entries {
		c.Println("  • " + c.EntryLine(e))
	}
}

// PrintMonthTable prints the month's entries and the aggregate footer.
func (c *CLIFormatter) PrintMonthTable(month view.Month) {
	c.Title(fmt.Sprintf("%s (%s)", DisplayMonth(month.YearMonth), month.YearMonth))
	c.Println("")

	if month.Empty() {
		c.Muted("No entries for this month.")
		return
	}

	c.Printf("%-12s %-7s %-7s %8s  %s\n", "date", "start", "end", "hours", "location")
	for _, e := range month.Entries {
		c.Printf("%-12s %-7s %-7s %8s  %s\n", e.Date, e.Start, e.End, FormatHours(e.Hours), e.Location)
	}

	c.Println("")
	c.Printf("Total: %s  Entries: %d  Average: %s\n",
		c.Hours(month.Totals.Total), month.Totals.Count, c.Hours(month.Totals.Average))
}

// PrintTodayStatus prints the day rollup, or nothing when there is no
// status for the day.
func (c *CLIFormatter) PrintTodayStatus(status *view.TodayStatus) {
	if status == nil {
		return
	}
	c.Printf("Saved %s hours for %s.\n", c.Hours(status.TotalHours), status.Date)
}

// PrintSuggestions prints the known-locations line when there are any.
func (c *CLIFormatter) PrintSuggestions(locations []string) {
	if len(locations) == 0 {
		return
	}
	c.Muted("Known locations: " + strings.Join(locations, ", "))
}
