package output

import (
	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/view"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SaveResponse represents the add command output in JSON.
type SaveResponse struct {
	Status   string        `json:"status"`
	Entry    model.Entry   `json:"entry"`
	Replaced bool          `json:"replaced"`
	Today    *TodayOutput  `json:"today,omitempty"`
	Recent   []model.Entry `json:"recent"`
}

// TodayOutput represents the day rollup in JSON.
type TodayOutput struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"total_hours"`
}

// NewTodayOutput converts a rollup, keeping nil for "no status".
func NewTodayOutput(status *view.TodayStatus) *TodayOutput {
	if status == nil {
		return nil
	}
	return &TodayOutput{Date: status.Date, TotalHours: status.TotalHours}
}

// RecentResponse represents the recent command output in JSON.
type RecentResponse struct {
	Entries     []model.Entry `json:"entries"`
	Today       *TodayOutput  `json:"today,omitempty"`
	Suggestions []string      `json:"suggestions"`
}

// MonthResponse represents the month command output in JSON.
type MonthResponse struct {
	YearMonth string        `json:"year_month"`
	Entries   []model.Entry `json:"entries"`
	Total     float64       `json:"total"`
	Count     int           `json:"count"`
	Average   float64       `json:"average"`
}

// NewMonthResponse converts a month view.
func NewMonthResponse(month view.Month) *MonthResponse {
	return &MonthResponse{
		YearMonth: month.YearMonth,
		Entries:   month.Entries,
		Total:     month.Totals.Total,
		Count:     month.Totals.Count,
		Average:   month.Totals.Average,
	}
}

// ClearResponse represents the clear command output in JSON.
type ClearResponse struct {
	Status    string `json:"status"`
	YearMonth string `json:"year_month"`
	Removed   int    `json:"removed"`
	Remaining int    `json:"remaining"`
}

// ExportResponse represents the export command output in JSON.
type ExportResponse struct {
	Status    string `json:"status"`
	YearMonth string `json:"year_month"`
	File      string `json:"file"`
	Count     int    `json:"count"`
}

// ThemeResponse represents the theme command output in JSON.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
