// ABOUTME: LogEntry model for daily consumption records.
// ABOUTME: Entries are append-only, quantity-scaled snapshots of a food.
package models

import "time"

// DateLayout is the calendar-date form used for entry dates (no time part).
const DateLayout = "2006-01-02"

// LogEntry is one consumption event. Nutrition fields are already
// scaled by Quantity at creation time.
type LogEntry struct {
	LogID     int64
	UserID    int64
	EntryDate string
	Quantity  float64
	FoodName  string
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatG      float64
}

// Today returns the current calendar date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether s is a canonical calendar date. Dates are
// compared as strings in storage, so non-padded forms are rejected
// rather than silently creating a second key for the same day.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}
