// ABOUTME: Tracker service: logging workflows and the daily summary aggregator.
// ABOUTME: Owns quantity scaling, validation, and goal progress arithmetic.
package tracker

import (
	"errors"
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/aurafoods/calorie/internal/storage"
)

// Tracker wraps a storage repository with the logging and summary
// workflows for a single user. The user id is threaded explicitly so
// the core stays multi-user ready.
type Tracker struct {
	repo   storage.Repository
	userID int64
}

// New creates a Tracker for the given user.
func New(repo storage.Repository, userID int64) *Tracker {
	return &Tracker{repo: repo, userID: userID}
}

// UserID returns the user this tracker operates on.
func (t *Tracker) UserID() int64 {
	return t.userID
}

// LogFood logs a library item for the given date, scaling its
// per-serving nutrition by quantity. Returns ErrNotFound when the name
// is not in the library and ErrValidation for bad input.
func (t *Tracker) LogFood(name string, quantity float64, date string) (*models.LogEntry, error) {
	if name == "" {
		return nil, validationf("food name is required")
	}
	if quantity <= 0 {
		return nil, validationf("quantity must be positive, got %g", quantity)
	}
	if !models.ValidDate(date) {
		return nil, validationf("date must be YYYY-MM-DD, got %q", date)
	}

	f, err := t.repo.GetFood(t.userID, name)
	if err != nil {
		return nil, err
	}

	e := f.Snapshot(date, quantity)
	if err := t.repo.AppendEntry(e); err != nil {
		return nil, err
	}
	return e, nil
}

// AddFood defines a new food in the library and logs exactly one
// serving of it for the given date, atomically. If the name is already
// defined, the existing definition stays authoritative and only the
// log entry is written.
func (t *Tracker) AddFood(name string, calories int, protein, carbs, fat float64, date string) (*models.LogEntry, error) {
	if name == "" {
		return nil, validationf("food name is required")
	}
	if calories < 0 {
		return nil, validationf("calories must not be negative, got %d", calories)
	}
	if protein < 0 || carbs < 0 || fat < 0 {
		return nil, validationf("macro values must not be negative")
	}
	if !models.ValidDate(date) {
		return nil, validationf("date must be YYYY-MM-DD, got %q", date)
	}

	f := models.NewFood(t.userID, name, calories).WithMacros(protein, carbs, fat)
	e := f.Snapshot(date, 1)
	if err := t.repo.DefineAndLog(f, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Search returns library names matching the prefix.
func (t *Tracker) Search(prefix string) ([]string, error) {
	return t.repo.SearchFoods(t.userID, prefix)
}

// ListDay returns the day's log entries in insertion order.
func (t *Tracker) ListDay(date string) ([]*models.LogEntry, error) {
	if !models.ValidDate(date) {
		return nil, validationf("date must be YYYY-MM-DD, got %q", date)
	}
	return t.repo.ListDay(t.userID, date)
}

// Summarize computes the day's running totals and progress against the
// user's calorie goal. An empty day yields all-zero totals. A missing
// user row falls back to the default goal; a stored goal of zero or
// less is a data-integrity error.
func (t *Tracker) Summarize(date string) (*models.DailySummary, error) {
	entries, err := t.ListDay(date)
	if err != nil {
		return nil, err
	}

	goal := models.DefaultCalorieGoal
	switch u, err := t.repo.GetUser(t.userID); {
	case err == nil:
		goal = u.DailyCalorieGoal
	case errors.Is(err, storage.ErrNotFound):
		// Defensive fallback; provisioning normally guarantees the row.
	default:
		return nil, err
	}
	if goal <= 0 {
		return nil, fmt.Errorf("daily calorie goal for user %d is %d; database is corrupt", t.userID, goal)
	}

	s := &models.DailySummary{Date: date, CalorieGoal: goal}
	for _, e := range entries {
		s.TotalCalories += e.Calories
		s.TotalProteinG += e.ProteinG
		s.TotalCarbsG += e.CarbsG
		s.TotalFatG += e.FatG
	}
	s.Progress = s.TotalCalories / float64(goal)

	return s, nil
}
