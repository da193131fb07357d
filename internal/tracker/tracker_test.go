// ABOUTME: Tests for tracker logging workflows and the daily summary.
// ABOUTME: Uses a real SQLite repository in a temp directory.
package tracker

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/aurafoods/calorie/internal/storage"
)

func setupTracker(t *testing.T) *Tracker {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db, models.DefaultUserID)
}

func TestLogFoodScalesByQuantity(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Rice", 200, 4, 45, 0.5, "2023-12-31"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}

	e, err := tr.LogFood("Rice", 2, "2024-01-01")
	if err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}
	if e.Calories != 400 || e.ProteinG != 8 || e.CarbsG != 90 || e.FatG != 1.0 {
		t.Errorf("scaled values mismatch: %+v", e)
	}
	if e.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", e.Quantity)
	}
}

func TestLogFoodNotFound(t *testing.T) {
	tr := setupTracker(t)

	_, err := tr.LogFood("Rice", 1, "2024-01-01")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLogFoodRejectsNonPositiveQuantity(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Rice", 200, 4, 45, 0.5, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}

	for _, qty := range []float64{0, -1, -0.5} {
		_, err := tr.LogFood("Rice", qty, "2024-01-01")
		if !errors.Is(err, ErrValidation) {
			t.Errorf("quantity %g: expected ErrValidation, got %v", qty, err)
		}
	}

	// Validation happens before any write
	entries, err := tr.ListDay("2024-01-01")
	if err != nil {
		t.Fatalf("ListDay failed: %v", err)
	}
	if len(entries) != 1 { // only the AddFood entry
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestLogFoodRejectsBadDate(t *testing.T) {
	tr := setupTracker(t)

	_, err := tr.LogFood("Rice", 1, "01/02/2024")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestAddFoodLogsOneServingUnscaled(t *testing.T) {
	tr := setupTracker(t)

	e, err := tr.AddFood("Apple", 95, 0.5, 25, 0.3, "2024-01-01")
	if err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	if e.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1", e.Quantity)
	}
	if e.Calories != 95 || e.ProteinG != 0.5 || e.CarbsG != 25 || e.FatG != 0.3 {
		t.Errorf("unscaled values mismatch: %+v", e)
	}

	// Subsequent logging resolves the same definition
	logged, err := tr.LogFood("Apple", 1, "2024-01-01")
	if err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}
	if logged.Calories != 95 || logged.ProteinG != 0.5 || logged.CarbsG != 25 || logged.FatG != 0.3 {
		t.Errorf("library definition mismatch: %+v", logged)
	}
}

func TestAddFoodValidation(t *testing.T) {
	tr := setupTracker(t)

	tests := []struct {
		name     string
		food     string
		calories int
	}{
		{"empty name", "", 100},
		{"negative calories", "Rice", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.AddFood(tt.food, tt.calories, 0, 0, 0, "2024-01-01")
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAddFoodTwiceKeepsFirstDefinition(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Rice", 200, 4, 45, 0.5, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	// Second add under the same name discards the new values.
	if _, err := tr.AddFood("Rice", 999, 9, 9, 9, "2024-01-01"); err != nil {
		t.Fatalf("second AddFood failed: %v", err)
	}

	e, err := tr.LogFood("Rice", 1, "2024-01-02")
	if err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}
	if e.Calories != 200 {
		t.Errorf("Calories = %v, want first definition's 200", e.Calories)
	}
}

func TestSummarizeRiceScenario(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Rice", 200, 4, 45, 0.5, "2023-12-31"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	if _, err := tr.LogFood("Rice", 2, "2024-01-01"); err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}

	s, err := tr.Summarize("2024-01-01")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.TotalCalories != 400 {
		t.Errorf("TotalCalories = %v, want 400", s.TotalCalories)
	}
	if s.TotalProteinG != 8 {
		t.Errorf("TotalProteinG = %v, want 8", s.TotalProteinG)
	}
	if s.TotalCarbsG != 90 {
		t.Errorf("TotalCarbsG = %v, want 90", s.TotalCarbsG)
	}
	if s.TotalFatG != 1.0 {
		t.Errorf("TotalFatG = %v, want 1.0", s.TotalFatG)
	}
	if s.CalorieGoal != 2000 {
		t.Errorf("CalorieGoal = %v, want 2000", s.CalorieGoal)
	}
	if s.Progress != 0.2 {
		t.Errorf("Progress = %v, want 0.2", s.Progress)
	}
}

func TestSummarizeEmptyDay(t *testing.T) {
	tr := setupTracker(t)

	s, err := tr.Summarize("2024-01-01")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.TotalCalories != 0 || s.TotalProteinG != 0 || s.TotalCarbsG != 0 || s.TotalFatG != 0 {
		t.Errorf("empty day should be all zeros: %+v", s)
	}
	if s.Progress != 0 {
		t.Errorf("Progress = %v, want 0", s.Progress)
	}
}

func TestSummarizeMatchesListDaySums(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Rice", 200, 4, 45, 0.5, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	if _, err := tr.AddFood("Dal", 150, 9, 20, 3, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	if _, err := tr.LogFood("Rice", 1.5, "2024-01-01"); err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}

	entries, err := tr.ListDay("2024-01-01")
	if err != nil {
		t.Fatalf("ListDay failed: %v", err)
	}
	var cal, pro, carb, fat float64
	for _, e := range entries {
		cal += e.Calories
		pro += e.ProteinG
		carb += e.CarbsG
		fat += e.FatG
	}

	s, err := tr.Summarize("2024-01-01")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.TotalCalories != cal || s.TotalProteinG != pro || s.TotalCarbsG != carb || s.TotalFatG != fat {
		t.Errorf("summary %+v does not match list sums (%v, %v, %v, %v)", s, cal, pro, carb, fat)
	}

	// Re-running after read-only operations yields identical totals.
	s2, err := tr.Summarize("2024-01-01")
	if err != nil {
		t.Fatalf("second Summarize failed: %v", err)
	}
	if *s2 != *s {
		t.Errorf("summary not stable: %+v vs %+v", s, s2)
	}
}

func TestSummarizeProgressUnclamped(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Feast", 3000, 0, 0, 0, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}

	s, err := tr.Summarize("2024-01-01")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Progress != 1.5 {
		t.Errorf("Progress = %v, want 1.5 (unclamped)", s.Progress)
	}
}

func TestSearchScenario(t *testing.T) {
	tr := setupTracker(t)

	if _, err := tr.AddFood("Rice", 200, 0, 0, 0, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	if _, err := tr.AddFood("Ricotta", 170, 0, 0, 0, "2024-01-01"); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}

	names, err := tr.Search("Ric")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 matches, got %v", names)
	}

	empty, err := tr.Search("")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("empty prefix should return nothing, got %v", empty)
	}
}
