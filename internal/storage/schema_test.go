// ABOUTME: Tests for schema provisioning and the default user seed.
// ABOUTME: Verifies idempotence and seed values.
package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aurafoods/calorie/internal/models"
)

func TestOpenSeedsDefaultUser(t *testing.T) {
	db := setupTestDB(t)

	u, err := db.GetUser(models.DefaultUserID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.Username != models.DefaultUsername {
		t.Errorf("Username = %q, want %q", u.Username, models.DefaultUsername)
	}
	if u.DailyCalorieGoal != models.DefaultCalorieGoal {
		t.Errorf("DailyCalorieGoal = %d, want %d", u.DailyCalorieGoal, models.DefaultCalorieGoal)
	}
	if u.DailyProteinGoal != nil || u.DailyCarbsGoal != nil || u.DailyFatGoal != nil {
		t.Errorf("macro goals should be unset on the seeded user: %+v", u)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	// Write some state, reopen, and verify nothing was reset.
	f := models.NewFood(1, "Rice", 200)
	if err := db.DefineFood(f); err != nil {
		t.Fatalf("DefineFood failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db2.Close()

	got, err := db2.GetFood(1, "Rice")
	if err != nil {
		t.Fatalf("GetFood after reopen failed: %v", err)
	}
	if got.Calories != 200 {
		t.Errorf("Calories = %d, want 200", got.Calories)
	}

	var count int
	if err := db2.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user after reopen, got %d", count)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetUser(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
