// ABOUTME: User row access for SQLite storage.
// ABOUTME: Goals are read-only; the row is seeded at provisioning time.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
)

// GetUser retrieves a user with their daily goals. Returns ErrNotFound
// when no such user exists.
func (d *DB) GetUser(userID int64) (*models.User, error) {
	query := `
		SELECT user_id, username, daily_calorie_goal, daily_protein_goal, daily_carbs_goal, daily_fat_goal
		FROM users
		WHERE user_id = ?
	`

	var u models.User
	var protein, carbs, fat sql.NullInt64
	err := d.db.QueryRow(query, userID).Scan(
		&u.UserID, &u.Username, &u.DailyCalorieGoal, &protein, &carbs, &fat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if protein.Valid {
		v := int(protein.Int64)
		u.DailyProteinGoal = &v
	}
	if carbs.Valid {
		v := int(carbs.Int64)
		u.DailyCarbsGoal = &v
	}
	if fat.Valid {
		v := int(fat.Int64)
		u.DailyFatGoal = &v
	}

	return &u, nil
}
