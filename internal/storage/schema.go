// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for users, food_library, and food_log.
package storage

import (
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
)

// initSchema creates the database schema. Every statement is
// create-if-not-exists, so running it again is a no-op.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		daily_calorie_goal INTEGER NOT NULL,
		daily_protein_goal INTEGER,
		daily_carbs_goal INTEGER,
		daily_fat_goal INTEGER
	);

	CREATE TABLE IF NOT EXISTS food_library (
		food_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		food_name TEXT NOT NULL,
		calories INTEGER NOT NULL,
		protein_g REAL,
		carbs_g REAL,
		fat_g REAL,
		UNIQUE (user_id, food_name)
	);

	CREATE TABLE IF NOT EXISTS food_log (
		log_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		entry_date TEXT NOT NULL,
		quantity REAL NOT NULL,
		food_name TEXT NOT NULL,
		calories REAL NOT NULL,
		protein_g REAL,
		carbs_g REAL,
		fat_g REAL
	);

	CREATE INDEX IF NOT EXISTS idx_food_log_user_date ON food_log(user_id, entry_date);
	`

	_, err := d.db.Exec(schema)
	return err
}

// seedDefaultUser inserts the default user if it does not exist yet.
// Goal fields keep whatever values a user row already has.
func (d *DB) seedDefaultUser() error {
	var exists int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM users WHERE user_id = ?`, models.DefaultUserID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check default user: %w", err)
	}
	if exists > 0 {
		return nil
	}

	_, err = d.db.Exec(`
		INSERT INTO users (user_id, username, daily_calorie_goal)
		VALUES (?, ?, ?)`,
		models.DefaultUserID, models.DefaultUsername, models.DefaultCalorieGoal)
	if err != nil {
		return fmt.Errorf("insert default user: %w", err)
	}
	return nil
}
