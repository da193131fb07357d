// ABOUTME: Food library operations for SQLite storage.
// ABOUTME: Insert-if-absent definitions, exact lookup, and prefix search.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
)

// DefineFood inserts a food definition keyed on (user_id, food_name).
// If the pair already exists the call is a silent no-op; the stored
// values stay authoritative and are never overwritten.
func (d *DB) DefineFood(f *models.Food) error {
	query := `
		INSERT OR IGNORE INTO food_library (user_id, food_name, calories, protein_g, carbs_g, fat_g)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query, f.UserID, f.Name, f.Calories, f.ProteinG, f.CarbsG, f.FatG)
	if err != nil {
		return fmt.Errorf("define food: %w", err)
	}
	return nil
}

// GetFood retrieves a library item by exact name. Returns ErrNotFound
// when no such item exists for the user.
func (d *DB) GetFood(userID int64, name string) (*models.Food, error) {
	query := `
		SELECT food_id, user_id, food_name, calories, protein_g, carbs_g, fat_g
		FROM food_library
		WHERE user_id = ? AND food_name = ?
	`
	return scanFood(d.db.QueryRow(query, userID, name))
}

// SearchFoods returns the names of library items whose name starts with
// prefix, in storage order. An empty prefix returns no results.
func (d *DB) SearchFoods(userID int64, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, nil
	}

	query := `SELECT food_name FROM food_library WHERE user_id = ? AND food_name LIKE ? || '%'`
	rows, err := d.db.Query(query, userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan food name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// BulkDefineFoods inserts many definitions in a single transaction,
// skipping names already present. Returns the number actually inserted.
func (d *DB) BulkDefineFoods(foods []*models.Food) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin bulk define: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO food_library (user_id, food_name, calories, protein_g, carbs_g, fat_g)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare bulk define: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, f := range foods {
		res, err := stmt.Exec(f.UserID, f.Name, f.Calories, f.ProteinG, f.CarbsG, f.FatG)
		if err != nil {
			return 0, fmt.Errorf("bulk define %q: %w", f.Name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("bulk define %q: %w", f.Name, err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bulk define: %w", err)
	}
	return inserted, nil
}

// scanFood scans a single row into a Food struct.
func scanFood(row *sql.Row) (*models.Food, error) {
	var f models.Food
	var protein, carbs, fat sql.NullFloat64

	err := row.Scan(&f.FoodID, &f.UserID, &f.Name, &f.Calories, &protein, &carbs, &fat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan food: %w", err)
	}

	// Absent macros read as zero
	f.ProteinG = protein.Float64
	f.CarbsG = carbs.Float64
	f.FatG = fat.Float64

	return &f, nil
}
