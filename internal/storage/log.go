// ABOUTME: Daily log operations for SQLite storage.
// ABOUTME: Append-only consumption entries plus the atomic define-and-log pair.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
)

const insertEntrySQL = `
	INSERT INTO food_log (user_id, entry_date, quantity, food_name, calories, protein_g, carbs_g, fat_g)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// AppendEntry stores one log entry. Nutrition fields are taken verbatim;
// scaling is the caller's responsibility.
func (d *DB) AppendEntry(e *models.LogEntry) error {
	res, err := d.db.Exec(insertEntrySQL,
		e.UserID, e.EntryDate, e.Quantity, e.FoodName,
		e.Calories, e.ProteinG, e.CarbsG, e.FatG)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	e.LogID, _ = res.LastInsertId()
	return nil
}

// ListDay retrieves all entries for that exact user and date, in
// insertion order. An empty day yields an empty slice, never an error.
func (d *DB) ListDay(userID int64, date string) ([]*models.LogEntry, error) {
	query := `
		SELECT log_id, user_id, entry_date, quantity, food_name, calories, protein_g, carbs_g, fat_g
		FROM food_log
		WHERE user_id = ? AND entry_date = ?
		ORDER BY log_id
	`
	rows, err := d.db.Query(query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list day: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// DefineAndLog registers a food in the library (insert-if-absent) and
// appends a log entry in one transaction. Both writes succeed or
// neither does.
func (d *DB) DefineAndLog(f *models.Food, e *models.LogEntry) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin define and log: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT OR IGNORE INTO food_library (user_id, food_name, calories, protein_g, carbs_g, fat_g)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.UserID, f.Name, f.Calories, f.ProteinG, f.CarbsG, f.FatG)
	if err != nil {
		return fmt.Errorf("define food: %w", err)
	}

	res, err := tx.Exec(insertEntrySQL,
		e.UserID, e.EntryDate, e.Quantity, e.FoodName,
		e.Calories, e.ProteinG, e.CarbsG, e.FatG)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit define and log: %w", err)
	}
	e.LogID, _ = res.LastInsertId()
	return nil
}

// scanEntries scans multiple rows into a slice of LogEntries.
func scanEntries(rows *sql.Rows) ([]*models.LogEntry, error) {
	var entries []*models.LogEntry

	for rows.Next() {
		var e models.LogEntry
		var protein, carbs, fat sql.NullFloat64

		err := rows.Scan(&e.LogID, &e.UserID, &e.EntryDate, &e.Quantity,
			&e.FoodName, &e.Calories, &protein, &carbs, &fat)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		e.ProteinG = protein.Float64
		e.CarbsG = carbs.Float64
		e.FatG = fat.Float64

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
