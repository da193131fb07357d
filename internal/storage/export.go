// ABOUTME: Export and import functionality for calorie data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for calorie data.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	SnapshotID uuid.UUID          `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Foods      []*models.Food     `json:"foods" yaml:"foods"`
	Entries    []*models.LogEntry `json:"entries" yaml:"entries"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	foods, err := d.listAllFoods()
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	entries, err := d.listAllEntries()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		SnapshotID: uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "calorie",
		Foods:      foods,
		Entries:    entries,
	}, nil
}

// ImportData imports data from an export file. Foods are insert-if-absent;
// log entries are appended as new rows.
func (d *DB) ImportData(data *ExportData) error {
	for _, f := range data.Foods {
		if err := d.DefineFood(f); err != nil {
			return fmt.Errorf("import food: %w", err)
		}
	}

	for _, e := range data.Entries {
		if err := d.AppendEntry(e); err != nil {
			return fmt.Errorf("import entry: %w", err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with entries grouped by date.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                 `yaml:"version"`
		SnapshotID string                 `yaml:"snapshot_id"`
		ExportedAt string                 `yaml:"exported_at"`
		Tool       string                 `yaml:"tool"`
		Foods      []yamlFood             `yaml:"foods"`
		Log        map[string][]yamlEntry `yaml:"log"`
	}{
		Version:    data.Version,
		SnapshotID: data.SnapshotID.String(),
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Foods:      make([]yamlFood, 0, len(data.Foods)),
		Log:        make(map[string][]yamlEntry),
	}

	for _, f := range data.Foods {
		yamlData.Foods = append(yamlData.Foods, yamlFood{
			Name:     f.Name,
			Calories: f.Calories,
			ProteinG: f.ProteinG,
			CarbsG:   f.CarbsG,
			FatG:     f.FatG,
		})
	}

	for _, e := range data.Entries {
		yamlData.Log[e.EntryDate] = append(yamlData.Log[e.EntryDate], yamlEntry{
			Food:     e.FoodName,
			Quantity: e.Quantity,
			Calories: e.Calories,
			ProteinG: e.ProteinG,
			CarbsG:   e.CarbsG,
			FatG:     e.FatG,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlFood struct {
	Name     string  `yaml:"name"`
	Calories int     `yaml:"calories"`
	ProteinG float64 `yaml:"protein_g,omitempty"`
	CarbsG   float64 `yaml:"carbs_g,omitempty"`
	FatG     float64 `yaml:"fat_g,omitempty"`
}

type yamlEntry struct {
	Food     string  `yaml:"food"`
	Quantity float64 `yaml:"quantity"`
	Calories float64 `yaml:"calories"`
	ProteinG float64 `yaml:"protein_g,omitempty"`
	CarbsG   float64 `yaml:"carbs_g,omitempty"`
	FatG     float64 `yaml:"fat_g,omitempty"`
}

// ExportMarkdown exports one day's log as a Markdown table with totals.
func (d *DB) ExportMarkdown(userID int64, date string) (string, error) {
	entries, err := d.ListDay(userID, date)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Food Log - %s\n\n", date))

	if len(entries) == 0 {
		sb.WriteString("No entries.\n")
		return sb.String(), nil
	}

	sb.WriteString("| Qty | Food | Calories | Protein (g) | Carbs (g) | Fat (g) |\n")
	sb.WriteString("|-----|------|----------|-------------|-----------|--------|\n")

	var cal, pro, carb, fat float64
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("| %g | %s | %.0f | %.1f | %.1f | %.1f |\n",
			e.Quantity, e.FoodName, e.Calories, e.ProteinG, e.CarbsG, e.FatG))
		cal += e.Calories
		pro += e.ProteinG
		carb += e.CarbsG
		fat += e.FatG
	}

	sb.WriteString(fmt.Sprintf("\nTotal: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
		cal, pro, carb, fat))

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

func (d *DB) listAllFoods() ([]*models.Food, error) {
	rows, err := d.db.Query(`
		SELECT food_id, user_id, food_name, calories, protein_g, carbs_g, fat_g
		FROM food_library ORDER BY food_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []*models.Food
	for rows.Next() {
		var f models.Food
		var protein, carbs, fat sql.NullFloat64
		if err := rows.Scan(&f.FoodID, &f.UserID, &f.Name, &f.Calories, &protein, &carbs, &fat); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		f.ProteinG = protein.Float64
		f.CarbsG = carbs.Float64
		f.FatG = fat.Float64
		foods = append(foods, &f)
	}
	return foods, rows.Err()
}

func (d *DB) listAllEntries() ([]*models.LogEntry, error) {
	rows, err := d.db.Query(`
		SELECT log_id, user_id, entry_date, quantity, food_name, calories, protein_g, carbs_g, fat_g
		FROM food_log ORDER BY log_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}
