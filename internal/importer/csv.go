// ABOUTME: Bulk CSV import into the food library.
// ABOUTME: Maps nutrition-dataset headers onto library columns.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/aurafoods/calorie/internal/storage"
)

// Result reports the outcome of a bulk import.
type Result struct {
	Imported int // rows newly inserted
	Skipped  int // rows whose name was already defined
}

// columnAliases maps the headers found in public nutrition datasets to
// the library column each feeds.
var columnAliases = map[string]string{
	"dish name":         "food_name",
	"food_name":         "food_name",
	"calories (kcal)":   "calories",
	"calories":          "calories",
	"protein (g)":       "protein_g",
	"protein_g":         "protein_g",
	"carbohydrates (g)": "carbs_g",
	"carbs_g":           "carbs_g",
	"fats (g)":          "fat_g",
	"fat_g":             "fat_g",
}

// ImportCSV reads food definitions from r and bulk-inserts them into the
// user's library, append-only. Names already defined are skipped; their
// stored values stay authoritative. The first row must be a header
// containing at least the name and calories columns.
func ImportCSV(repo storage.Repository, userID int64, r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int)
	for i, h := range header {
		if name, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			cols[name] = i
		}
	}
	if _, ok := cols["food_name"]; !ok {
		return nil, fmt.Errorf("header has no food name column")
	}
	if _, ok := cols["calories"]; !ok {
		return nil, fmt.Errorf("header has no calories column")
	}

	var foods []*models.Food
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		f, err := parseRow(userID, cols, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		foods = append(foods, f)
	}

	inserted, err := repo.BulkDefineFoods(foods)
	if err != nil {
		return nil, err
	}
	return &Result{Imported: inserted, Skipped: len(foods) - inserted}, nil
}

func parseRow(userID int64, cols map[string]int, record []string) (*models.Food, error) {
	name := strings.TrimSpace(record[cols["food_name"]])
	if name == "" {
		return nil, fmt.Errorf("empty food name")
	}

	cal, err := parseField(cols, record, "calories")
	if err != nil {
		return nil, err
	}
	protein, err := parseField(cols, record, "protein_g")
	if err != nil {
		return nil, err
	}
	carbs, err := parseField(cols, record, "carbs_g")
	if err != nil {
		return nil, err
	}
	fat, err := parseField(cols, record, "fat_g")
	if err != nil {
		return nil, err
	}

	// Datasets often carry fractional calories; the library stores whole kcal.
	return models.NewFood(userID, name, int(math.Round(cal))).WithMacros(protein, carbs, fat), nil
}

// parseField reads an optional numeric column, treating a missing
// column or empty cell as zero.
func parseField(cols map[string]int, record []string, name string) (float64, error) {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return 0, nil
	}
	cell := strings.TrimSpace(record[i])
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, cell)
	}
	return v, nil
}
