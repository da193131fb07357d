// ABOUTME: Food library item model with per-serving nutrition values.
// ABOUTME: Snapshot produces a quantity-scaled log entry from a food.
package models

// Food is a named food definition in a user's library.
// Nutrition values are per serving (quantity = 1).
type Food struct {
	FoodID   int64
	UserID   int64
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// NewFood creates a library item for the given user.
func NewFood(userID int64, name string, calories int) *Food {
	return &Food{
		UserID:   userID,
		Name:     name,
		Calories: calories,
	}
}

// WithMacros sets the optional macro values in grams.
func (f *Food) WithMacros(protein, carbs, fat float64) *Food {
	f.ProteinG = protein
	f.CarbsG = carbs
	f.FatG = fat
	return f
}

// Snapshot builds a log entry from this food for the given date,
// multiplying every nutrition field by quantity. The entry keeps a
// denormalized copy of the food name; later library edits never
// affect entries already written.
func (f *Food) Snapshot(date string, quantity float64) *LogEntry {
	return &LogEntry{
		UserID:    f.UserID,
		EntryDate: date,
		Quantity:  quantity,
		FoodName:  f.Name,
		Calories:  float64(f.Calories) * quantity,
		ProteinG:  f.ProteinG * quantity,
		CarbsG:    f.CarbsG * quantity,
		FatG:      f.FatG * quantity,
	}
}
