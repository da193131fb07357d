// ABOUTME: CLI command for bulk importing foods from a CSV file.
// ABOUTME: Loads nutrition datasets into the food library.
package main

import (
	"fmt"
	"os"

	"github.com/aurafoods/calorie/internal/importer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk import foods from a CSV file",
	Long: `Bulk import food definitions from a CSV file into your library.

The file needs a header row. Both dataset-style headers
("Dish Name", "Calories (kcal)", "Protein (g)", "Carbohydrates (g)",
"Fats (g)") and plain ones (food_name, calories, protein_g, carbs_g,
fat_g) are recognized. Names already in your library are skipped; the
existing definitions are kept.

Examples:
  calorie import Indian_Food_Nutrition_Processed.csv
  calorie import my_foods.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		res, err := importer.ImportCSV(repo, trk.UserID(), f)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d foods", res.Imported)
		if res.Skipped > 0 {
			fmt.Printf("  skipped %d already-defined names\n", res.Skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
