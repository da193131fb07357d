// ABOUTME: CLI command for defining a new food and logging one serving.
// ABOUTME: Parses nutrition flags and reports the logged entry.
package main

import (
	"fmt"
	"strconv"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addProtein float64
	addCarbs   float64
	addFat     float64
	addDate    string
)

var addCmd = &cobra.Command{
	Use:     "add <name> <calories>",
	Aliases: []string{"a"},
	Short:   "Define a new food and log one serving",
	Long: `Define a new food in your library and log exactly one serving of it.

Calories are per serving; macro flags are optional and default to 0.
If the name is already in the library, the existing definition is kept
unchanged and one serving of it is logged.

Examples:
  calorie add "Rice" 200 --protein 4 --carbs 45 --fat 0.5
  calorie add "Apple" 95 --date 2024-01-01
  calorie add "Black Coffee" 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		calories, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		date, err := resolveDate(addDate)
		if err != nil {
			return err
		}

		e, err := trk.AddFood(name, calories, addProtein, addCarbs, addFat, date)
		if err != nil {
			return fmt.Errorf("failed to add food: %w", err)
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  logged 1 serving on %s: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
			e.EntryDate, e.Calories, e.ProteinG, e.CarbsG, e.FatG)

		return nil
	},
}

// resolveDate validates a --date flag value, defaulting to today.
func resolveDate(s string) (string, error) {
	if s == "" {
		return models.Today(), nil
	}
	if !models.ValidDate(s) {
		return "", fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
	}
	return s, nil
}

func init() {
	addCmd.Flags().Float64Var(&addProtein, "protein", 0, "protein per serving (g)")
	addCmd.Flags().Float64Var(&addCarbs, "carbs", 0, "carbs per serving (g)")
	addCmd.Flags().Float64Var(&addFat, "fat", 0, "fat per serving (g)")
	addCmd.Flags().StringVar(&addDate, "date", "", "log date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(addCmd)
}
