// ABOUTME: CLI command for logging a food from the library.
// ABOUTME: Scales per-serving nutrition by the quantity flag.
package main

import (
	"errors"
	"fmt"

	"github.com/aurafoods/calorie/internal/tracker"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	logQty  float64
	logDate string
)

var logCmd = &cobra.Command{
	Use:     "log <name>",
	Aliases: []string{"l"},
	Short:   "Log a food from your library",
	Long: `Log a consumption entry for a food already in your library.

The stored per-serving nutrition is multiplied by --qty and recorded as
a snapshot for the day. Use 'calorie search' to find exact names.

Examples:
  calorie log "Rice"                    # one serving today
  calorie log "Rice" --qty 2.5          # 2.5 servings
  calorie log "Dal" --date 2024-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		e, err := trk.LogFood(name, logQty, date)
		if err != nil {
			if errors.Is(err, tracker.ErrNotFound) {
				return fmt.Errorf("%q is not in your library; add it with 'calorie add'", name)
			}
			return fmt.Errorf("failed to log food: %w", err)
		}

		color.Green("✓ Logged %g x %s", e.Quantity, e.FoodName)
		fmt.Printf("  %s: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
			e.EntryDate, e.Calories, e.ProteinG, e.CarbsG, e.FatG)

		return nil
	},
}

func init() {
	logCmd.Flags().Float64Var(&logQty, "qty", 1, "serving quantity (must be positive)")
	logCmd.Flags().StringVar(&logDate, "date", "", "log date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
}
