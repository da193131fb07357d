// ABOUTME: CLI commands for the daily log listing and nutrition summary.
// ABOUTME: 'today' shows the current day; 'summary' takes a --date flag.
package main

import (
	"fmt"
	"strings"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var summaryDate string

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's log and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printDay(models.Today())
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a day's log and totals",
	Long: `Show the log entries and nutrition summary for one day.

Each entry line shows: QTY  FOOD  CALORIES  PROTEIN  CARBS  FAT
The summary line compares total calories to your daily goal; the
percentage is not capped at 100.

Examples:
  calorie summary                      # today
  calorie summary --date 2024-01-01    # a past day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(summaryDate)
		if err != nil {
			return err
		}
		return printDay(date)
	},
}

func printDay(date string) error {
	entries, err := trk.ListDay(date)
	if err != nil {
		return fmt.Errorf("failed to list day: %w", err)
	}

	sum, err := trk.Summarize(date)
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}

	faint := color.New(color.Faint)

	if len(entries) == 0 {
		fmt.Printf("No entries on %s.\n", date)
	} else {
		for _, e := range entries {
			fmt.Printf("%s %s %s kcal %s\n",
				faint.Sprintf("%5.2gx", e.Quantity),
				padRight(e.FoodName, 24),
				padLeft(fmt.Sprintf("%.0f", e.Calories), 5),
				faint.Sprintf("(%.1fp %.1fc %.1ff)", e.ProteinG, e.CarbsG, e.FatG))
		}
		fmt.Println()
	}

	progress := color.GreenString("%.0f%%", sum.Progress*100)
	if sum.Progress > 1.0 {
		progress = color.RedString("%.0f%%", sum.Progress*100)
	}
	fmt.Printf("%s  %.0f / %d kcal (%s)\n", date, sum.TotalCalories, sum.CalorieGoal, progress)
	fmt.Printf("        protein %.1fg  carbs %.1fg  fat %.1fg\n",
		sum.TotalProteinG, sum.TotalCarbsG, sum.TotalFatG)

	return nil
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func padLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(" ", length-len(s)) + s
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "date to summarize (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(summaryCmd)
}
