// ABOUTME: DailySummary model for running totals against the calorie goal.
package models

// DailySummary is the aggregate of one day's log entries.
// Progress is total calories over the goal, unclamped; a value above
// 1.0 means the goal was exceeded.
type DailySummary struct {
	Date          string
	TotalCalories float64
	TotalProteinG float64
	TotalCarbsG   float64
	TotalFatG     float64
	CalorieGoal   int
	Progress      float64
}
