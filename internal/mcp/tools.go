// ABOUTME: MCP tool implementations for the calorie tracker.
// ABOUTME: Exposes logging, library search, and daily summary operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a food from the library, scaled by a serving quantity",
	}, s.handleLogFood)

	// add_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_food",
		Description: "Define a new food in the library and log one serving of it",
	}, s.handleAddFood)

	// search_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food library by name prefix",
	}, s.handleSearchFoods)

	// list_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_day",
		Description: "List all log entries for a calendar date",
	}, s.handleListDay)

	// get_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_summary",
		Description: "Get daily nutrition totals and progress against the calorie goal",
	}, s.handleGetSummary)
}

// Tool input/output types

type logFoodInput struct {
	Name     string  `json:"name" jsonschema:"Food name as stored in the library"`
	Quantity float64 `json:"quantity,omitempty" jsonschema:"Serving multiplier (default 1)"`
	Date     string  `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type addFoodInput struct {
	Name     string  `json:"name" jsonschema:"Food name"`
	Calories int     `json:"calories" jsonschema:"Calories per serving (kcal)"`
	ProteinG float64 `json:"protein_g,omitempty" jsonschema:"Protein per serving in grams"`
	CarbsG   float64 `json:"carbs_g,omitempty" jsonschema:"Carbs per serving in grams"`
	FatG     float64 `json:"fat_g,omitempty" jsonschema:"Fat per serving in grams"`
	Date     string  `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type entryOutput struct {
	FoodName string  `json:"food_name"`
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Message  string  `json:"message"`
}

type searchFoodsInput struct {
	Prefix string `json:"prefix" jsonschema:"Name prefix to match (case-sensitive)"`
}

type listDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type summaryOutput struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	TotalProteinG float64 `json:"total_protein_g"`
	TotalCarbsG   float64 `json:"total_carbs_g"`
	TotalFatG     float64 `json:"total_fat_g"`
	CalorieGoal   int     `json:"calorie_goal"`
	Progress      float64 `json:"progress"`
	Message       string  `json:"message"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	e, err := s.tracker.LogFood(input.Name, input.Quantity, date)
	if err != nil {
		return nil, entryOutput{}, err
	}

	return nil, entryFromModel(e, fmt.Sprintf("Logged %g x %s: %.0f kcal", e.Quantity, e.FoodName, e.Calories)), nil
}

func (s *Server) handleAddFood(ctx context.Context, req *mcp.CallToolRequest, input addFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	e, err := s.tracker.AddFood(input.Name, input.Calories, input.ProteinG, input.CarbsG, input.FatG, date)
	if err != nil {
		return nil, entryOutput{}, err
	}

	return nil, entryFromModel(e, fmt.Sprintf("Added %s to the library and logged one serving (%.0f kcal)", e.FoodName, e.Calories)), nil
}

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchFoodsInput) (*mcp.CallToolResult, any, error) {
	names, err := s.tracker.Search(input.Prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search foods: %w", err)
	}

	if len(names) == 0 {
		return nil, map[string]interface{}{"message": "No matching foods."}, nil
	}

	return nil, map[string]interface{}{"names": names}, nil
}

func (s *Server) handleListDay(ctx context.Context, req *mcp.CallToolRequest, input listDayInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	entries, err := s.tracker.ListDay(date)
	if err != nil {
		return nil, nil, err
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": fmt.Sprintf("No entries on %s.", date)}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, input listDayInput) (*mcp.CallToolResult, summaryOutput, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	sum, err := s.tracker.Summarize(date)
	if err != nil {
		return nil, summaryOutput{}, err
	}

	return nil, summaryOutput{
		Date:          sum.Date,
		TotalCalories: sum.TotalCalories,
		TotalProteinG: sum.TotalProteinG,
		TotalCarbsG:   sum.TotalCarbsG,
		TotalFatG:     sum.TotalFatG,
		CalorieGoal:   sum.CalorieGoal,
		Progress:      sum.Progress,
		Message: fmt.Sprintf("%.0f / %d kcal (%.0f%% of goal)",
			sum.TotalCalories, sum.CalorieGoal, sum.Progress*100),
	}, nil
}

func entryFromModel(e *models.LogEntry, msg string) entryOutput {
	return entryOutput{
		FoodName: e.FoodName,
		Date:     e.EntryDate,
		Quantity: e.Quantity,
		Calories: e.Calories,
		ProteinG: e.ProteinG,
		CarbsG:   e.CarbsG,
		FatG:     e.FatG,
		Message:  msg,
	}
}
