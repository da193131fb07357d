// ABOUTME: MCP resource implementations for the calorie tracker.
// ABOUTME: Provides calorie://log/today and calorie://summary/today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// calorie://log/today - all entries logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "calorie://log/today",
		Name:        "Today's Food Log",
		Description: "All consumption entries logged today",
		MIMEType:    "application/json",
	}, s.handleTodayLogResource)

	// calorie://summary/today - running totals against the goal
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "calorie://summary/today",
		Name:        "Today's Nutrition Summary",
		Description: "Running daily totals and progress against the calorie goal",
		MIMEType:    "application/json",
	}, s.handleTodaySummaryResource)
}

// Resource handlers

func (s *Server) handleTodayLogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.tracker.ListDay(models.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's log: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "calorie://log/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodaySummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum, err := s.tracker.Summarize(models.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to summarize today: %w", err)
	}

	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "calorie://summary/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
