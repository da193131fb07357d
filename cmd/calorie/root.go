// ABOUTME: Root Cobra command for calorie CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/aurafoods/calorie/internal/config"
	"github.com/aurafoods/calorie/internal/storage"
	"github.com/aurafoods/calorie/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	repo storage.Repository
	trk  *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "calorie",
	Short: "Personal calorie and nutrition tracker",
	Long: `Calorie is a CLI tool for tracking daily food intake against a goal.

HOW IT WORKS:

  Foods live in a per-user library with nutrition per serving. Logging a
  food copies its values into the day's log, scaled by a quantity. The
  summary adds up the day's log and compares it to your calorie goal.
  Log entries are snapshots: changing the library later never rewrites
  what you already logged.

QUICK START:

  $ calorie add "Rice" 200 --protein 4 --carbs 45 --fat 0.5   # Define and log a food
  $ calorie log "Rice" --qty 2          # Log 2 servings from the library
  $ calorie search Ric                  # Find foods by name prefix
  $ calorie today                       # Today's log and running totals
  $ calorie summary --date 2024-01-01   # Totals for another day

BULK IMPORT:

  $ calorie import foods.csv            # Load a nutrition dataset into the library

MCP INTEGRATION:

  Run 'calorie mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "calorie": { "command": "calorie", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in a SQLite file at ~/.local/share/calorie/calorie.db.
  Set data_dir in ~/.config/calorie/config.json to move it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		trk = tracker.New(repo, cfg.GetUserID())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
