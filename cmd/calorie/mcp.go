// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aurafoods/calorie/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your calorie data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "calorie": {
        "command": "calorie",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_food       Log a library food scaled by quantity
  add_food       Define a new food and log one serving
  search_foods   Search the library by name prefix
  list_day       List log entries for a date
  get_summary    Daily totals and goal progress

AVAILABLE RESOURCES:

  calorie://log/today        Today's consumption entries
  calorie://summary/today    Today's totals against the goal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
