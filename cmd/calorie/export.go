// ABOUTME: CLI commands for exporting and importing calorie data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportDate   string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export calorie data",
	Long: `Export calorie data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable, log grouped by date)
  markdown   One day's log as a Markdown table

OPTIONS:

  --output, -o   Write to file instead of stdout
  --date         Day to export (markdown only, default today)

EXAMPLES:

  calorie export json                        # Export all data as JSON
  calorie export json -o backup.json         # Save to file
  calorie export yaml                        # Export as YAML
  calorie export markdown --date 2024-01-01  # One day as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		case "markdown":
			date, derr := resolveDate(exportDate)
			if derr != nil {
				return derr
			}
			var md string
			md, err = repo.ExportMarkdown(trk.UserID(), date)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importJSONCmd = &cobra.Command{
	Use:   "import-json <file>",
	Short: "Import calorie data from a JSON export",
	Long: `Import foods and log entries from a previously exported JSON file.

Foods already in the library keep their existing definitions; log
entries are appended.

EXAMPLES:

  calorie import-json backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := repo.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "day to export (markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importJSONCmd)
}
