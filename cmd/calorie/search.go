// ABOUTME: CLI command for searching the food library.
// ABOUTME: Case-sensitive prefix match on food names.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <prefix>",
	Aliases: []string{"s"},
	Short:   "Search foods by name prefix",
	Long: `Search your food library for names starting with a prefix.

The match is case-sensitive against the stored names.

Examples:
  calorie search Ric      # matches Rice, Ricotta, ...
  calorie search "Dal "   # prefixes may contain spaces`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := trk.Search(args[0])
		if err != nil {
			return fmt.Errorf("failed to search: %w", err)
		}

		if len(names) == 0 {
			fmt.Println("No matching foods.")
			return nil
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
