package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "replacium",
		Short: "Search-and-replace TUI for code comments",
		Long:  "Replacium: Search and edit the comments of a source tree in a two-pane TUI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args)
		},
	}

	root.PersistentFlags().StringP("root", "r", ".", "Path to the source tree root (default: current dir)")

	// Add subcommands
	root.AddCommand(newEditCmd())
	root.AddCommand(newGrepCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
