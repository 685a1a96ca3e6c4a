package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/replacium/internal/tui"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [paths...]",
		Short: "Open the TUI over the tree's comments",
		RunE:  runEdit,
	}
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	root := mustGetStringFlag(cmd.Root(), "root")
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %q is not a directory", root)
	}
	return tui.Run(root, args)
}
