package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/replacium/internal/document"
	"github.com/interpretive-systems/replacium/internal/finder"
)

func newGrepCmd() *cobra.Command {
	var opts finder.Options

	cmd := &cobra.Command{
		Use:   "grep <query> [paths...]",
		Short: "Scan comments non-interactively and print matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := mustGetStringFlag(cmd.Root(), "root")

			pat, err := finder.Compile(args[0], opts)
			if err != nil {
				return err
			}

			store, err := document.Load(root, args[1:])
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}

			matches := finder.FindAll(store.Documents(), pat)
			out := cmd.OutOrStdout()
			for _, m := range matches {
				doc, ok := store.Document(m.Path)
				if !ok {
					continue
				}
				frag := doc.Fragments[m.Fragment]
				line := frag.Line + strings.Count(frag.Source[:m.Start], "\n")
				fmt.Fprintf(out, "%s:%d: %s\n", m.Path, line, lineAt(frag.Source, m.Start))
			}
			fmt.Fprintf(out, "%d match(es)\n", len(matches))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Regex, "regex", false, "Treat the query as a regular expression")
	cmd.Flags().BoolVar(&opts.CaseSensitive, "case-sensitive", false, "Match case exactly")
	cmd.Flags().BoolVar(&opts.WholeWord, "word", false, "Match whole words only")
	return cmd
}

// lineAt returns the full line of text containing byte offset pos.
func lineAt(text string, pos int) string {
	if pos > len(text) {
		pos = len(text)
	}
	lo := strings.LastIndexByte(text[:pos], '\n') + 1
	hi := strings.IndexByte(text[pos:], '\n')
	if hi < 0 {
		return text[lo:]
	}
	return text[lo : pos+hi]
}
