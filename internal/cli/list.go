package cli

import (
	"io"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/errtools/errnogen/internal/errno"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command, a human-readable view of the parsed
// table for checking what the enumeration tool reported.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the parsed error table in a readable form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := loadEntries(cmd.Context())
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
}

func printEntries(w io.Writer, entries []errno.Entry) error {
	t := term.FromEnv()
	width := 80
	if t.IsTerminalOutput() {
		if tw, _, err := t.Size(); err == nil {
			width = tw
		}
	}

	tp := tableprinter.New(w, t.IsTerminalOutput(), width)
	tp.AddHeader([]string{"NAME", "NUMBER", "MESSAGE"})
	for _, e := range entries {
		tp.AddField(e.Name)
		tp.AddField(strconv.Itoa(e.Number))
		tp.AddField(e.Message)
		tp.EndRow()
	}
	return tp.Render()
}
