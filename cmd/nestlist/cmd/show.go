package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbmrq/nestlist/internal/tree"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a tree file",
		Long: `Print a tree file as an indented tree, or as rendered markdown with
--markdown.

Examples:
  nestlist show projects.yaml
  nestlist show projects.yaml --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
	cmd.Flags().BoolP("markdown", "m", false, "Render as markdown")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	l, err := loadTree(treePath(args))
	if err != nil {
		return err
	}

	markdown, _ := cmd.Flags().GetBool("markdown")
	if !markdown {
		fmt.Fprintln(cmd.OutOrStdout(), tree.Render(l))
		return nil
	}

	out, err := tree.RenderMarkdown(l, terminalWidth(cmd))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// terminalWidth returns the width of the command's output terminal, or 0 when
// it is not a terminal.
func terminalWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
