// Package cmd provides the CLI commands for nestlist.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nesterr "github.com/dbmrq/nestlist/internal/errors"
)

// Version information, set from main before Execute.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// DefaultTreeFile is edited when no file argument is given.
const DefaultTreeFile = "nestlist.yaml"

// NewRootCmd builds the command tree. Each call returns fresh commands so
// flag state does not leak between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nestlist [file]",
		Short: "Browse and edit nested lists in the terminal",
		Long: `nestlist opens a tree of nested lists in an interactive terminal editor.

Each item may own a list of its own. Move through the current list, open an
item's list, add and delete items, and save the tree back to its file.
Per-depth page options in .nestlist/config.yaml set titles and turn
operations off for a depth.

With no subcommand, nestlist behaves like "nestlist edit".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEdit,
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("nestlist {{.Version}}\n")

	root.PersistentFlags().String("config", "", "Path to config file (default .nestlist/config.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	addOutputFlag(root)

	root.AddCommand(newEditCmd(), newShowCmd(), newReplayCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, err)
		os.Exit(1)
	}
}

// printError writes err to stderr, with the suggestion for nestlist errors.
func printError(cmd *cobra.Command, err error) {
	if ne, ok := nesterr.As(err); ok {
		cmd.PrintErr(ne.Format())
		return
	}
	cmd.PrintErrln("Error:", err)
}
