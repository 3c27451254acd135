package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/nestlist/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for nestlist.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  nestlist version          # Show detailed version info
  nestlist version --json   # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if !asJSON {
		fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
		return nil
	}

	out, err := info.JSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
