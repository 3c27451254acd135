package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nesterr "github.com/dbmrq/nestlist/internal/errors"
	"github.com/dbmrq/nestlist/internal/logging"
	"github.com/dbmrq/nestlist/internal/session"
	"github.com/dbmrq/nestlist/internal/tree"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Run a script of editor commands against a tree file",
		Long: `Run a script of editor commands against a tree file without a terminal.

The script has one command per line, the same operations the editor keys
perform:
  down, up, left, back, edit, add, type <text>, backspace, enter, esc,
  delete, save, quit
Blank lines and lines starting with # are ignored.

Save commands only write the file with --write. The final tree is printed
when the script ends.

Examples:
  nestlist replay projects.yaml --script add-task.txt
  nestlist replay projects.yaml --script add-task.txt --write -o out.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplay,
	}
	cmd.Flags().StringP("script", "s", "", "Script file to replay (required)")
	cmd.Flags().BoolP("write", "w", false, "Write the tree on save commands")
	addOutputFlag(cmd)
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	path := treePath(args)
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return err
	}

	closeLog := initLogging(cmd, cfg)
	defer closeLog()

	scriptPath, _ := cmd.Flags().GetString("script")
	events, err := readScript(scriptPath)
	if err != nil {
		return err
	}

	root, err := loadTree(path)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	ctx, _ = sessionContext(ctx, path)
	log := logging.Global().WithContext(ctx)

	write, _ := cmd.Flags().GetBool("write")
	out := outputPath(cmd, path)

	saves := 0
	save := func(tree.List) string {
		saves++
		return "dry run: not written"
	}
	if write {
		persist := newSaveFunc(out, cfg.Save.Notice, log)
		save = func(l tree.List) string {
			saves++
			return persist(l)
		}
	}

	s, err := session.New(root, session.Options{
		Pages:  cfg.Pages,
		Save:   save,
		Logger: log,
	})
	if err != nil {
		if reportEmptyRoot(cmd, path, err) {
			return nil
		}
		return err
	}

	log.Info("replay started", "script", scriptPath, "events", len(events), "write", write)

	err = s.Run(ctx, session.Feed(ctx, events))
	if errors.Is(err, context.Canceled) {
		return nesterr.ContextCancelled("replay")
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tree.Render(s.Tree()))
	if n := s.Notice(); n != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), n)
	}
	if s.Dirty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "unsaved changes at end of script")
	}

	log.Info("replay finished", "saves", saves, "unsaved", s.Dirty())
	return nil
}

// readScript parses the replay script at path.
func readScript(path string) ([]session.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nesterr.Wrap(err, nesterr.ErrScript, "cannot open script "+path)
	}
	defer f.Close()

	events, err := session.ParseScript(f)
	if ne, ok := nesterr.As(err); ok {
		return nil, ne.WithDetails("script", path)
	}
	return events, err
}
