package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	nesterr "github.com/dbmrq/nestlist/internal/errors"
	"github.com/dbmrq/nestlist/internal/logging"
	"github.com/dbmrq/nestlist/internal/session"
	"github.com/dbmrq/nestlist/internal/tui"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open a tree file in the interactive editor",
		Long: `Open a tree file in the interactive editor.

The file is YAML, or JSON when it ends in .json. Saving writes the whole
tree back to the file, or to --output when given. Lists left empty are
dropped from the saved tree.

Keys:
  ↓/j ↑/k      move the selection (wraps)
  ←/h          clear the selection
  e/→/enter    open the selected item's list
  b            back to the previous list
  a            add items to the selected item's list
  d            delete the selected item
  W/ctrl+s     save
  q            quit (asks first when there are unsaved changes)

Examples:
  nestlist edit projects.yaml
  nestlist edit projects.yaml -o projects.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}
	addOutputFlag(cmd)
	return cmd
}

// runEdit is the entry point for both "nestlist" and "nestlist edit".
func runEdit(cmd *cobra.Command, args []string) error {
	path := treePath(args)
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return err
	}

	closeLog := initLogging(cmd, cfg)
	defer closeLog()

	root, err := loadTree(path)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	ctx, sessionID := sessionContext(ctx, path)
	log := logging.Global().WithContext(ctx)
	out := outputPath(cmd, path)

	s, err := session.New(root, session.Options{
		Pages:  cfg.Pages,
		Save:   newSaveFunc(out, cfg.Save.Notice, log),
		Logger: log,
	})
	if err != nil {
		if reportEmptyRoot(cmd, path, err) {
			return nil
		}
		return err
	}

	log.Info("edit session started", "items", root.Count(), "depth", root.Depth(), "output", out)

	err = tui.Run(ctx, s, tui.Options{
		SessionID: sessionID,
		NoticeTTL: cfg.Save.NoticeTTL,
		Input:     cmd.InOrStdin(),
		Output:    cmd.OutOrStdout(),
	})
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("edit session interrupted", "unsaved", s.Dirty())
		return nesterr.ContextCancelled("edit session")
	case err != nil:
		log.Error("edit session failed", "error", err)
		return err
	}

	log.Info("edit session ended", "unsaved", s.Dirty())
	return nil
}
