package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbmrq/nestlist/internal/config"
	nesterr "github.com/dbmrq/nestlist/internal/errors"
	"github.com/dbmrq/nestlist/internal/logging"
	"github.com/dbmrq/nestlist/internal/tree"
)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Where saves are written (default: the input file)")
}

// treePath returns the file argument, or DefaultTreeFile.
func treePath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return DefaultTreeFile
}

// outputPath returns the --output flag, or the input file.
func outputPath(cmd *cobra.Command, input string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return input
}

// loadConfig loads the configuration named by --config. Without the flag,
// .nestlist/config.yaml next to the tree file is used if it exists.
func loadConfig(cmd *cobra.Command, treeFile string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.NewLoader().LoadConfigFromDir(filepath.Dir(treeFile))
	}
	if err == nil {
		return cfg, nil
	}

	var loadErr *config.LoadError
	if !errors.As(err, &loadErr) {
		return nil, nesterr.ConfigParseError(path, err)
	}

	var validation config.ValidationErrors
	switch {
	case errors.Is(loadErr.Err, fs.ErrNotExist):
		return nil, nesterr.ConfigNotFound(loadErr.Path)
	case errors.As(loadErr.Err, &validation) && len(validation) > 0:
		first := validation[0]
		var options []string
		if first.Field == "log.level" {
			options = config.ValidLogLevels
		}
		return nil, nesterr.ConfigValidationError(first.Field, validation.Error(), options).
			WithDetails("path", loadErr.Path)
	default:
		return nil, nesterr.ConfigParseError(loadErr.Path, loadErr.Err)
	}
}

// initLogging starts the global file logger from cfg. Failing to log is not
// fatal; a warning is printed and the no-op logger stays in place.
func initLogging(cmd *cobra.Command, cfg *config.Config) func() {
	level := logging.ParseLevel(cfg.Log.Level)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logging.LevelDebug
	}

	err := logging.InitGlobal(&logging.Config{
		Level:       level,
		LogDir:      cfg.Log.Dir,
		MaxLogFiles: cfg.Log.MaxFiles,
		MaxLogAge:   cfg.Log.MaxAge,
		JSONFormat:  cfg.Log.JSON,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}
	return func() { _ = logging.CloseGlobal() }
}

// loadTree reads the tree file at path.
func loadTree(path string) (tree.List, error) {
	l, err := tree.Load(path)
	switch {
	case err == nil:
		return l, nil
	case errors.Is(err, fs.ErrNotExist):
		return tree.List{}, nesterr.TreeNotFound(path)
	default:
		return tree.List{}, nesterr.TreeParseError(path, err)
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// sessionContext tags ctx with a fresh session id and the tree file.
func sessionContext(ctx context.Context, file string) (context.Context, string) {
	id := logging.NewSessionID()
	ctx = logging.WithSessionID(ctx, id)
	ctx = logging.WithFile(ctx, file)
	return ctx, id
}

// newSaveFunc writes saved trees to path and returns the notice to show.
// A failed write is logged and reported in the notice instead.
func newSaveFunc(path, notice string, log *logging.Logger) func(tree.List) string {
	return func(l tree.List) string {
		if err := tree.Save(path, l); err != nil {
			werr := nesterr.TreeWriteError(path, err)
			log.Error("save failed", "path", path, "error", werr)
			return "SAVE FAILED: " + werr.Error()
		}
		log.Debug("tree written", "path", path)
		return notice
	}
}

// reportEmptyRoot prints the empty-root message once. It returns true if err
// was an empty root, which is not a failure.
func reportEmptyRoot(cmd *cobra.Command, path string, err error) bool {
	if !errors.Is(err, nesterr.ErrEmptyRoot) {
		return false
	}
	logging.Warn("nothing to edit", "file", path)
	cmd.PrintErrf("%s: %v\n", path, err)
	return true
}
