package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dbmrq/nestlist/internal/errors"
	"github.com/dbmrq/nestlist/internal/logging"
	"github.com/dbmrq/nestlist/internal/session"
)

// Options configures Run.
type Options struct {
	// SessionID is shown in the header.
	SessionID string
	// NoticeTTL is how long a save notice stays up. Zero keeps it.
	NoticeTTL time.Duration
	// Input defaults to os.Stdin.
	Input io.Reader
	// Output defaults to os.Stdout.
	Output io.Writer
	// NoAltScreen draws inline instead of in the alternate screen buffer.
	NoAltScreen bool
}

// Run drives s interactively until the user exits or ctx is cancelled. It
// fails with an errors.ErrTerminal error when the input or output is a file
// that is not a terminal, or when the program cannot start.
func Run(ctx context.Context, s *session.Session, opts Options) error {
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	if err := checkTerminal("stdin", in); err != nil {
		return err
	}
	if err := checkTerminal("stdout", out); err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if !opts.NoAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	model := NewModel(s, opts.SessionID, opts.NoticeTTL)
	program := tea.NewProgram(model, progOpts...)

	logging.Debug("starting terminal session", "session_id", opts.SessionID)
	_, err := program.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		s.Stop()
		return ctxErr
	}
	if err != nil {
		s.Stop()
		return errors.TerminalUnavailable(err)
	}
	return nil
}

// checkTerminal rejects files that are not terminals. Other readers and
// writers, such as pipes set up by tests, are accepted as they are.
func checkTerminal(name string, v any) error {
	f, ok := v.(*os.File)
	if !ok {
		return nil
	}
	if !term.IsTerminal(int(f.Fd())) {
		return errors.TerminalUnavailable(fmt.Errorf("%s is not a terminal", name))
	}
	return nil
}
