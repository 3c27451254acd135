// Package session runs an interactive editing session over a list hierarchy.
//
// A Session owns the navigation engine and the add-mode text buffer, and
// turns input events into engine operations one at a time. It is not safe
// for concurrent use; the event producer hands events over a channel.
package session

import (
	"context"

	"github.com/dbmrq/nestlist/internal/arena"
	"github.com/dbmrq/nestlist/internal/config"
	"github.com/dbmrq/nestlist/internal/errors"
	"github.com/dbmrq/nestlist/internal/logging"
	"github.com/dbmrq/nestlist/internal/nav"
	"github.com/dbmrq/nestlist/internal/tree"
)

// SaveFunc receives the reconstructed tree on save. A non-empty return value
// is shown to the user as a notice; an empty one clears any notice.
type SaveFunc func(tree.List) string

// Options configures a session.
type Options struct {
	// Pages is the per-depth configuration.
	Pages config.Pages
	// Save is called on save events. Nil disables saving.
	Save SaveFunc
	// Logger receives debug output. Defaults to the global logger.
	Logger *logging.Logger
}

// Session is one editing session.
type Session struct {
	engine  *nav.Engine
	save    SaveFunc
	log     *logging.Logger
	mode    Mode
	buffer  []rune
	notice  string
	running bool
	dirty   bool
}

// New flattens root and starts a session over it. It fails with an
// errors.ErrEmptyRoot error when root has no items.
func New(root tree.List, opts Options) (*Session, error) {
	if root.IsEmpty() {
		return nil, errors.EmptyRoot(root.Name)
	}

	log := opts.Logger
	if log == nil {
		log = logging.Global()
	}

	return &Session{
		engine:  nav.FromTree(root, opts.Pages),
		save:    opts.Save,
		log:     log,
		running: true,
	}, nil
}

// Engine exposes the navigation engine for rendering.
func (s *Session) Engine() *nav.Engine {
	return s.engine
}

// Mode returns the current input mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Buffer returns the add-mode text typed so far.
func (s *Session) Buffer() string {
	return string(s.buffer)
}

// Notice returns the transient notice, or "".
func (s *Session) Notice() string {
	return s.notice
}

// ClearNotice removes the transient notice.
func (s *Session) ClearNotice() {
	s.notice = ""
}

// Dirty reports whether items were added or deleted since the last save.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Running returns false once the session has been stopped.
func (s *Session) Running() bool {
	return s.running
}

// Stop ends the session. Any partially typed item is discarded.
func (s *Session) Stop() {
	s.leaveAddMode()
	s.running = false
}

// Tree reconstructs the current tree.
func (s *Session) Tree() tree.List {
	return s.engine.Tree()
}

// Run handles events until an exit event, until events is closed, or until
// ctx is cancelled, in which case ctx's error is returned.
func (s *Session) Run(ctx context.Context, events <-chan Event) error {
	for s.running {
		if err := ctx.Err(); err != nil {
			s.Stop()
			return err
		}

		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				s.Stop()
				return nil
			}
			s.Handle(ev)
		}
	}
	return nil
}

// Handle applies a single event and reports whether anything changed.
// Events that do not apply in the current mode or state are ignored.
func (s *Session) Handle(ev Event) bool {
	if !s.running {
		return false
	}

	var changed bool
	if s.mode == ModeAdd {
		changed = s.handleAdd(ev)
	} else {
		changed = s.handleNavigate(ev)
	}

	if !changed {
		s.log.Debug("event ignored",
			"event", ev.Kind.String(),
			"mode", s.mode.String(),
			"depth", s.engine.Depth())
	}
	return changed
}

func (s *Session) handleNavigate(ev Event) bool {
	e := s.engine

	switch ev.Kind {
	case EventNext:
		return e.MoveSelection(arena.Forward)
	case EventPrev:
		return e.MoveSelection(arena.Backward)
	case EventCollapse:
		return e.ClearSelection()
	case EventBack:
		if !e.Ascend() {
			return false
		}
		s.ClearNotice()
		return true
	case EventDescend:
		if !e.Descend() {
			return false
		}
		s.ClearNotice()
		return true
	case EventAdd:
		if e.Page().DisableAdd {
			return false
		}
		s.mode = ModeAdd
		s.buffer = s.buffer[:0]
		return true
	case EventDelete:
		if !e.DeleteSelected() {
			return false
		}
		s.dirty = true
		return true
	case EventSave:
		return s.doSave()
	case EventExit:
		s.Stop()
		return true
	}
	return false
}

func (s *Session) handleAdd(ev Event) bool {
	switch ev.Kind {
	case EventChar:
		s.buffer = append(s.buffer, ev.Rune)
		return true
	case EventBackspace:
		if len(s.buffer) == 0 {
			return false
		}
		s.buffer = s.buffer[:len(s.buffer)-1]
		return true
	case EventConfirm:
		text := string(s.buffer)
		s.leaveAddMode()
		if text != "" && s.engine.AddItem(text, text) {
			s.dirty = true
			s.log.Debug("item added", "name", text, "depth", s.engine.Depth())
		}
		return true
	case EventCancel:
		s.leaveAddMode()
		return true
	case EventExit:
		s.Stop()
		return true
	}
	return false
}

func (s *Session) leaveAddMode() {
	s.mode = ModeNavigate
	s.buffer = s.buffer[:0]
}

func (s *Session) doSave() bool {
	if s.save == nil || s.engine.Page().DisableSave {
		return false
	}

	t := s.engine.Tree()
	s.notice = s.save(t)
	s.dirty = false
	s.log.Info("tree saved",
		"list", t.Name,
		"items", t.Count(),
		"orphans", s.engine.Arena().Orphans(s.engine.Root()))
	return true
}
