package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/nestlist/internal/config"
	"github.com/dbmrq/nestlist/internal/logging"
	"github.com/dbmrq/nestlist/internal/session"
	"github.com/dbmrq/nestlist/internal/tree"
	"github.com/dbmrq/nestlist/internal/tui/components"
)

func sampleTree() tree.List {
	tasks := tree.NewList("tasks",
		tree.NewItem("t1", "write docs", nil),
		tree.NewItem("t2", "review", nil),
	)
	return tree.NewList("projects",
		tree.NewItem("p1", "nestlist", &tasks),
		tree.NewItem("p2", "garden", nil),
	)
}

func newModel(t *testing.T, opts session.Options, ttl time.Duration) *Model {
	t.Helper()
	opts.Logger = logging.NewNoop()
	if opts.Pages == nil {
		cfg := config.NewConfig()
		cfg.Pages = config.Pages{{Title: "Projects"}, {Title: "Tasks"}}
		cfg.ApplyDefaults()
		opts.Pages = cfg.Pages
	}
	s, err := session.New(sampleTree(), opts)
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	m := NewModel(s, "0123456789abcdef", ttl)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelNavigation(t *testing.T) {
	m := newModel(t, session.Options{}, 0)
	e := m.Session().Engine()

	press(m, runes("j"))
	if got := e.SelectedItem(); got == nil || got.ID != "p2" {
		t.Fatalf("after j SelectedItem() = %+v, want p2", got)
	}

	press(m, runes("k"), tea.KeyMsg{Type: tea.KeyRight})
	if e.Depth() != 1 || e.Current().Name != "tasks" {
		t.Fatalf("after descend at depth %d in %q, want tasks", e.Depth(), e.Current().Name)
	}

	view := m.View()
	for _, want := range []string{"Tasks: tasks", "write docs", "projects › tasks"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q:\n%s", want, view)
		}
	}

	press(m, runes("b"))
	if e.Depth() != 0 {
		t.Errorf("after back Depth() = %d, want 0", e.Depth())
	}
}

func TestModelViewBoxes(t *testing.T) {
	m := newModel(t, session.Options{}, 0)
	view := m.View()

	for _, want := range []string{
		"Projects: projects",
		config.DefaultMenuBoxTitle,
		config.DefaultSelectedBoxTitle,
		config.DefaultListBoxTitle,
		"ID: p1",
		"Name: nestlist",
		"write docs",
		"1/2",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q:\n%s", want, view)
		}
	}

	press(m, runes("h"))
	view = m.View()
	if !strings.Contains(view, "nothing selected") {
		t.Errorf("View() after collapse should show no selection:\n%s", view)
	}
	if !strings.Contains(view, "-/2") {
		t.Errorf("View() after collapse should show no position:\n%s", view)
	}
}

func TestModelAddItem(t *testing.T) {
	m := newModel(t, session.Options{}, 0)
	s := m.Session()

	press(m, runes("j"), runes("a"))
	if s.Mode() != session.ModeAdd {
		t.Fatalf("Mode() = %v, want add", s.Mode())
	}

	// q is typed in add mode, not a quit.
	cmd := press(m, runes("seeds"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("q"))
	if isQuit(cmd) {
		t.Fatal("typing q in add mode should not quit")
	}
	if s.Buffer() != "seeds q" {
		t.Errorf("Buffer() = %q, want %q", s.Buffer(), "seeds q")
	}
	if !strings.Contains(m.View(), config.DefaultBodyBoxTitle) {
		t.Error("add mode should show the input box")
	}

	press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	if s.Mode() != session.ModeNavigate {
		t.Fatalf("Mode() after enter = %v, want navigate", s.Mode())
	}
	if !s.Dirty() {
		t.Error("adding should mark the session dirty")
	}

	sub := s.Engine().SelectedSublist()
	if sub == nil || len(sub.Items) != 1 || sub.Items[0].Name != "seeds" {
		t.Fatalf("SelectedSublist() = %+v, want one item named seeds", sub)
	}
	if !strings.Contains(m.View(), "seeds") {
		t.Error("preview should list the new item")
	}
}

func TestModelAddCancel(t *testing.T) {
	m := newModel(t, session.Options{}, 0)
	s := m.Session()

	press(m, runes("a"), runes("draft"), tea.KeyMsg{Type: tea.KeyEsc})
	if s.Mode() != session.ModeNavigate {
		t.Fatalf("Mode() = %v, want navigate", s.Mode())
	}
	if s.Dirty() {
		t.Error("cancel should not change the tree")
	}
	if m.input.Value() != "" {
		t.Errorf("input value = %q, want cleared", m.input.Value())
	}
}

func TestModelDisabledOperations(t *testing.T) {
	pages := config.Pages{{Title: "Projects", DisableAdd: true, DisableDelete: true, DisableEdit: true}}
	m := newModel(t, session.Options{Pages: pages}, 0)
	s := m.Session()

	press(m, runes("a"), runes("d"), runes("e"))
	if s.Mode() != session.ModeNavigate {
		t.Error("add should be disabled")
	}
	if len(s.Engine().Current().Items) != 2 {
		t.Error("delete should be disabled")
	}
	if s.Engine().Depth() != 0 {
		t.Error("descend should be disabled")
	}
}

func TestModelSaveNotice(t *testing.T) {
	var saved tree.List
	opts := session.Options{
		Save: func(l tree.List) string {
			saved = l
			return "SAVED!"
		},
	}
	m := newModel(t, opts, time.Second)
	s := m.Session()

	press(m, runes("d"))
	cmd := press(m, runes("W"))
	if saved.Name != "projects" || len(saved.Items) != 1 {
		t.Fatalf("saved tree = %+v, want projects with one item", saved)
	}
	if s.Dirty() {
		t.Error("save should clear the dirty flag")
	}
	if cmd == nil {
		t.Fatal("save with a notice TTL should schedule expiry")
	}
	if !strings.Contains(m.View(), "SAVED!") {
		t.Error("View() should show the notice")
	}

	// A stale expiry does not clear a newer notice.
	m.Update(NoticeExpiredMsg{Seq: m.noticeSeq - 1})
	if s.Notice() != "SAVED!" {
		t.Error("stale expiry should be ignored")
	}

	m.Update(NoticeExpiredMsg{Seq: m.noticeSeq})
	if s.Notice() != "" {
		t.Errorf("Notice() = %q after expiry, want empty", s.Notice())
	}
	if strings.Contains(m.View(), "SAVED!") {
		t.Error("View() should drop the expired notice")
	}
}

func TestModelSaveWithoutTTL(t *testing.T) {
	opts := session.Options{Save: func(tree.List) string { return "SAVED!" }}
	m := newModel(t, opts, 0)

	if cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Error("no expiry should be scheduled without a TTL")
	}
	if m.Session().Notice() != "SAVED!" {
		t.Errorf("Notice() = %q, want SAVED!", m.Session().Notice())
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().Notice() != "" {
		t.Error("descending should clear the notice")
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, session.Options{}, 0)

	if !isQuit(press(m, runes("q"))) {
		t.Fatal("q with no changes should quit")
	}
	if m.Session().Running() {
		t.Error("session should be stopped")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelQuitConfirm(t *testing.T) {
	m := newModel(t, session.Options{}, 0)

	press(m, runes("d"))
	if isQuit(press(m, runes("q"))) {
		t.Fatal("q with unsaved changes should ask first")
	}
	if !m.confirmDlg.IsVisible() {
		t.Fatal("confirm dialog should be visible")
	}
	if !strings.Contains(m.View(), "Quit without saving?") {
		t.Error("View() should show the dialog")
	}

	// Navigation keys go to the dialog while it is open.
	press(m, runes("j"))
	if m.Session().Engine().Current().Selected != 0 {
		t.Error("keys should not reach the session while the dialog is open")
	}

	cmd := press(m, runes("n"))
	if cmd == nil {
		t.Fatal("answering should produce a message")
	}
	m.Update(cmd())
	if m.confirmDlg.IsVisible() || !m.Session().Running() {
		t.Fatal("answering no should keep the session")
	}

	press(m, runes("q"))
	cmd = press(m, runes("y"))
	msg := cmd()
	if yes, ok := msg.(components.ConfirmYesMsg); !ok || yes.Action != components.ConfirmActionQuit {
		t.Fatalf("confirm = %#v, want quit confirmation", msg)
	}
	_, cmd = m.Update(msg)
	if !isQuit(cmd) {
		t.Error("confirming should quit")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newModel(t, session.Options{}, 0)

	press(m, runes("d"), runes("a"))
	if !isQuit(press(m, tea.KeyMsg{Type: tea.KeyCtrlC})) {
		t.Error("ctrl+c should quit from add mode without asking")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newModel(t, session.Options{}, 0)

	press(m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if !strings.Contains(m.View(), "quit now") {
		t.Error("full help should list every binding")
	}

	press(m, runes("?"))
	if m.help.ShowAll {
		t.Error("? should collapse the help")
	}
}

func TestModelBackBinding(t *testing.T) {
	m := newModel(t, session.Options{}, 0)
	if m.keys.Back.Enabled() {
		t.Error("back should be disabled at the root")
	}

	press(m, runes("e"))
	if !m.keys.Back.Enabled() {
		t.Error("back should be enabled below the root")
	}
}

func TestBreadcrumb(t *testing.T) {
	m := newModel(t, session.Options{}, 0)
	e := m.Session().Engine()

	if got := breadcrumb(e.Arena(), e.CurrentIndex()); len(got) != 1 || got[0] != "projects" {
		t.Errorf("breadcrumb() = %v, want [projects]", got)
	}

	e.Descend()
	got := breadcrumb(e.Arena(), e.CurrentIndex())
	if strings.Join(got, "/") != "projects/tasks" {
		t.Errorf("breadcrumb() = %v, want [projects tasks]", got)
	}
}
