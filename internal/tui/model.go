// Package tui provides the terminal user interface for nestlist.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nestlist/internal/arena"
	"github.com/dbmrq/nestlist/internal/session"
	"github.com/dbmrq/nestlist/internal/tui/components"
	"github.com/dbmrq/nestlist/internal/tui/styles"
)

// Model is the Bubble Tea model for a nestlist session.
type Model struct {
	sess *session.Session

	// Components
	header     *components.Header
	menu       *components.ListBox
	preview    *components.ListBox
	input      *components.TextInput
	statusBar  *components.StatusBar
	confirmDlg *components.ConfirmDialog
	help       help.Model

	keys      KeyMap
	inputKeys InputKeyMap

	sessionID string
	noticeTTL time.Duration
	noticeSeq int
	notice    string

	// Window dimensions
	width  int
	height int

	quitting bool
}

// NewModel creates a model driving s. A zero noticeTTL keeps notices until
// the next descend or back.
func NewModel(s *session.Session, sessionID string, noticeTTL time.Duration) *Model {
	h := help.New()
	h.Styles = styles.HelpStyles()

	m := &Model{
		sess:       s,
		header:     components.NewHeader(),
		menu:       components.NewListBox(""),
		preview:    components.NewListBox(""),
		input:      components.NewTextInput("New item"),
		statusBar:  components.NewStatusBar(),
		confirmDlg: components.NewConfirmDialog(),
		help:       h,
		keys:       DefaultKeyMap(),
		inputKeys:  DefaultInputKeyMap(),
		sessionID:  sessionID,
		noticeTTL:  noticeTTL,
	}
	m.menu.SetFocused(true)
	m.menu.SetEmptyText("no items")
	m.refresh()
	return m
}

// Session returns the session the model drives.
func (m *Model) Session() *session.Session {
	return m.sess
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirmDlg.IsVisible() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, m.keys.ForceQuit) {
				m.confirmDlg.Hide()
				return m.apply(session.Key(session.EventExit))
			}
			return m, m.confirmDlg.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case NoticeExpiredMsg:
		if msg.Seq == m.noticeSeq && m.sess.Notice() != "" {
			m.sess.ClearNotice()
			m.notice = ""
			m.refresh()
		}
		return m, nil

	case components.ConfirmYesMsg:
		if msg.Action == components.ConfirmActionQuit {
			return m.apply(session.Key(session.EventExit))
		}
		return m, nil

	case components.ConfirmNoMsg:
		return m, nil
	}

	return m, m.input.Update(msg)
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.Mode() == session.ModeAdd {
		return m.apply(m.inputKeys.events(msg)...)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		if m.sess.Dirty() {
			m.confirmDlg.ShowQuit()
			return m, nil
		}
		return m.apply(session.Key(session.EventExit))
	}

	ev, ok := m.keys.event(msg)
	if !ok {
		return m, nil
	}
	return m.apply(ev)
}

// apply feeds events to the session and refreshes the view from it.
func (m *Model) apply(events ...session.Event) (tea.Model, tea.Cmd) {
	wasAdding := m.sess.Mode() == session.ModeAdd

	for _, ev := range events {
		m.sess.Handle(ev)
	}

	if !m.sess.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	adding := m.sess.Mode() == session.ModeAdd
	if adding && !wasAdding {
		cmds = append(cmds, m.input.Focus())
	} else if !adding && wasAdding {
		m.input.Blur()
	}

	if n := m.sess.Notice(); n != m.notice {
		m.notice = n
		m.noticeSeq++
		if n != "" && m.noticeTTL > 0 {
			cmds = append(cmds, expireNotice(m.noticeSeq, m.noticeTTL))
		}
	}

	m.refresh()
	if adding != wasAdding {
		m.layout()
	}
	return m, tea.Batch(cmds...)
}

func expireNotice(seq int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Seq: seq}
	})
}

// refresh copies the session state into the components.
func (m *Model) refresh() {
	e := m.sess.Engine()
	page := e.Page()
	cur := e.Current()
	m.keys.ApplyPage(page)
	m.keys.Back.SetEnabled(e.CanAscend())

	m.header.SetData(components.HeaderData{
		Title:     page.Title,
		ListName:  cur.Name,
		Notice:    m.sess.Notice(),
		Depth:     e.Depth(),
		Unsaved:   m.sess.Dirty(),
		SessionID: m.sessionID,
	})

	selected := components.NoSelection
	if cur.HasSelection() {
		selected = cur.Selected
	}
	m.menu.SetTitle(page.MenuBoxTitle)
	m.menu.SetItems(rows(e.Arena(), cur.Items), selected)

	m.preview.SetTitle(page.ListBoxTitle)
	if sub := e.SelectedSublist(); sub != nil {
		m.preview.SetEmptyText("empty list")
		m.preview.SetItems(rows(e.Arena(), sub.Items), components.NoSelection)
	} else {
		m.preview.SetEmptyText("no nested list")
		m.preview.SetItems(nil, components.NoSelection)
	}

	if m.sess.Mode() == session.ModeAdd {
		m.input.SetValue(m.sess.Buffer())
	} else if m.input.Value() != "" {
		m.input.Reset()
	}

	position := fmt.Sprintf("-/%d", len(cur.Items))
	if cur.HasSelection() {
		position = fmt.Sprintf("%d/%d", cur.Selected+1, len(cur.Items))
	}

	hints := ""
	if !m.help.ShowAll {
		hints = m.help.View(m.activeKeys())
	}

	m.statusBar.SetData(components.StatusBarData{
		Mode:     modeLabel(m.sess.Mode()),
		Path:     breadcrumb(e.Arena(), e.CurrentIndex()),
		Position: position,
		Help:     hints,
	})
}

func (m *Model) activeKeys() help.KeyMap {
	if m.sess.Mode() == session.ModeAdd {
		return m.inputKeys
	}
	return m.keys
}

// layout sizes the components for the current window.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}

	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.input.SetWidth(m.width - 4)
	m.help.Width = m.width
	m.confirmDlg.SetSize(min(50, m.width))

	menuWidth := max(m.width*30/100, 20)
	sideWidth := max(m.width-menuWidth, 20)

	// Header and status bar take a line each.
	bodyHeight := m.height - 2
	if m.sess.Mode() == session.ModeAdd {
		bodyHeight -= 3
	}
	if m.help.ShowAll {
		bodyHeight -= lipgloss.Height(m.help.View(m.activeKeys()))
	}

	// Rows inside a list box: minus the border and the title line.
	m.menu.SetSize(menuWidth, max(bodyHeight-3, 1))
	m.preview.SetSize(sideWidth, max(bodyHeight-selectedBoxHeight-3, 1))

	m.refresh()
}

// selectedBoxHeight is the rendered height of the selected item box.
const selectedBoxHeight = 5

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	e := m.sess.Engine()
	page := e.Page()

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")

	if m.sess.Mode() == session.ModeAdd {
		b.WriteString(m.renderInput(page.BodyBoxTitle))
		b.WriteString("\n")
	}

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSelected(page.SelectedBoxTitle, e.SelectedItem()),
		m.preview.View(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.menu.View(), side))
	b.WriteString("\n")

	if m.help.ShowAll {
		b.WriteString(m.help.View(m.activeKeys()))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar.View())

	view := b.String()
	if m.confirmDlg.IsVisible() {
		view = m.renderOverlay(view, m.confirmDlg.View())
	}
	return view
}

func (m *Model) renderInput(title string) string {
	box := styles.FocusedBoxStyle
	if m.width > 0 {
		box = box.Width(m.width - 2)
	}
	return box.Render(styles.BoxTitleStyle.Render(title) + "  " + m.input.View())
}

func (m *Model) renderSelected(title string, item *arena.Item) string {
	lines := []string{styles.BoxTitleStyle.Render(title)}
	if item == nil {
		lines = append(lines, styles.EmptyTextStyle.Render("nothing selected"), "")
	} else {
		lines = append(lines,
			styles.MutedTextStyle.Render("ID: ")+styles.ItemStyle.Render(item.ID),
			styles.MutedTextStyle.Render("Name: ")+styles.ItemStyle.Render(item.Name),
		)
	}

	box := styles.BoxStyle
	if m.width > 0 {
		box = box.Width(max(m.width-max(m.width*30/100, 20), 20) - 2)
	}
	return box.Render(strings.Join(lines, "\n"))
}

// renderOverlay places the overlay in the middle of the screen, replacing
// the base view.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width == 0 || m.height == 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// rows converts arena items to list box rows.
func rows(a *arena.Arena, items []arena.Item) []components.ListBoxItem {
	out := make([]components.ListBoxItem, len(items))
	for i, it := range items {
		children := -1
		if it.HasSublist() {
			if sub := a.List(it.Sublist); sub != nil {
				children = len(sub.Items)
			}
		}
		out[i] = components.ListBoxItem{ID: it.ID, Name: it.Name, Children: children}
	}
	return out
}

// breadcrumb returns the list names from the root down to idx.
func breadcrumb(a *arena.Arena, idx int) []string {
	var path []string
	for l := a.List(idx); l != nil; l = a.List(l.Parent) {
		path = append(path, l.Name)
		if !l.HasParent() {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func modeLabel(mode session.Mode) string {
	if mode == session.ModeAdd {
		return "add"
	}
	return "navigate"
}
