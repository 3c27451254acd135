package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/nestlist/internal/config"
	"github.com/dbmrq/nestlist/internal/session"
)

// KeyMap defines the navigation-mode key bindings.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Collapse  key.Binding
	Back      key.Binding
	Descend   key.Binding
	Add       key.Binding
	Delete    key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "deselect"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		Descend: key.NewBinding(
			key.WithKeys("e", "right", "l", "enter"),
			key.WithHelp("e/→", "open"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Save: key.NewBinding(
			key.WithKeys("W", "ctrl+s"),
			key.WithHelp("W", config.DefaultSaveCommandDescription),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
	}
}

// ApplyPage enables or disables bindings for the operations the page
// allows, and takes the save hint from the page.
func (k *KeyMap) ApplyPage(p config.PageOptions) {
	k.Descend.SetEnabled(!p.DisableEdit)
	k.Add.SetEnabled(!p.DisableAdd)
	k.Delete.SetEnabled(!p.DisableDelete)
	k.Save.SetEnabled(!p.DisableSave)

	desc := p.SaveCommandDescription
	if desc == "" {
		desc = config.DefaultSaveCommandDescription
	}
	k.Save.SetHelp("W", desc)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Descend, k.Back, k.Add, k.Delete, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Collapse},
		{k.Descend, k.Back},
		{k.Add, k.Delete, k.Save},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// event maps a key press to a navigation-mode session event. Disabled
// bindings never match. Quit and Help are handled by the model.
func (k KeyMap) event(msg tea.KeyMsg) (session.Event, bool) {
	switch {
	case key.Matches(msg, k.Next):
		return session.Key(session.EventNext), true
	case key.Matches(msg, k.Prev):
		return session.Key(session.EventPrev), true
	case key.Matches(msg, k.Collapse):
		return session.Key(session.EventCollapse), true
	case key.Matches(msg, k.Back):
		return session.Key(session.EventBack), true
	case key.Matches(msg, k.Descend):
		return session.Key(session.EventDescend), true
	case key.Matches(msg, k.Add):
		return session.Key(session.EventAdd), true
	case key.Matches(msg, k.Delete):
		return session.Key(session.EventDelete), true
	case key.Matches(msg, k.Save):
		return session.Key(session.EventSave), true
	case key.Matches(msg, k.ForceQuit):
		return session.Key(session.EventExit), true
	}
	return session.Event{}, false
}

// InputKeyMap defines the add-mode bindings. Any other printable key is
// typed into the buffer.
type InputKeyMap struct {
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	ForceQuit key.Binding
}

// DefaultInputKeyMap returns the default add-mode bindings.
func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add item"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+s"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "erase"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k InputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Backspace}
}

// FullHelp implements help.KeyMap.
func (k InputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel, k.Backspace, k.ForceQuit}}
}

// events maps a key press in add mode to session events. Pasted text arrives
// as a single message with several runes.
func (k InputKeyMap) events(msg tea.KeyMsg) []session.Event {
	switch {
	case key.Matches(msg, k.Confirm):
		return []session.Event{session.Key(session.EventConfirm)}
	case key.Matches(msg, k.Cancel):
		return []session.Event{session.Key(session.EventCancel)}
	case key.Matches(msg, k.Backspace):
		return []session.Event{session.Key(session.EventBackspace)}
	case key.Matches(msg, k.ForceQuit):
		return []session.Event{session.Key(session.EventExit)}
	}

	switch msg.Type {
	case tea.KeyRunes:
		return session.Text(string(msg.Runes))
	case tea.KeySpace:
		return []session.Event{session.Char(' ')}
	}
	return nil
}
