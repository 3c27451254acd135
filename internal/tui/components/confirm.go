package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nestlist/internal/tui/styles"
)

// ConfirmAction represents the action being confirmed.
type ConfirmAction string

const (
	// ConfirmActionQuit is for quitting with unsaved changes.
	ConfirmActionQuit ConfirmAction = "quit"
)

// ConfirmDialog displays a yes/no prompt.
type ConfirmDialog struct {
	visible     bool
	action      ConfirmAction
	title       string
	message     string
	width       int
	destructive bool
}

// NewConfirmDialog creates a new ConfirmDialog component.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{
		width: 50,
	}
}

// Show displays the dialog with the given action, title, and message.
func (c *ConfirmDialog) Show(action ConfirmAction, title, message string, destructive bool) {
	c.visible = true
	c.action = action
	c.title = title
	c.message = message
	c.destructive = destructive
}

// ShowQuit asks whether to quit and discard unsaved changes.
func (c *ConfirmDialog) ShowQuit() {
	c.Show(ConfirmActionQuit, "Quit without saving?",
		"Items were added or deleted since the last save. They will be lost.",
		true)
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
}

// IsVisible returns whether the dialog is visible.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// Action returns the current action being confirmed.
func (c *ConfirmDialog) Action() ConfirmAction {
	return c.action
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
}

// Update handles input messages.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !c.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			action := c.action
			c.Hide()
			return func() tea.Msg {
				return ConfirmYesMsg{Action: action}
			}
		case "n", "esc":
			c.Hide()
			return func() tea.Msg {
				return ConfirmNoMsg{}
			}
		}
	}
	return nil
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	var b strings.Builder

	titleBg := styles.Warning
	if c.destructive {
		titleBg = styles.Error
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(titleBg).
		Bold(true).
		Padding(0, 1).
		Width(c.width - 4)
	b.WriteString(titleStyle.Render(c.title))
	b.WriteString("\n\n")

	msgStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(c.width - 8)
	b.WriteString(msgStyle.Render(c.message))
	b.WriteString("\n\n")

	yesStyle := styles.ButtonDangerStyle
	if !c.destructive {
		yesStyle = styles.ButtonPrimaryStyle
	}
	b.WriteString(yesStyle.Render("[Y]es"))
	b.WriteString("  ")
	b.WriteString(styles.ButtonSecondaryStyle.Render("[N]o"))

	borderColor := styles.Warning
	if c.destructive {
		borderColor = styles.Error
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// ConfirmYesMsg is sent when the user confirms.
type ConfirmYesMsg struct {
	Action ConfirmAction
}

// ConfirmNoMsg is sent when the user cancels.
type ConfirmNoMsg struct{}
