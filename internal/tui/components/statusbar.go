package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nestlist/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	// Mode is "navigate" or "add".
	Mode string
	// Path is the breadcrumb of list names from the root.
	Path []string
	// Position is the selection within the current list, e.g. "2/5".
	Position string
	// Help is the rendered key hints, shown on the right.
	Help string
}

// StatusBar shows the mode, breadcrumb and key hints.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{Mode: "navigate"},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := styles.MutedTextStyle.Render(" │ ")

	left := s.renderMode()
	if len(s.data.Path) > 0 {
		left += sep + styles.MutedTextStyle.Render(strings.Join(s.data.Path, " › "))
	}
	if s.data.Position != "" {
		left += sep + styles.KeyStyle.Render(s.data.Position)
	}

	right := s.data.Help

	container := styles.StatusBarStyle
	if s.width > 0 {
		container = container.Width(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return container.Render(left + strings.Repeat(" ", padding) + right)
		}
	}

	if right == "" {
		return container.Render(left)
	}
	return container.Render(left + "  " + right)
}

func (s *StatusBar) renderMode() string {
	if s.data.Mode == "add" {
		return lipgloss.NewStyle().Foreground(styles.Warning).Render("✎ ADD")
	}
	return lipgloss.NewStyle().Foreground(styles.Success).Render("● NAV")
}
