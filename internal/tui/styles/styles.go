// Package styles provides Lip Gloss styles for the nestlist TUI.
package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// HeaderStyle is the header bar container.
	HeaderStyle = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Foreground).
			Padding(0, 1)

	// TitleStyle is the page title in the header.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Background(Primary)

	// NoticeStyle highlights the transient notice, e.g. after a save.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Error).
			Bold(true).
			Padding(0, 1)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is the box holding the list being navigated.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// BoxTitleStyle labels a box.
	BoxTitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// List item styles.
var (
	// ItemStyle is an unselected list item.
	ItemStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// SelectedItemStyle is the selected list item.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Background).
				Bold(true)

	// CursorStyle is the marker in front of the selected item.
	CursorStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// SublistMarkerStyle marks items that own a nested list.
	SublistMarkerStyle = lipgloss.NewStyle().
				Foreground(MutedLight)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// EmptyTextStyle is for placeholder text in empty boxes.
	EmptyTextStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Input styles.
var (
	// InputLabelStyle labels the add-mode input.
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// InputStyle wraps the add-mode input field.
	InputStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Background).
			Padding(0, 1)
)

// Status bar and dialog styles.
var (
	// StatusBarStyle is the status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ButtonPrimaryStyle is the confirm button of a dialog.
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	// ButtonDangerStyle is the confirm button of a destructive dialog.
	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryStyle is the cancel button of a dialog.
	ButtonSecondaryStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Muted).
				Padding(0, 1)
)

// HelpStyles returns bubbles help styles matching the palette.
func HelpStyles() help.Styles {
	return help.Styles{
		Ellipsis:       HelpStyle,
		ShortKey:       KeyStyle,
		ShortDesc:      HelpStyle,
		ShortSeparator: HelpStyle,
		FullKey:        KeyStyle,
		FullDesc:       HelpStyle,
		FullSeparator:  HelpStyle,
	}
}
