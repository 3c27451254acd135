package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nestlist/internal/tui/styles"
)

// TextInput renders the add-mode prompt. Its value mirrors text held
// elsewhere; it only draws the field and cursor.
type TextInput struct {
	model textinput.Model
	label string
	width int
}

// NewTextInput creates a new TextInput with the given label.
func NewTextInput(label string) *TextInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "name of the new item"
	ti.CharLimit = 0
	ti.Width = 30

	return &TextInput{
		model: ti,
		label: label,
	}
}

// SetLabel sets the text shown before the field.
func (t *TextInput) SetLabel(label string) {
	t.label = label
	t.SetWidth(t.width)
}

// Label returns the label.
func (t *TextInput) Label() string {
	return t.label
}

// Focus focuses the field so the cursor is drawn.
func (t *TextInput) Focus() tea.Cmd {
	return t.model.Focus()
}

// Blur hides the cursor.
func (t *TextInput) Blur() {
	t.model.Blur()
}

// Focused returns whether the field is focused.
func (t *TextInput) Focused() bool {
	return t.model.Focused()
}

// SetValue sets the text and moves the cursor to its end.
func (t *TextInput) SetValue(value string) {
	t.model.SetValue(value)
	t.model.CursorEnd()
}

// Value returns the current text.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetWidth sets the outer width.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.model.Width = width - lipgloss.Width(t.label) - 6
	if t.model.Width < 10 {
		t.model.Width = 10
	}
}

// Update forwards non-key messages, such as cursor blinks, to the field.
func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

// View renders the label and field.
func (t *TextInput) View() string {
	label := styles.InputLabelStyle.Render(t.label + ": ")
	return label + styles.InputStyle.Render(t.model.View())
}

// Reset clears the text.
func (t *TextInput) Reset() {
	t.model.Reset()
}
