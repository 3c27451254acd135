package components

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/nestlist/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	// Title is the page title for the current depth.
	Title string
	// ListName is the name of the list being navigated.
	ListName string
	// Notice is the transient notice, shown before the title.
	Notice    string
	Depth     int
	Unsaved   bool
	SessionID string
}

// Header shows the current page title and list in a bar across the top.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// Data returns the header data.
func (h *Header) Data() HeaderData {
	return h.data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	sep := styles.HeaderLabelStyle.Render(" │ ")

	content := styles.TitleStyle.Render(fmt.Sprintf("%s: %s", h.data.Title, h.data.ListName))
	content += sep + styles.HeaderLabelStyle.Render(fmt.Sprintf("depth %d", h.data.Depth))

	if h.data.Unsaved {
		content += sep + styles.HeaderLabelStyle.Render("● unsaved")
	}

	if h.data.SessionID != "" {
		short := h.data.SessionID
		if len(short) > 8 {
			short = short[:8]
		}
		content += sep + styles.HeaderLabelStyle.Render("session "+short)
	}

	if h.data.Notice != "" {
		content = styles.NoticeStyle.Render(h.data.Notice) + " " + content
	}

	style := styles.HeaderStyle
	if h.width > 0 {
		content = ansi.Truncate(content, h.width-2, "…")
		style = style.Width(h.width)
	}
	return style.Render(content)
}
