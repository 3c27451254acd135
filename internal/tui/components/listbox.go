// Package components provides reusable TUI components for nestlist.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/nestlist/internal/tui/styles"
)

// NoSelection is passed to SetItems when no item is selected.
const NoSelection = -1

// ListBoxItem is one row of a ListBox.
type ListBoxItem struct {
	ID   string
	Name string
	// Children is the number of items in the row's nested list, or -1 if it
	// has none.
	Children int
}

// ListBox is a titled, bordered, scrollable list.
type ListBox struct {
	title       string
	emptyText   string
	items       []ListBoxItem
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
}

// NewListBox creates a ListBox with the given title.
func NewListBox(title string) *ListBox {
	return &ListBox{
		title:     title,
		emptyText: "empty",
		selected:  NoSelection,
		height:    10,
	}
}

// SetTitle sets the box title.
func (b *ListBox) SetTitle(title string) {
	b.title = title
}

// Title returns the box title.
func (b *ListBox) Title() string {
	return b.title
}

// SetEmptyText sets the placeholder shown when there are no items.
func (b *ListBox) SetEmptyText(text string) {
	b.emptyText = text
}

// SetItems replaces the rows and the selected index.
func (b *ListBox) SetItems(items []ListBoxItem, selected int) {
	b.items = items
	if selected < 0 || selected >= len(items) {
		selected = NoSelection
	}
	b.selected = selected
	b.updateScroll()
}

// Items returns the rows.
func (b *ListBox) Items() []ListBoxItem {
	return b.items
}

// Selected returns the selected row index, or NoSelection.
func (b *ListBox) Selected() int {
	return b.selected
}

// SetSize sets the outer width and the number of visible rows.
func (b *ListBox) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.updateScroll()
}

// SetFocused sets whether the box is the one being navigated.
func (b *ListBox) SetFocused(focused bool) {
	b.focused = focused
}

// updateScroll keeps the selected row visible.
func (b *ListBox) updateScroll() {
	if b.height <= 0 {
		b.scrollStart = 0
		return
	}
	if b.selected == NoSelection {
		if b.scrollStart > len(b.items)-1 {
			b.scrollStart = 0
		}
		return
	}
	if b.selected < b.scrollStart {
		b.scrollStart = b.selected
	}
	if b.selected >= b.scrollStart+b.height {
		b.scrollStart = b.selected - b.height + 1
	}
	if b.scrollStart < 0 {
		b.scrollStart = 0
	}
}

// innerWidth is the usable text width inside the border and padding.
func (b *ListBox) innerWidth() int {
	return b.width - 4
}

// View renders the box.
func (b *ListBox) View() string {
	var lines []string
	lines = append(lines, styles.BoxTitleStyle.Render(b.fit(b.title)))

	if len(b.items) == 0 {
		lines = append(lines, styles.EmptyTextStyle.Render(b.fit(b.emptyText)))
	} else {
		end := len(b.items)
		if b.height > 0 && b.scrollStart+b.height < end {
			end = b.scrollStart + b.height
		}

		if b.scrollStart > 0 {
			lines = append(lines, styles.MutedTextStyle.Render("↑ more above"))
		}
		for i := b.scrollStart; i < end; i++ {
			lines = append(lines, b.renderItem(b.items[i], i == b.selected))
		}
		if end < len(b.items) {
			lines = append(lines, styles.MutedTextStyle.Render("↓ more below"))
		}
	}

	box := styles.BoxStyle
	if b.focused {
		box = styles.FocusedBoxStyle
	}
	if b.width > 0 {
		box = box.Width(b.width - 2)
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (b *ListBox) renderItem(item ListBoxItem, isSelected bool) string {
	cursor := "  "
	style := styles.ItemStyle
	if isSelected {
		cursor = styles.CursorStyle.Render("▶ ")
		style = styles.SelectedItemStyle
	}

	marker := ""
	if item.Children >= 0 {
		marker = styles.SublistMarkerStyle.Render(fmt.Sprintf(" › %d", item.Children))
	}

	name := item.Name
	if w := b.innerWidth() - lipgloss.Width(cursor) - lipgloss.Width(marker); w > 0 {
		name = ansi.Truncate(name, w, "…")
	}
	return cursor + style.Render(name) + marker
}

// fit truncates s to the inner width, if a width is set.
func (b *ListBox) fit(s string) string {
	if w := b.innerWidth(); w > 0 {
		return ansi.Truncate(s, w, "…")
	}
	return s
}
