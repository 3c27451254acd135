package tree

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	listStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Render draws l as an indented tree using lipgloss box-drawing enumerators.
func Render(l List) string {
	return build(l, true).String()
}

func build(l List, root bool) *ltree.Tree {
	t := ltree.New()
	if root {
		t.Root(rootStyle.Render(l.Name))
	} else {
		t.Root(listStyle.Render(l.Name))
	}
	for _, it := range l.Items {
		label := it.Name
		if it.ID != "" && it.ID != it.Name {
			label += " " + idStyle.Render("("+it.ID+")")
		}
		if it.List == nil {
			t.Child(label)
			continue
		}
		sub := build(*it.List, false)
		sub.Root(label + " › " + listStyle.Render(it.List.Name))
		t.Child(sub)
	}
	return t
}

// Markdown converts l into a nested markdown bullet list.
func Markdown(l List) string {
	var b strings.Builder
	b.WriteString("# " + l.Name + "\n\n")
	writeMarkdownItems(&b, l.Items, 0)
	return b.String()
}

func writeMarkdownItems(b *strings.Builder, items []Item, level int) {
	indent := strings.Repeat("  ", level)
	for _, it := range items {
		fmt.Fprintf(b, "%s- **%s**", indent, it.Name)
		if it.ID != "" && it.ID != it.Name {
			fmt.Fprintf(b, " `%s`", it.ID)
		}
		if it.List != nil {
			fmt.Fprintf(b, " (%s)", it.List.Name)
		}
		b.WriteString("\n")
		if it.List != nil {
			writeMarkdownItems(b, it.List.Items, level+1)
		}
	}
}

// RenderMarkdown renders the markdown form of l for a terminal of the given width.
func RenderMarkdown(l List, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(l))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
