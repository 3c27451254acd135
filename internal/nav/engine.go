// Package nav implements the navigation engine: it tracks which arena list is
// on screen and at what depth, and applies descend, ascend, add and delete
// operations while keeping the arena's invariants.
//
// Operations that are disabled by the page configuration, or that make no
// sense in the current state (ascending from the root, descending into an item
// with no sub-list), do nothing. They report false rather than an error.
package nav

import (
	"github.com/dbmrq/nestlist/internal/arena"
	"github.com/dbmrq/nestlist/internal/config"
	"github.com/dbmrq/nestlist/internal/tree"
)

// Engine drives navigation over an arena.
type Engine struct {
	arena   *arena.Arena
	root    int
	current int
	depth   int
	pages   config.Pages
}

// New creates an engine positioned at root, depth 0.
func New(a *arena.Arena, root int, pages config.Pages) *Engine {
	return &Engine{
		arena:   a,
		root:    root,
		current: root,
		pages:   pages,
	}
}

// FromTree flattens l into a new arena and returns an engine over it.
func FromTree(l tree.List, pages config.Pages) *Engine {
	a, root := arena.Flatten(l)
	return New(a, root, pages)
}

// Arena returns the underlying arena.
func (e *Engine) Arena() *arena.Arena {
	return e.arena
}

// Root returns the root list's arena index.
func (e *Engine) Root() int {
	return e.root
}

// CurrentIndex returns the arena index of the list on screen.
func (e *Engine) CurrentIndex() int {
	return e.current
}

// Current returns the list on screen.
func (e *Engine) Current() *arena.List {
	return e.arena.List(e.current)
}

// Depth returns the number of descents below the root.
func (e *Engine) Depth() int {
	return e.depth
}

// Page returns the configuration for the current depth.
func (e *Engine) Page() config.PageOptions {
	return e.pages.ForDepth(e.depth)
}

// SelectedItem returns the selected item of the current list, or nil.
func (e *Engine) SelectedItem() *arena.Item {
	return e.Current().SelectedItem()
}

// SelectedSublist returns the sub-list of the selected item, or nil.
func (e *Engine) SelectedSublist() *arena.List {
	item := e.SelectedItem()
	if item == nil || !item.HasSublist() {
		return nil
	}
	return e.arena.List(item.Sublist)
}

// CanAscend returns true if the current list has a parent.
func (e *Engine) CanAscend() bool {
	return e.Current().HasParent()
}

// Tree rebuilds the caller-facing tree from the root.
func (e *Engine) Tree() tree.List {
	return arena.Reconstruct(e.arena, e.root)
}

// MoveSelection steps the selection of the current list, wrapping at the ends.
func (e *Engine) MoveSelection(dir arena.Direction) bool {
	l := e.Current()
	if len(l.Items) == 0 {
		return false
	}
	l.Move(dir)
	return true
}

// ClearSelection deselects the current list's selected item.
func (e *Engine) ClearSelection() bool {
	l := e.Current()
	if !l.HasSelection() {
		return false
	}
	l.ClearSelection()
	return true
}

// Descend opens the selected item's sub-list.
func (e *Engine) Descend() bool {
	if e.Page().DisableEdit {
		return false
	}
	child := e.SelectedSublist()
	if child == nil {
		return false
	}

	e.current = e.SelectedItem().Sublist
	e.depth++

	if len(child.Items) > 0 && !child.HasSelection() {
		child.SelectFirst()
	}
	return true
}

// Ascend returns to the parent list. If the item that owns the list just left
// now points at an empty list, the reference is dropped so the item reads as
// having no sub-list.
func (e *Engine) Ascend() bool {
	l := e.Current()
	if !l.HasParent() {
		return false
	}

	e.current = l.Parent
	if e.depth > 0 {
		e.depth--
	}

	if item := e.SelectedItem(); item != nil && item.HasSublist() {
		if sub := e.arena.List(item.Sublist); sub != nil && len(sub.Items) == 0 {
			item.Sublist = arena.NoIndex
		}
	}
	return true
}

// AddItem appends a new item to the selected item's sub-list, creating the
// sub-list first if the item has none.
func (e *Engine) AddItem(name, id string) bool {
	if e.Page().DisableAdd {
		return false
	}
	item := e.SelectedItem()
	if item == nil {
		return false
	}

	if !item.HasSublist() {
		idx := e.arena.Allocate(item.Name)
		e.arena.List(idx).Parent = e.current
		item.Sublist = idx
	}

	e.arena.List(item.Sublist).Append(arena.NewItem(id, name))
	return true
}

// DeleteSelected removes the selected item, orphaning its sub-list. Deleting
// the last item of a list closes the list.
func (e *Engine) DeleteSelected() bool {
	if e.Page().DisableDelete {
		return false
	}
	l := e.Current()
	item := l.SelectedItem()
	if item == nil {
		return false
	}

	item.Sublist = arena.NoIndex
	l.RemoveSelected()

	if len(l.Items) == 0 {
		l.ClearSelection()
		e.Ascend()
	}
	return true
}
