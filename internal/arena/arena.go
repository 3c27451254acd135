// Package arena holds the flat, index-addressed representation of a list
// hierarchy that the navigation engine mutates.
//
// Lists are owned by the arena and referenced by their index. Items point at
// their nested list by index without owning it. The arena only grows: lists
// are never removed or compacted, so an index stays valid for the lifetime of
// the arena. A list whose referencing item was deleted is simply unreachable.
package arena

// NoIndex marks an absent index (no selection, no parent, no sub-list).
const NoIndex = -1

// Direction is a selection step.
type Direction int

const (
	// Backward moves the selection towards the first item.
	Backward Direction = -1
	// Forward moves the selection towards the last item.
	Forward Direction = 1
)

// Item is an arena list entry.
type Item struct {
	ID   string
	Name string
	// Sublist is the arena index of the item's nested list, or NoIndex.
	Sublist int
}

// NewItem creates an item with no sub-list.
func NewItem(id, name string) Item {
	return Item{
		ID:      id,
		Name:    name,
		Sublist: NoIndex,
	}
}

// HasSublist returns true if the item references a nested list.
func (i Item) HasSublist() bool {
	return i.Sublist != NoIndex
}

// List is an arena record.
type List struct {
	Name  string
	Items []Item
	// Selected is the index of the selected item, or NoIndex.
	Selected int
	// Parent is the arena index of the list this one was opened from, or NoIndex.
	Parent int
}

// HasParent returns true if the list is not a root.
func (l *List) HasParent() bool {
	return l.Parent != NoIndex
}

// HasSelection returns true if an item is selected.
func (l *List) HasSelection() bool {
	return l.Selected != NoIndex
}

// SelectedItem returns the selected item, or nil if nothing is selected.
func (l *List) SelectedItem() *Item {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// Append adds an item to the end of the list.
func (l *List) Append(item Item) {
	l.Items = append(l.Items, item)
}

// SelectFirst selects the first item, if there is one.
func (l *List) SelectFirst() {
	if len(l.Items) > 0 {
		l.Selected = 0
	}
}

// ClearSelection deselects the selected item.
func (l *List) ClearSelection() {
	l.Selected = NoIndex
}

// Move steps the selection one item in the given direction, wrapping around
// at either end. With nothing selected the first item is selected. Does
// nothing on an empty list.
func (l *List) Move(dir Direction) {
	n := len(l.Items)
	if n == 0 {
		return
	}
	if !l.HasSelection() {
		l.Selected = 0
		return
	}
	l.Selected = ((l.Selected+int(dir))%n + n) % n
}

// RemoveSelected removes the selected item. The first remaining item becomes
// selected, or nothing if the list is now empty.
func (l *List) RemoveSelected() {
	if l.SelectedItem() == nil {
		return
	}
	l.Items = append(l.Items[:l.Selected], l.Items[l.Selected+1:]...)
	if len(l.Items) > 0 {
		l.Selected = 0
	} else {
		l.Selected = NoIndex
	}
}

// Arena is an append-only store of lists.
type Arena struct {
	lists []*List
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{}
}

// Allocate appends an empty list and returns its index. The new list has no
// parent and no selection; callers set Parent immediately after.
func (a *Arena) Allocate(name string) int {
	a.lists = append(a.lists, &List{
		Name:     name,
		Selected: NoIndex,
		Parent:   NoIndex,
	})
	return len(a.lists) - 1
}

// List returns the list at index i, or nil if i is out of range.
func (a *Arena) List(i int) *List {
	if i < 0 || i >= len(a.lists) {
		return nil
	}
	return a.lists[i]
}

// Len returns the number of allocated lists, reachable or not.
func (a *Arena) Len() int {
	return len(a.lists)
}

// Reachable returns the indices of all lists reachable from root, in
// depth-first order.
func (a *Arena) Reachable(root int) []int {
	var out []int
	var walk func(i int)
	walk = func(i int) {
		l := a.List(i)
		if l == nil {
			return
		}
		out = append(out, i)
		for _, it := range l.Items {
			if it.HasSublist() {
				walk(it.Sublist)
			}
		}
	}
	walk(root)
	return out
}

// Orphans returns the number of allocated lists not reachable from root.
func (a *Arena) Orphans(root int) int {
	return a.Len() - len(a.Reachable(root))
}
