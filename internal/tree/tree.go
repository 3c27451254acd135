// Package tree defines the recursive list/item hierarchy that callers hand to
// nestlist and receive back on save.
package tree

// List is a named, ordered sequence of items.
type List struct {
	// Name is the list heading shown when the list is open.
	Name string `yaml:"name" json:"name"`
	// Items are the entries of the list, in display order.
	Items []Item `yaml:"items,omitempty" json:"items,omitempty"`
}

// Item is a single list entry. An item may own a nested list.
type Item struct {
	// ID identifies the item to the caller. It is not required to be unique.
	ID string `yaml:"id" json:"id"`
	// Name is the label displayed for the item.
	Name string `yaml:"name" json:"name"`
	// List is the item's nested list, or nil if it has none.
	List *List `yaml:"list,omitempty" json:"list,omitempty"`
}

// NewList creates a list with the given name and items.
func NewList(name string, items ...Item) List {
	return List{
		Name:  name,
		Items: items,
	}
}

// NewItem creates an item. sub may be nil.
func NewItem(id, name string, sub *List) Item {
	return Item{
		ID:   id,
		Name: name,
		List: sub,
	}
}

// IsEmpty returns true if the list has no items.
func (l List) IsEmpty() bool {
	return len(l.Items) == 0
}

// Count returns the total number of items in the list and all nested lists.
func (l List) Count() int {
	n := 0
	for _, it := range l.Items {
		n++
		if it.List != nil {
			n += it.List.Count()
		}
	}
	return n
}

// Depth returns the number of list levels, counting l itself as 1.
func (l List) Depth() int {
	deepest := 0
	for _, it := range l.Items {
		if it.List == nil {
			continue
		}
		if d := it.List.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Equal reports whether two lists have the same names, ids, order and shape.
// A nil slice and an empty slice of items compare equal.
func (l List) Equal(other List) bool {
	if l.Name != other.Name || len(l.Items) != len(other.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two items and their nested lists are equal.
func (i Item) Equal(other Item) bool {
	if i.ID != other.ID || i.Name != other.Name {
		return false
	}
	if i.List == nil || other.List == nil {
		return i.List == nil && other.List == nil
	}
	return i.List.Equal(*other.List)
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	clone := List{Name: l.Name}
	if l.Items != nil {
		clone.Items = make([]Item, len(l.Items))
		for i, it := range l.Items {
			clone.Items[i] = Item{ID: it.ID, Name: it.Name}
			if it.List != nil {
				sub := it.List.Clone()
				clone.Items[i].List = &sub
			}
		}
	}
	return clone
}
