package arena

import "github.com/dbmrq/nestlist/internal/tree"

// Flatten copies a caller tree into a new arena and returns it along with the
// root list's index. Nested lists are allocated depth-first, so an item's
// sub-list index is known before the item is stored. If the root has any
// items its first item is selected.
func Flatten(l tree.List) (*Arena, int) {
	a := New()
	root := a.Allocate(l.Name)
	a.List(root).Items = flattenItems(a, root, l.Items)
	a.List(root).SelectFirst()
	return a, root
}

func flattenItems(a *Arena, owner int, items []tree.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		item := NewItem(it.ID, it.Name)
		if it.List != nil {
			idx := a.Allocate(it.List.Name)
			a.List(idx).Parent = owner
			a.List(idx).Items = flattenItems(a, idx, it.List.Items)
			item.Sublist = idx
		}
		out = append(out, item)
	}
	return out
}

// Reconstruct builds a caller tree from the list at root. Lists that are not
// reachable from root are never visited, so deleted sub-lists are dropped.
func Reconstruct(a *Arena, root int) tree.List {
	l := a.List(root)
	if l == nil {
		return tree.List{}
	}
	out := tree.List{Name: l.Name}
	if len(l.Items) > 0 {
		out.Items = make([]tree.Item, 0, len(l.Items))
	}
	for _, it := range l.Items {
		item := tree.Item{ID: it.ID, Name: it.Name}
		if it.HasSublist() {
			sub := Reconstruct(a, it.Sublist)
			item.List = &sub
		}
		out.Items = append(out.Items, item)
	}
	return out
}
