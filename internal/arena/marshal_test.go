package arena

import (
	"testing"

	"github.com/dbmrq/nestlist/internal/tree"
)

func sampleTree() tree.List {
	third := tree.NewList("third list", tree.NewItem("3a", "third a", nil))
	second := tree.NewList("second list",
		tree.NewItem("2a", "second a", &third),
		tree.NewItem("2b", "second b", nil),
	)
	empty := tree.NewList("empty list")
	return tree.NewList("first list",
		tree.NewItem("1a", "first a", &second),
		tree.NewItem("1b", "first b", nil),
		tree.NewItem("1c", "first c", &empty),
	)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   tree.List
	}{
		{"nested", sampleTree()},
		{"flat", tree.NewList("flat", tree.NewItem("a", "a", nil), tree.NewItem("b", "b", nil))},
		{"no items", tree.NewList("bare")},
		{"duplicate ids", tree.NewList("dups", tree.NewItem("same", "one", nil), tree.NewItem("same", "two", nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, root := Flatten(tt.in)
			got := Reconstruct(a, root)
			if !got.Equal(tt.in) {
				t.Errorf("Reconstruct(Flatten(T)) = %+v, want %+v", got, tt.in)
			}
		})
	}
}

func TestFlattenStructure(t *testing.T) {
	a, root := Flatten(sampleTree())

	if a.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (root, second, third, empty)", a.Len())
	}

	r := a.List(root)
	if r.HasParent() {
		t.Error("root should have no parent")
	}
	if r.Selected != 0 {
		t.Errorf("root Selected = %d, want 0", r.Selected)
	}

	// Every referenced list must be live and point back at its owner.
	for _, idx := range a.Reachable(root) {
		l := a.List(idx)
		for _, it := range l.Items {
			if !it.HasSublist() {
				continue
			}
			child := a.List(it.Sublist)
			if child == nil {
				t.Fatalf("item %q references dead slot %d", it.Name, it.Sublist)
			}
			if child.Parent != idx {
				t.Errorf("list %q Parent = %d, want %d", child.Name, child.Parent, idx)
			}
		}
	}

	if r.Items[1].HasSublist() {
		t.Error("item without a tree sub-list should have no arena sub-list")
	}
	if !r.Items[2].HasSublist() || len(a.List(r.Items[2].Sublist).Items) != 0 {
		t.Error("empty tree sub-list should become an empty arena list")
	}
}

func TestFlattenOnlySelectsRoot(t *testing.T) {
	a, root := Flatten(sampleTree())

	child := a.List(a.List(root).Items[0].Sublist)
	if child.HasSelection() {
		t.Errorf("nested list Selected = %d, want none", child.Selected)
	}
}

func TestFlattenEmptyRootHasNoSelection(t *testing.T) {
	a, root := Flatten(tree.NewList("bare"))
	if a.List(root).HasSelection() {
		t.Error("empty root should have no selection")
	}
}

func TestReconstructSkipsOrphans(t *testing.T) {
	a, root := Flatten(sampleTree())

	// Orphan the second list by clearing its reference.
	a.List(root).Items[0].Sublist = NoIndex

	got := Reconstruct(a, root)
	if got.Items[0].List != nil {
		t.Error("cleared reference should reconstruct without a sub-list")
	}
	if got.Count() != 3 {
		t.Errorf("Count() = %d, want 3", got.Count())
	}
	if a.Orphans(root) != 2 {
		t.Errorf("Orphans() = %d, want 2 (second and third)", a.Orphans(root))
	}
}

func TestReconstructInvalidRoot(t *testing.T) {
	got := Reconstruct(New(), 3)
	if got.Name != "" || len(got.Items) != 0 {
		t.Errorf("Reconstruct() of missing root = %+v, want zero value", got)
	}
}
