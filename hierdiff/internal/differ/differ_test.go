package differ

import (
	"testing"

	"github.com/hazyhaar/uidiff/hierdiff/internal/match"
	"github.com/hazyhaar/uidiff/hierdiff/internal/tree"
	"github.com/hazyhaar/uidiff/report"
)

func newDiffer() *Differ { return New(0.9) }

func baseNode() *tree.Node {
	return &tree.Node{
		ID:    "com.example:id/save",
		Class: "android.widget.Button",
		Text:  "Save",
		Attrs: map[string]string{"resource-id": "com.example:id/save", "enabled": "true"},
		Path:  "/hierarchy[0]/node[0]",
	}
}

func clone(n *tree.Node) *tree.Node {
	c := *n
	c.Attrs = make(map[string]string, len(n.Attrs))
	for k, v := range n.Attrs {
		c.Attrs[k] = v
	}
	if n.Bounds != nil {
		b := *n.Bounds
		c.Bounds = &b
	}
	return &c
}

func TestDiff_AddedRemoved(t *testing.T) {
	a := baseNode()
	added := clone(a)

	diffs := newDiffer().Diff([]match.Pair{
		{Base: a},
		{Input: added},
	})
	if len(diffs) != 2 {
		t.Fatalf("diffs: got %d, want 2", len(diffs))
	}
	if diffs[0].Type != report.Removed || diffs[0].Path != a.Path || diffs[0].ID != a.ID {
		t.Errorf("removed: got %+v", diffs[0])
	}
	if diffs[1].Type != report.Added || diffs[1].Text != "Save" {
		t.Errorf("added: got %+v", diffs[1])
	}
}

func TestDiff_IdenticalPairEmitsNothing(t *testing.T) {
	a := baseNode()
	a.Bounds = &tree.Rect{X1: 0, Y1: 0, X2: 100, Y2: 50}
	b := clone(a)

	if diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}}); len(diffs) != 0 {
		t.Fatalf("identical pair: got %+v", diffs)
	}
}

func TestDiff_AttrChange(t *testing.T) {
	a := baseNode()
	b := clone(a)
	b.Attrs["enabled"] = "false"

	diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}})
	if len(diffs) != 1 {
		t.Fatalf("diffs: got %+v", diffs)
	}
	d := diffs[0]
	if d.Type != report.AttrChange || d.Attr != "enabled" {
		t.Errorf("got %+v", d)
	}
	if d.From == nil || *d.From != "true" || d.To == nil || *d.To != "false" {
		t.Errorf("from/to: got %v → %v", d.From, d.To)
	}
}

func TestDiff_AttrPresenceTransitions(t *testing.T) {
	a := baseNode()
	b := clone(a)
	delete(b.Attrs, "enabled")         // present → absent
	b.Attrs["checked"] = "true"        // absent → present

	diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}})
	if len(diffs) != 2 {
		t.Fatalf("diffs: got %+v", diffs)
	}
	// Sorted key union: checked before enabled.
	if diffs[0].Attr != "checked" || diffs[0].From != nil || *diffs[0].To != "true" {
		t.Errorf("checked: got %+v", diffs[0])
	}
	if diffs[1].Attr != "enabled" || *diffs[1].From != "true" || diffs[1].To != nil {
		t.Errorf("enabled: got %+v", diffs[1])
	}
}

func TestDiff_TextChange(t *testing.T) {
	a := baseNode()
	b := clone(a)
	b.Text = "Cancel"

	diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}})
	if len(diffs) != 1 {
		t.Fatalf("diffs: got %+v", diffs)
	}
	d := diffs[0]
	if d.Type != report.TextChange || *d.From != "Save" || *d.To != "Cancel" {
		t.Errorf("got %+v", d)
	}
}

func TestDiff_NearIdenticalTextSuppressed(t *testing.T) {
	// WHY: single punctuation drift is cosmetic; similarity 11/12 ≥ 0.9
	// stays silent.
	a := baseNode()
	a.Text = "Hello World"
	b := clone(a)
	b.Text = "Hello World!"

	if diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}}); len(diffs) != 0 {
		t.Fatalf("near-identical text: got %+v", diffs)
	}
}

func TestDiff_BoundsChange(t *testing.T) {
	a := baseNode()
	a.Bounds = &tree.Rect{X1: 0, Y1: 0, X2: 100, Y2: 50}
	b := clone(a)
	b.Bounds = &tree.Rect{X1: 0, Y1: 0, X2: 120, Y2: 50}

	diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}})
	if len(diffs) != 1 {
		t.Fatalf("diffs: got %+v", diffs)
	}
	d := diffs[0]
	if d.Type != report.BoundsChange || *d.From != "[0,0][100,50]" || *d.To != "[0,0][120,50]" {
		t.Errorf("got %+v", d)
	}
}

func TestDiff_MissingBoundsNeverCompared(t *testing.T) {
	a := baseNode()
	a.Bounds = &tree.Rect{X1: 0, Y1: 0, X2: 100, Y2: 50}
	b := clone(a)
	b.Bounds = nil

	if diffs := newDiffer().Diff([]match.Pair{{Base: a, Input: b}}); len(diffs) != 0 {
		t.Fatalf("one-sided bounds: got %+v", diffs)
	}
}
