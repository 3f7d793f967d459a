package match

import (
	"testing"

	"github.com/hazyhaar/uidiff/element"
	"github.com/hazyhaar/uidiff/hierdiff/internal/tree"
)

func newMatcher() *Matcher {
	return New(0.4, 1.2, 0.05)
}

func node(id, class, text string) *tree.Node {
	return &tree.Node{
		ID:    id,
		Class: class,
		Text:  text,
		Attrs: map[string]string{},
		Elem:  &element.Element{Tag: "node"},
	}
}

func TestMatch_ByIdentifier(t *testing.T) {
	base := []*tree.Node{
		node("id/a", "Button", "A"),
		node("id/b", "Button", "B"),
	}
	input := []*tree.Node{
		node("id/b", "Button", "B2"),
		node("id/a", "Button", "A2"),
	}

	pairs := newMatcher().Match(base, input)
	if len(pairs) != 2 {
		t.Fatalf("pairs: got %d, want 2", len(pairs))
	}
	// Pair order follows base-side first appearance, not input order.
	if pairs[0].Base.ID != "id/a" || pairs[0].Input.Text != "A2" {
		t.Errorf("pair[0]: got %+v", pairs[0])
	}
	if pairs[1].Base.ID != "id/b" || pairs[1].Input.Text != "B2" {
		t.Errorf("pair[1]: got %+v", pairs[1])
	}
}

func TestMatch_IdentifierGroupMismatch(t *testing.T) {
	// Two base occurrences of the same identifier, one input occurrence:
	// positional pairing leaves a trailing removed pair.
	base := []*tree.Node{
		node("id/item", "TextView", "first"),
		node("id/item", "TextView", "second"),
	}
	input := []*tree.Node{
		node("id/item", "TextView", "first"),
	}

	pairs := newMatcher().Match(base, input)
	if len(pairs) != 2 {
		t.Fatalf("pairs: got %d, want 2", len(pairs))
	}
	if pairs[0].Base == nil || pairs[0].Input == nil {
		t.Errorf("pair[0] should be full: %+v", pairs[0])
	}
	if pairs[1].Base == nil || pairs[1].Input != nil {
		t.Errorf("pair[1] should be base-only: %+v", pairs[1])
	}
	if pairs[1].Base.Text != "second" {
		t.Errorf("trailing base: got %q", pairs[1].Base.Text)
	}
}

func TestMatch_InputOnlyIdentifierDropped(t *testing.T) {
	// WHAT: an identifier that exists only in the input tree never forms a
	// pair — not by identity (base-driven) and not heuristically
	// (identifier-bearing nodes are excluded there).
	// WHY: documented lossy behavior downstream consumers rely on.
	base := []*tree.Node{
		node("id/btn_a", "Button", "A"),
	}
	input := []*tree.Node{
		node("id/btn_a", "Button", "A"),
		node("id/btn_new", "Button", "New"),
	}

	pairs := newMatcher().Match(base, input)
	if len(pairs) != 1 {
		t.Fatalf("pairs: got %d, want 1", len(pairs))
	}
	for _, p := range pairs {
		if p.Input != nil && p.Input.ID == "id/btn_new" {
			t.Error("btn_new must be silently excluded")
		}
	}
}

func TestMatch_HeuristicSameClassOnly(t *testing.T) {
	base := []*tree.Node{node("", "Button", "Save")}
	input := []*tree.Node{node("", "TextView", "Save")}

	pairs := newMatcher().Match(base, input)
	if len(pairs) != 2 {
		t.Fatalf("pairs: got %d, want 2", len(pairs))
	}
	if pairs[0].Input != nil {
		t.Errorf("class mismatch must not pair: %+v", pairs[0])
	}
	if pairs[1].Base != nil || pairs[1].Input == nil {
		t.Errorf("leftover input should be added: %+v", pairs[1])
	}
}

func TestMatch_HeuristicThreshold(t *testing.T) {
	a := node("", "TextView", "Account settings")
	a.Content = "settings entry"

	// Similar text pairs.
	b := node("", "TextView", "Account setting")
	b.Content = "settings row"
	pairs := newMatcher().Match([]*tree.Node{a}, []*tree.Node{b})
	if len(pairs) != 1 || pairs[0].Input == nil {
		t.Fatalf("similar text should pair: %+v", pairs)
	}

	// Dissimilar content and text stays unmatched on both sides.
	c := node("", "TextView", "zzzzzz")
	c.Content = "qqqq"
	pairs = newMatcher().Match([]*tree.Node{a}, []*tree.Node{c})
	if len(pairs) != 2 {
		t.Fatalf("pairs: got %d, want 2", len(pairs))
	}
	if pairs[0].Input != nil {
		t.Errorf("below-threshold candidate must be rejected: %+v", pairs[0])
	}
}

func TestMatch_EmptyContentAlwaysPairsSameClass(t *testing.T) {
	// WHAT: two same-class nodes with no accessibility label score
	// 1.2 × sim("", "") = 1.2, clearing the threshold no matter how
	// different their texts are.
	// WHY: faithful to the tuned behavior — label-less widgets are paired
	// structurally and their text drift is reported as text_change instead
	// of remove+add.
	base := []*tree.Node{node("", "TextView", "Inbox")}
	input := []*tree.Node{node("", "TextView", "Spam folder")}

	pairs := newMatcher().Match(base, input)
	if len(pairs) != 1 || pairs[0].Input == nil {
		t.Fatalf("label-less same-class nodes should pair: %+v", pairs)
	}
}

func TestMatch_HeuristicGreedyConsumption(t *testing.T) {
	// WHY: greedy first-accept is part of the contract — the first base
	// node in collection order takes the candidate, the second goes
	// unmatched even if it is an equally good fit.
	base := []*tree.Node{
		node("", "TextView", "Hello"),
		node("", "TextView", "Hello"),
	}
	input := []*tree.Node{
		node("", "TextView", "Hello"),
	}

	pairs := newMatcher().Match(base, input)
	if len(pairs) != 2 {
		t.Fatalf("pairs: got %d, want 2", len(pairs))
	}
	if pairs[0].Input == nil {
		t.Errorf("first base node should win the candidate")
	}
	if pairs[1].Input != nil {
		t.Errorf("candidate must be consumed exactly once")
	}
}

func TestMatch_HeuristicContentBoostAndOverlap(t *testing.T) {
	a := node("", "ImageView", "")
	a.Content = "profile picture"
	a.Bounds = &tree.Rect{X1: 0, Y1: 0, X2: 100, Y2: 100}

	b := node("", "ImageView", "")
	b.Content = "profile picture"
	b.Bounds = &tree.Rect{X1: 50, Y1: 50, X2: 150, Y2: 150}

	m := newMatcher()
	if got := m.score(a, b); !(got > 1.2) {
		t.Errorf("boosted content + overlap: got %v, want > 1.2", got)
	}

	// No overlap drops the bonus.
	b.Bounds = &tree.Rect{X1: 200, Y1: 200, X2: 300, Y2: 300}
	if got := m.score(a, b); got != 1.2 {
		t.Errorf("boosted content, no overlap: got %v, want 1.2", got)
	}
}

func TestMatch_UsedInputSkippedByHeuristic(t *testing.T) {
	// An input element consumed by identity matching must not be offered
	// to the heuristic stage again.
	shared := node("", "Button", "Save")
	base := []*tree.Node{
		node("id/save", "Button", "Save"),
		node("", "Button", "Save"),
	}
	input := []*tree.Node{shared}
	// Give the identity stage a matching input for id/save that is the
	// same element the heuristic stage would want.
	withID := node("id/save", "Button", "Save")
	input = []*tree.Node{withID, shared}

	pairs := newMatcher().Match(base, input)
	var heuristicInputs int
	for _, p := range pairs {
		if p.Base != nil && p.Base.ID == "" && p.Input != nil {
			heuristicInputs++
			if p.Input == withID {
				t.Error("identity-consumed input reused by heuristic stage")
			}
		}
	}
	if heuristicInputs != 1 {
		t.Errorf("heuristic matches: got %d, want 1", heuristicInputs)
	}
}
