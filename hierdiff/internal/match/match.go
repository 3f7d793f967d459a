// Package match pairs nodes across two collected trees: first by stable
// identifier, then heuristically by class plus fuzzy text/geometry
// similarity for everything identifier-less.
//
// Known behavior, kept deliberately: identifier values that appear only in
// the input tree are never visited — identity matching iterates base-side
// identifiers, and identifier-bearing input nodes never reach the heuristic
// stage, so such nodes drop out of the diff entirely.
package match

import (
	"github.com/hazyhaar/uidiff/element"
	"github.com/hazyhaar/uidiff/hierdiff/internal/textsim"
	"github.com/hazyhaar/uidiff/hierdiff/internal/tree"
)

// Pair is a cross-tree correspondence. Exactly one side may be nil
// (added/removed); both nil is never constructed.
type Pair struct {
	Base  *tree.Node
	Input *tree.Node
}

// Matcher pairs node sequences. One Matcher may be reused across
// comparisons; the consumed-input tracking set lives only inside Match.
type Matcher struct {
	accept       float64
	contentBoost float64
	overlapBonus float64
}

// New creates a Matcher with the given heuristic acceptance threshold,
// accessibility-label boost, and rectangle-overlap bonus.
func New(accept, contentBoost, overlapBonus float64) *Matcher {
	return &Matcher{
		accept:       accept,
		contentBoost: contentBoost,
		overlapBonus: overlapBonus,
	}
}

// Match pairs the base and input sequences: identity matches first, then
// heuristic matches over the leftovers, preserving base collection order
// within each stage.
func (m *Matcher) Match(base, input []*tree.Node) []Pair {
	used := make(map[*element.Element]struct{})
	pairs := m.byIdentifier(base, input, used)
	return append(pairs, m.heuristic(base, input, used)...)
}

// byIdentifier groups both sides by identifier value, for every identifier
// seen on at least one base node, and pairs occurrences positionally.
// A group-size mismatch leaves trailing one-sided pairs.
func (m *Matcher) byIdentifier(base, input []*tree.Node, used map[*element.Element]struct{}) []Pair {
	var order []string
	baseByID := make(map[string][]*tree.Node)
	for _, n := range base {
		if n.ID == "" {
			continue
		}
		if _, seen := baseByID[n.ID]; !seen {
			order = append(order, n.ID)
		}
		baseByID[n.ID] = append(baseByID[n.ID], n)
	}

	inputByID := make(map[string][]*tree.Node)
	for _, n := range input {
		if n.ID != "" {
			inputByID[n.ID] = append(inputByID[n.ID], n)
		}
	}

	var pairs []Pair
	for _, id := range order {
		baseGroup := baseByID[id]
		inputGroup := inputByID[id]
		n := len(baseGroup)
		if len(inputGroup) > n {
			n = len(inputGroup)
		}
		for i := 0; i < n; i++ {
			var p Pair
			if i < len(baseGroup) {
				p.Base = baseGroup[i]
			}
			if i < len(inputGroup) {
				p.Input = inputGroup[i]
				used[p.Input.Elem] = struct{}{}
			}
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// heuristic greedily assigns identifier-less base nodes to still-unmatched
// identifier-less input nodes of the same class. First encounter wins on
// exact score ties; the assignment is order-dependent, not globally
// optimal, and changing that would change observable output on ambiguous
// inputs.
func (m *Matcher) heuristic(base, input []*tree.Node, used map[*element.Element]struct{}) []Pair {
	var candidates []*tree.Node
	for _, n := range input {
		if n.ID != "" {
			continue
		}
		if _, taken := used[n.Elem]; taken {
			continue
		}
		candidates = append(candidates, n)
	}

	var pairs []Pair
	for _, a := range base {
		if a.ID != "" {
			continue
		}
		var best *tree.Node
		bestIdx := -1
		bestScore := 0.0
		for i, b := range candidates {
			if a.Class != b.Class {
				continue
			}
			score := m.score(a, b)
			if score > bestScore {
				bestScore = score
				best = b
				bestIdx = i
			}
		}
		if best != nil && bestScore > m.accept {
			pairs = append(pairs, Pair{Base: a, Input: best})
			candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
		} else {
			pairs = append(pairs, Pair{Base: a})
		}
	}

	for _, b := range candidates {
		pairs = append(pairs, Pair{Input: b})
	}
	return pairs
}

func (m *Matcher) score(a, b *tree.Node) float64 {
	score := textsim.Ratio(a.Content, b.Content) * m.contentBoost
	if s := textsim.Ratio(a.Text, b.Text); s > score {
		score = s
	}
	if a.Bounds != nil && b.Bounds != nil && a.Bounds.Overlaps(*b.Bounds) {
		score += m.overlapBonus
	}
	return score
}
