// Package differ inspects matched pairs and emits typed difference
// records, suppressing cosmetic noise.
package differ

import (
	"sort"

	"github.com/hazyhaar/uidiff/hierdiff/internal/match"
	"github.com/hazyhaar/uidiff/hierdiff/internal/textsim"
	"github.com/hazyhaar/uidiff/report"
)

// Differ turns pairs into differences.
type Differ struct {
	// textThreshold suppresses text_change for near-identical texts.
	textThreshold float64
}

// New creates a Differ with the given text similarity threshold.
func New(textThreshold float64) *Differ {
	return &Differ{textThreshold: textThreshold}
}

// Diff emits differences for every pair, in pair order. Identical full
// pairs emit nothing.
func (d *Differ) Diff(pairs []match.Pair) []report.Difference {
	var diffs []report.Difference
	for _, p := range pairs {
		switch {
		case p.Base == nil && p.Input != nil:
			diffs = append(diffs, report.Difference{
				Type:  report.Added,
				Path:  p.Input.Path,
				Class: p.Input.Class,
				ID:    p.Input.ID,
				Text:  p.Input.Text,
			})
		case p.Input == nil && p.Base != nil:
			diffs = append(diffs, report.Difference{
				Type:  report.Removed,
				Path:  p.Base.Path,
				Class: p.Base.Class,
				ID:    p.Base.ID,
				Text:  p.Base.Text,
			})
		case p.Base != nil && p.Input != nil:
			diffs = append(diffs, d.diffPair(p)...)
		}
	}
	return diffs
}

func (d *Differ) diffPair(p match.Pair) []report.Difference {
	a, b := p.Base, p.Input
	var diffs []report.Difference

	// Attribute changes over the sorted union of allow-listed keys,
	// absent↔present transitions included.
	for _, k := range keyUnion(a.Attrs, b.Attrs) {
		va, aok := a.Attrs[k]
		vb, bok := b.Attrs[k]
		if va == vb && aok == bok {
			continue
		}
		diff := report.Difference{
			Type:  report.AttrChange,
			Path:  a.Path,
			Class: a.Class,
			Attr:  k,
		}
		if aok {
			diff.From = report.Str(va)
		}
		if bok {
			diff.To = report.Str(vb)
		}
		diffs = append(diffs, diff)
	}

	// Text: already normalized at extraction; single-character punctuation
	// drift stays below the threshold and is not reported.
	if a.Text != b.Text && textsim.Ratio(a.Text, b.Text) < d.textThreshold {
		diffs = append(diffs, report.Difference{
			Type:  report.TextChange,
			Path:  a.Path,
			Class: a.Class,
			From:  report.Str(a.Text),
			To:    report.Str(b.Text),
		})
	}

	// Bounds: exact comparison, no tolerance, only when both parsed.
	if a.Bounds != nil && b.Bounds != nil && *a.Bounds != *b.Bounds {
		diffs = append(diffs, report.Difference{
			Type:  report.BoundsChange,
			Path:  a.Path,
			Class: a.Class,
			From:  report.Str(a.Bounds.String()),
			To:    report.Str(b.Bounds.String()),
		})
	}

	return diffs
}

func keyUnion(a, b map[string]string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		set[k] = struct{}{}
	}
	for k := range b {
		set[k] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
