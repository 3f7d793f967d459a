// Package textsim provides the fuzzy string similarity used by the matcher
// and the differ: a Levenshtein ratio in [0,1]. Symmetric, 1.0 only for
// identical strings, 0.0 only when nothing aligns.
package textsim

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio returns the similarity of a and b as 1 - distance/maxLen over
// runes. Two empty strings are identical (1.0); an empty string shares
// nothing with a non-empty one (0.0).
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0.0
	}
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(d)/float64(maxLen)
}
