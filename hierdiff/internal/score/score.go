// Package score reduces a difference list to one normalized change
// magnitude relative to the base tree's size.
package score

import (
	"math"

	"github.com/hazyhaar/uidiff/report"
)

// Calculator computes weighted normalized scores.
type Calculator struct {
	weights  map[string]float64
	fallback float64
}

// New creates a Calculator. Difference types missing from weights use the
// fallback weight.
func New(weights map[string]float64, fallback float64) *Calculator {
	return &Calculator{weights: weights, fallback: fallback}
}

// Score returns min(1, Σweight/totalBaseNodes) rounded to 4 decimal
// places. A zero-node base tree scores 0.0 unconditionally, whatever the
// difference count.
func (c *Calculator) Score(diffs []report.Difference, totalBaseNodes int) float64 {
	if totalBaseNodes == 0 {
		return 0.0
	}

	var weighted float64
	for _, d := range diffs {
		if w, ok := c.weights[string(d.Type)]; ok {
			weighted += w
		} else {
			weighted += c.fallback
		}
	}

	s := weighted / float64(totalBaseNodes)
	if s > 1.0 {
		s = 1.0
	}
	return math.Round(s*10000) / 10000
}
