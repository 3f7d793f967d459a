package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an on-screen axis-aligned rectangle given by two corners.
// Malformed geometry (x2 < x1 etc.) is tolerated; it only ever fails the
// positive-overlap test.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// String renders the rectangle in the uiautomator dump form.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", r.X1, r.Y1, r.X2, r.Y2)
}

// Overlaps reports whether the intersection of r and o has positive width
// and height.
func (r Rect) Overlaps(o Rect) bool {
	ix1 := max(r.X1, o.X1)
	iy1 := max(r.Y1, o.Y1)
	ix2 := min(r.X2, o.X2)
	iy2 := min(r.Y2, o.Y2)
	return ix2 > ix1 && iy2 > iy1
}

// ParseBounds parses the literal "[x1,y1][x2,y2]" format. Any deviation
// (missing brackets, non-integer coordinates, wrong segment count) yields
// ok=false, never an error: a broken rectangle means "no rectangle".
func ParseBounds(s string) (Rect, bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Rect{}, false
	}
	parts := strings.Split(s[1:len(s)-1], "][")
	if len(parts) != 2 {
		return Rect{}, false
	}
	x1, y1, ok := parsePoint(parts[0])
	if !ok {
		return Rect{}, false
	}
	x2, y2, ok := parsePoint(parts[1])
	if !ok {
		return Rect{}, false
	}
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
}

func parsePoint(s string) (int, int, bool) {
	x, y, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	xi, err := strconv.Atoi(x)
	if err != nil {
		return 0, 0, false
	}
	yi, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, false
	}
	return xi, yi, true
}
