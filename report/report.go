// Package report defines the structured types emitted by the diff engine.
// These are the public API contract: any consumer (CLI, stores, pipelines)
// imports this package to receive and process comparison results.
package report

// Type is the kind of UI change observed.
type Type string

const (
	Added        Type = "added"         // node present only in the input tree
	Removed      Type = "removed"       // node present only in the base tree
	AttrChange   Type = "attr_change"   // allow-listed attribute value changed
	TextChange   Type = "text_change"   // visible text changed beyond the similarity threshold
	BoundsChange Type = "bounds_change" // on-screen rectangle changed
)

// Difference is a single meaningful change between two snapshots.
//
// Field usage by type: added/removed carry ID and Text of the surviving
// side; attr_change carries Attr plus From/To (nil = attribute absent on
// that side); text_change carries From/To texts; bounds_change carries
// From/To rectangles in "[x1,y1][x2,y2]" form.
type Difference struct {
	Type  Type    `json:"type"`
	Path  string  `json:"path"`
	Class string  `json:"class"`
	ID    string  `json:"id,omitempty"`
	Text  string  `json:"text,omitempty"`
	Attr  string  `json:"attr,omitempty"`
	From  *string `json:"from,omitempty"`
	To    *string `json:"to,omitempty"`
}

// Report is the complete result of one comparison run.
type Report struct {
	ID          string       `json:"id"`                   // UUIDv7
	BaseFile    string       `json:"base_file,omitempty"`  // base snapshot path
	InputFile   string       `json:"input_file,omitempty"` // comparison snapshot path
	Differences []Difference `json:"differences"`
	Score       float64      `json:"score"`      // 0=identical .. 1=completely different
	TotalDiffs  int          `json:"total_diffs"`
	BaseNodes   int          `json:"base_nodes"` // node count of the base tree
	Timestamp   int64        `json:"timestamp"`  // epoch milliseconds
}

// Str returns a pointer to s, for the nullable From/To fields.
func Str(s string) *string { return &s }
