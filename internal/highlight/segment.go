package highlight

import "strings"

// Kind tags a segment as part of a match or not.
type Kind int

const (
	Unmatched Kind = iota
	Matched
)

func (k Kind) String() string {
	if k == Matched {
		return "matched"
	}
	return "unmatched"
}

// The two alternating match colors. Concrete colors are a rendering concern.
const (
	NoColor = -1
	ColorA  = 0
	ColorB  = 1

	NumColors = 2
)

// Segment is a contiguous slice of the source text.
// Color is ColorA or ColorB for matched segments and NoColor otherwise.
type Segment struct {
	Kind  Kind
	Text  string
	Color int
}

// ColorIndex returns the alternating color of a matched segment.
func (s Segment) ColorIndex() (int, bool) {
	if s.Kind != Matched {
		return NoColor, false
	}
	return s.Color, true
}

// IsMatch reports whether the segment is a match.
func (s Segment) IsMatch() bool { return s.Kind == Matched }

// Join concatenates segment texts. For a partition it reproduces the source text.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// MatchedTexts returns the text of every matched segment in order.
func MatchedTexts(segments []Segment) []string {
	var out []string
	for _, seg := range segments {
		if seg.Kind == Matched {
			out = append(out, seg.Text)
		}
	}
	return out
}
