package render

import (
	"strings"

	"github.com/bethropolis/rematch/internal/highlight"
)

// Lines splits segments at newlines. The newline itself is dropped; a segment
// spanning lines becomes one piece per line with the same kind and color.
// There is always at least one line.
func Lines(segments []highlight.Segment) [][]highlight.Segment {
	lines := [][]highlight.Segment{nil}
	for _, seg := range segments {
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			piece := seg
			piece.Text = part
			lines[len(lines)-1] = append(lines[len(lines)-1], piece)
		}
	}
	return lines
}
