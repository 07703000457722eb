// Package highlight partitions a text into matched and unmatched segments for
// a compiled pattern, alternating colors between consecutive matches.
package highlight

import (
	"github.com/bethropolis/rematch/internal/pattern"
)

// DefaultMatchCap bounds the matches processed in one call.
const DefaultMatchCap = 100

// Partitioned is the segmentation of one text.
type Partitioned struct {
	Segments []Segment
	Matches  int
	// Truncated is set when the cap stopped the search while another match was available.
	Truncated bool
}

// Partition segments text with the default match cap.
func Partition(m pattern.Matcher, text string) Partitioned {
	return PartitionN(m, text, DefaultMatchCap)
}

// PartitionN segments text, processing at most maxMatches matches (<= 0 means DefaultMatchCap).
//
// Each search runs on the text remaining after the previous match. A zero-length
// match ends the search, as does reaching the cap; the rest of the text becomes
// one unmatched segment. Empty unmatched segments are never emitted.
func PartitionN(m pattern.Matcher, text string, maxMatches int) Partitioned {
	if maxMatches <= 0 {
		maxMatches = DefaultMatchCap
	}

	var (
		out    Partitioned
		colors alternator
	)
	rest := text
	for rest != "" {
		loc := m.FindIndex(rest)
		if loc == nil || loc[0] == loc[1] {
			break
		}
		if out.Matches == maxMatches {
			out.Truncated = true
			break
		}
		if loc[0] > 0 {
			out.Segments = append(out.Segments, Segment{Kind: Unmatched, Text: rest[:loc[0]], Color: NoColor})
		}
		out.Segments = append(out.Segments, Segment{Kind: Matched, Text: rest[loc[0]:loc[1]], Color: colors.take()})
		out.Matches++
		rest = rest[loc[1]:]
	}
	if rest != "" {
		out.Segments = append(out.Segments, Segment{Kind: Unmatched, Text: rest, Color: NoColor})
	}
	return out
}
