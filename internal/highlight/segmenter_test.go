package highlight

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/rematch/internal/pattern"
)

func unmatched(s string) Segment { return Segment{Kind: Unmatched, Text: s, Color: NoColor} }

func matched(s string, color int) Segment { return Segment{Kind: Matched, Text: s, Color: color} }

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    pattern.MatchOptions
		text    string
		want    []Segment
	}{
		{
			name:    "one match at end of line",
			pattern: `a+b`,
			text:    "this line has one match: aaab",
			want:    []Segment{unmatched("this line has one match: "), matched("aaab", ColorA)},
		},
		{
			name:    "no matches",
			pattern: `a+b`,
			text:    "this text has no matches",
			want:    []Segment{unmatched("this text has no matches")},
		},
		{
			name:    "multiline anchor",
			pattern: `^b`,
			opts:    pattern.MatchOptions{Multiline: true},
			text:    "a\nb\nc",
			want:    []Segment{unmatched("a\n"), matched("b", ColorA), unmatched("\nc")},
		},
		{
			name:    "adjacent matches alternate without empty gaps",
			pattern: `ab`,
			text:    "ababab",
			want:    []Segment{matched("ab", ColorA), matched("ab", ColorB), matched("ab", ColorA)},
		},
		{
			name:    "match at start",
			pattern: `x`,
			text:    "xyz",
			want:    []Segment{matched("x", ColorA), unmatched("yz")},
		},
		{
			name:    "zero-length match stops immediately",
			pattern: `(|a)`,
			text:    "aaa",
			want:    []Segment{unmatched("aaa")},
		},
		{
			name:    "zero-length match after a real match",
			pattern: `a*`,
			text:    "aaba",
			want:    []Segment{matched("aa", ColorA), unmatched("ba")},
		},
		{
			name:    "empty pattern",
			pattern: ``,
			text:    "abc",
			want:    []Segment{unmatched("abc")},
		},
		{
			name:    "empty text",
			pattern: `a`,
			text:    "",
			want:    nil,
		},
		{
			name:    "pattern matching everything",
			pattern: `(?s).+`,
			text:    "all\nof it",
			want:    []Segment{matched("all\nof it", ColorA)},
		},
		{
			name:    "ignore case",
			pattern: `ab`,
			opts:    pattern.MatchOptions{IgnoreCase: true},
			text:    "AB-ab",
			want:    []Segment{matched("AB", ColorA), unmatched("-"), matched("ab", ColorB)},
		},
		{
			name:    "dot all spans lines",
			pattern: `a.b`,
			opts:    pattern.MatchOptions{DotAll: true},
			text:    "a\nb",
			want:    []Segment{matched("a\nb", ColorA)},
		},
		{
			name:    "multibyte text",
			pattern: `é+`,
			text:    "caféé au lait",
			want:    []Segment{unmatched("caf"), matched("éé", ColorA), unmatched(" au lait")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pattern.Compile(tt.pattern, tt.opts)
			require.NoError(t, err)

			got := Partition(p, tt.text)
			if diff := cmp.Diff(tt.want, got.Segments); diff != "" {
				t.Errorf("Partition() segments mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.text, Join(got.Segments))
			assert.False(t, got.Truncated)
		})
	}
}

func TestPartitionEnginesAgree(t *testing.T) {
	cases := []struct {
		pattern string
		opts    pattern.MatchOptions
		text    string
	}{
		{`a+b`, pattern.MatchOptions{}, "this line has one match: aaab"},
		{`^b`, pattern.MatchOptions{Multiline: true}, "a\nb\nc"},
		{`ab`, pattern.MatchOptions{}, "ababab"},
		{`(|a)`, pattern.MatchOptions{}, "aaa"},
	}
	for _, c := range cases {
		ref, err := pattern.Compile(c.pattern, c.opts)
		require.NoError(t, err)
		want := Partition(ref, c.text)

		for _, engine := range []pattern.Engine{pattern.EngineBacktrack, pattern.EngineCoregex} {
			p, err := pattern.CompileEngine(engine, c.pattern, c.opts)
			require.NoError(t, err)
			got := Partition(p, c.text)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s disagrees with re2 on %q (-re2 +%s):\n%s", engine, c.pattern, engine, diff)
			}
		}
	}
}

func TestPartitionCap(t *testing.T) {
	p := pattern.MustCompile(`a`, pattern.MatchOptions{})

	got := Partition(p, strings.Repeat("a", 500))
	require.Len(t, got.Segments, DefaultMatchCap+1)
	assert.Equal(t, DefaultMatchCap, got.Matches)
	assert.True(t, got.Truncated)

	last := got.Segments[len(got.Segments)-1]
	assert.Equal(t, Unmatched, last.Kind)
	assert.Equal(t, strings.Repeat("a", 400), last.Text)

	exact := Partition(p, strings.Repeat("a", DefaultMatchCap))
	assert.Equal(t, DefaultMatchCap, exact.Matches)
	assert.Len(t, exact.Segments, DefaultMatchCap)
	assert.False(t, exact.Truncated)
}

func TestPartitionNCustomCap(t *testing.T) {
	p := pattern.MustCompile(`\d`, pattern.MatchOptions{})

	got := PartitionN(p, "1 2 3 4", 2)
	assert.Equal(t, []Segment{matched("1", ColorA), unmatched(" "), matched("2", ColorB), unmatched(" 3 4")}, got.Segments)
	assert.True(t, got.Truncated)

	// Non-positive caps fall back to the default.
	assert.Equal(t, 4, PartitionN(p, "1 2 3 4", 0).Matches)
}

// countingMatcher records how many searches the segmenter performs.
type countingMatcher struct {
	pattern.Matcher
	calls int
}

func (c *countingMatcher) FindIndex(text string) []int {
	c.calls++
	return c.Matcher.FindIndex(text)
}

func TestPartitionStopsSearching(t *testing.T) {
	m := &countingMatcher{Matcher: pattern.MustCompile(`a`, pattern.MatchOptions{})}
	Partition(m, strings.Repeat("a", 500))
	// One search per accepted match plus the probe that finds the cap exceeded.
	assert.Equal(t, DefaultMatchCap+1, m.calls)

	m = &countingMatcher{Matcher: pattern.MustCompile(`b*`, pattern.MatchOptions{})}
	Partition(m, strings.Repeat("a", 500))
	assert.Equal(t, 1, m.calls)
}

func TestAlternationStateIsPerCall(t *testing.T) {
	p := pattern.MustCompile(`o`, pattern.MatchOptions{})

	first := Partition(p, "o")
	second := Partition(p, "o")
	assert.Equal(t, ColorA, first.Segments[0].Color)
	assert.Equal(t, ColorA, second.Segments[0].Color)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := Partition(p, "foo boo")
			colors := []int{}
			for _, seg := range res.Segments {
				if c, ok := seg.ColorIndex(); ok {
					colors = append(colors, c)
				}
			}
			assert.Equal(t, []int{ColorA, ColorB, ColorA, ColorB}, colors)
		}()
	}
	wg.Wait()
}

func TestAlternator(t *testing.T) {
	var a alternator
	got := []int{a.take(), a.take(), a.take(), a.take()}
	assert.Equal(t, []int{ColorA, ColorB, ColorA, ColorB}, got)
}

func TestSegmentColorIndex(t *testing.T) {
	c, ok := matched("x", ColorB).ColorIndex()
	assert.True(t, ok)
	assert.Equal(t, ColorB, c)

	c, ok = unmatched("x").ColorIndex()
	assert.False(t, ok)
	assert.Equal(t, NoColor, c)

	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "unmatched", Unmatched.String())
}
