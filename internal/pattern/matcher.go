package pattern

import (
	"regexp"
	"time"

	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/utils"
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Matcher finds the leftmost match in a text. The returned pair holds byte
// offsets into text; nil means no match.
type Matcher interface {
	FindIndex(text string) []int
	String() string
}

// stdMatcher adapts the standard library engine.
type stdMatcher struct {
	re *regexp.Regexp
}

func (m stdMatcher) FindIndex(text string) []int { return m.re.FindStringIndex(text) }

func (m stdMatcher) String() string { return m.re.String() }

// coregexMatcher adapts coregex, which mirrors the stdlib API.
type coregexMatcher struct {
	re *coregex.Regex
}

func (m coregexMatcher) FindIndex(text string) []int { return m.re.FindStringIndex(text) }

func (m coregexMatcher) String() string { return m.re.String() }

// backtrackMatcher adapts regexp2. regexp2 reports rune offsets, so they are
// mapped back to byte offsets before returning.
type backtrackMatcher struct {
	re *regexp2.Regexp
}

func (m backtrackMatcher) FindIndex(text string) []int {
	match, err := m.re.FindStringMatch(text)
	if err != nil {
		// A timed-out search is reported as no match.
		logger.Warnf("backtrack engine: search for '%s' abandoned: %v", m.re.String(), err)
		return nil
	}
	if match == nil {
		return nil
	}
	start := runeOffset(text, match.Index)
	end := start + runeOffset(text[start:], match.Length)
	return []int{start, end}
}

// runeOffset clamps utils.RuneIndexToByteOffset to len(s). regexp2 counts
// invalid UTF-8 bytes as one rune each, as ranging over s does.
func runeOffset(s string, n int) int {
	if off := utils.RuneIndexToByteOffset(s, n); off >= 0 {
		return off
	}
	return len(s)
}

func (m backtrackMatcher) String() string { return m.re.String() }

func compileStd(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return stdMatcher{re: re}, nil
}

func compileCoregex(expr string) (Matcher, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}
	return coregexMatcher{re: re}, nil
}

func compileBacktrack(source string, opts MatchOptions, timeout time.Duration) (Matcher, error) {
	var flags regexp2.RegexOptions
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	if opts.Multiline {
		flags |= regexp2.Multiline
	}
	if opts.DotAll {
		flags |= regexp2.Singleline
	}
	re, err := regexp2.Compile(source, flags)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = timeout
	return backtrackMatcher{re: re}, nil
}
