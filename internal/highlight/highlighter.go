package highlight

import (
	"time"

	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/pattern"
)

// Request is one highlighting request. Nothing in it outlives the call.
type Request struct {
	Pattern          string
	Text             string
	Options          pattern.MatchOptions
	Engine           pattern.Engine // empty selects pattern.DefaultEngine
	MaxMatches       int            // <= 0 selects DefaultMatchCap
	BacktrackTimeout time.Duration  // <= 0 selects pattern.DefaultBacktrackTimeout
}

// Result is a successful highlight.
type Result struct {
	Pattern   string
	Options   pattern.MatchOptions
	Engine    pattern.Engine
	Segments  []Segment
	Matches   int
	Truncated bool
}

// Highlight compiles the request's pattern and partitions its text.
// A pattern that does not compile yields a *pattern.PatternError and no segments.
func Highlight(req Request) (Result, error) {
	compiler := pattern.Compiler{Engine: req.Engine, BacktrackTimeout: req.BacktrackTimeout}
	p, err := compiler.Compile(req.Pattern, req.Options)
	if err != nil {
		return Result{}, err
	}

	parts := PartitionN(p, req.Text, req.MaxMatches)
	logger.DebugTagf("highlight", "Highlight: '%s' %s found %d matches in %d bytes (truncated=%v)",
		req.Pattern, req.Options, parts.Matches, len(req.Text), parts.Truncated)

	return Result{
		Pattern:   req.Pattern,
		Options:   req.Options,
		Engine:    p.Engine(),
		Segments:  parts.Segments,
		Matches:   parts.Matches,
		Truncated: parts.Truncated,
	}, nil
}

// HighlightString highlights text with the default engine and match cap.
func HighlightString(patternStr, text string, opts pattern.MatchOptions) (Result, error) {
	return Highlight(Request{Pattern: patternStr, Text: text, Options: opts})
}

// Text reassembles the highlighted text.
func (r Result) Text() string { return Join(r.Segments) }

// MatchedTexts returns the matched substrings in order.
func (r Result) MatchedTexts() []string { return MatchedTexts(r.Segments) }
