// Package pattern compiles user-supplied regular expressions under a set of
// match options into matchers usable by the highlighter.
package pattern

import (
	"fmt"
	"time"

	"github.com/bethropolis/rematch/internal/logger"
)

// DefaultBacktrackTimeout bounds a single backtracking search.
const DefaultBacktrackTimeout = 2 * time.Second

// Pattern is a compiled pattern. It belongs to the request that compiled it.
type Pattern struct {
	source  string
	options MatchOptions
	engine  Engine
	matcher Matcher
}

// Source returns the pattern as supplied, without option flags.
func (p *Pattern) Source() string { return p.source }

// Options returns the options the pattern was compiled with.
func (p *Pattern) Options() MatchOptions { return p.options }

// Engine returns the engine that compiled the pattern.
func (p *Pattern) Engine() Engine { return p.engine }

// FindIndex implements Matcher.
func (p *Pattern) FindIndex(text string) []int { return p.matcher.FindIndex(text) }

func (p *Pattern) String() string { return p.source }

// Compiler compiles patterns with a chosen engine.
// The zero value uses DefaultEngine and DefaultBacktrackTimeout.
type Compiler struct {
	Engine           Engine
	BacktrackTimeout time.Duration
}

// Compile compiles source under opts with the default engine.
func Compile(source string, opts MatchOptions) (*Pattern, error) {
	return Compiler{}.Compile(source, opts)
}

// CompileEngine compiles source under opts with the given engine.
func CompileEngine(engine Engine, source string, opts MatchOptions) (*Pattern, error) {
	return Compiler{Engine: engine}.Compile(source, opts)
}

// MustCompile is like Compile but panics on error. Use only with constant patterns.
func MustCompile(source string, opts MatchOptions) *Pattern {
	p, err := Compile(source, opts)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile turns source into a Pattern. A malformed source yields a *PatternError;
// an unknown engine yields a plain error.
func (c Compiler) Compile(source string, opts MatchOptions) (*Pattern, error) {
	engine := c.Engine
	if engine == "" {
		engine = DefaultEngine
	}

	var (
		m   Matcher
		err error
	)
	switch engine {
	case EngineRE2:
		m, err = compileStd(opts.String() + source)
	case EngineCoregex:
		m, err = compileCoregex(opts.String() + source)
	case EngineBacktrack:
		timeout := c.BacktrackTimeout
		if timeout <= 0 {
			timeout = DefaultBacktrackTimeout
		}
		m, err = compileBacktrack(source, opts, timeout)
	default:
		return nil, fmt.Errorf("unknown engine '%s'", engine)
	}
	if err != nil {
		logger.DebugTagf("pattern", "Compile: '%s' rejected by %s: %v", source, engine, err)
		return nil, &PatternError{Pattern: source, Engine: engine, Err: err}
	}

	logger.DebugTagf("pattern", "Compile: '%s' %s compiled with %s", source, opts, engine)
	return &Pattern{source: source, options: opts, engine: engine, matcher: m}, nil
}
