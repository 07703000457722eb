package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched by every *PatternError through errors.Is.
var ErrInvalidPattern = errors.New("invalid pattern")

// PatternError reports a pattern that failed to compile. It is a recoverable,
// reportable condition: callers render it instead of a highlight.
type PatternError struct {
	Pattern string // the pattern exactly as supplied
	Engine  Engine
	Err     error // the engine's compile error
}

func (e *PatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid regex: %s", e.Pattern)
	}
	return fmt.Sprintf("invalid regex: %s: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidPattern) hold for any PatternError.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// AsPatternError extracts a *PatternError from err's chain.
func AsPatternError(err error) (*PatternError, bool) {
	var perr *PatternError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
