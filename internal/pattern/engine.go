package pattern

import (
	"fmt"
	"strings"
)

// Engine names a regular expression implementation.
type Engine string

const (
	// EngineRE2 is the standard library regexp package (RE2 syntax, linear time).
	EngineRE2 Engine = "re2"
	// EngineCoregex is github.com/coregx/coregex, stdlib-compatible syntax.
	EngineCoregex Engine = "coregex"
	// EngineBacktrack is github.com/dlclark/regexp2, which adds lookaround and backreferences.
	EngineBacktrack Engine = "backtrack"

	DefaultEngine = EngineRE2
)

// Engines lists the supported engines in display order.
func Engines() []Engine {
	return []Engine{EngineRE2, EngineCoregex, EngineBacktrack}
}

// ParseEngine resolves an engine name (case-insensitive). Empty selects DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultEngine, nil
	}
	for _, e := range Engines() {
		if string(e) == name {
			return e, nil
		}
	}
	switch name {
	case "regexp", "std", "stdlib":
		return EngineRE2, nil
	case "regexp2", "pcre":
		return EngineBacktrack, nil
	}
	return "", fmt.Errorf("unknown engine '%s' (want one of %v)", name, Engines())
}

func (e Engine) String() string { return string(e) }
