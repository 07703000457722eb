// internal/event/event.go
package event

import (
	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Input state
	TypePatternChanged // The pattern line was edited
	TypeOptionsChanged // A match option or the engine was toggled

	// Text and results
	TypeTextLoaded  // The text body was (re)loaded
	TypeHighlighted // A highlight outcome is ready

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:        "Unknown",
	TypePatternChanged: "PatternChanged",
	TypeOptionsChanged: "OptionsChanged",
	TypeTextLoaded:     "TextLoaded",
	TypeHighlighted:    "Highlighted",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
	TypeThemeChanged:   "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// PatternChangedData carries the edited pattern.
type PatternChangedData struct {
	Pattern string
}

// OptionsChangedData carries the new options and engine.
type OptionsChangedData struct {
	Options pattern.MatchOptions
	Engine  pattern.Engine
}

// TextLoadedData describes a new text body.
type TextLoadedData struct {
	Source string // File path, or "" for text that did not come from a file
	Text   string
	Err    error // Set when reloading failed; Text is then empty
}

// HighlightedData carries a finished highlight request.
type HighlightedData struct {
	Outcome highlight.Outcome
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
