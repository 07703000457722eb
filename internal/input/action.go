// internal/input/action.go
package input

// Action represents an operation the interactive mode performs.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit

	// --- Text body scrolling ---
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown

	// --- Pattern line editing ---
	ActionCursorLeft
	ActionCursorRight
	ActionCursorHome
	ActionCursorEnd
	ActionInsertRune // Requires Rune argument
	ActionDeleteCharBackward
	ActionDeleteCharForward
	ActionClearPattern

	// --- Match options ---
	ActionToggleIgnoreCase
	ActionToggleMultiline
	ActionToggleDotAll
	ActionCycleEngine

	// --- Other ---
	ActionCopyMatches
	ActionCycleTheme
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionScrollUp:           "scroll-up",
	ActionScrollDown:         "scroll-down",
	ActionPageUp:             "page-up",
	ActionPageDown:           "page-down",
	ActionCursorLeft:         "cursor-left",
	ActionCursorRight:        "cursor-right",
	ActionCursorHome:         "cursor-home",
	ActionCursorEnd:          "cursor-end",
	ActionInsertRune:         "insert-rune",
	ActionDeleteCharBackward: "delete-backward",
	ActionDeleteCharForward:  "delete-forward",
	ActionClearPattern:       "clear-pattern",
	ActionToggleIgnoreCase:   "toggle-ignore-case",
	ActionToggleMultiline:    "toggle-multiline",
	ActionToggleDotAll:       "toggle-dot-all",
	ActionCycleEngine:        "cycle-engine",
	ActionCopyMatches:        "copy-matches",
	ActionCycleTheme:         "cycle-theme",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
