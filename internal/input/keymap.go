// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (function keys, arrows, Ctrl+letter) to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps runes to actions.
type RuneKeymap map[rune]Action

// ModKeymap maps modifier + rune combinations (Alt+i etc.) to actions.
type ModKeymap map[tcell.ModMask]RuneKeymap

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// --- Quit ---
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlQ] = ActionQuit

	// --- Scrolling the text body ---
	p.keymap[tcell.KeyUp] = ActionScrollUp
	p.keymap[tcell.KeyDown] = ActionScrollDown
	p.keymap[tcell.KeyPgUp] = ActionPageUp
	p.keymap[tcell.KeyPgDn] = ActionPageDown

	// --- Pattern line ---
	p.keymap[tcell.KeyLeft] = ActionCursorLeft
	p.keymap[tcell.KeyRight] = ActionCursorRight
	p.keymap[tcell.KeyHome] = ActionCursorHome
	p.keymap[tcell.KeyEnd] = ActionCursorEnd
	p.keymap[tcell.KeyCtrlA] = ActionCursorHome
	p.keymap[tcell.KeyCtrlE] = ActionCursorEnd
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyCtrlU] = ActionClearPattern

	// --- Options ---
	p.keymap[tcell.KeyF2] = ActionToggleIgnoreCase
	p.keymap[tcell.KeyCtrlG] = ActionToggleIgnoreCase
	p.keymap[tcell.KeyF3] = ActionToggleMultiline
	p.keymap[tcell.KeyCtrlL] = ActionToggleMultiline
	p.keymap[tcell.KeyF4] = ActionToggleDotAll
	p.keymap[tcell.KeyCtrlD] = ActionToggleDotAll
	p.keymap[tcell.KeyF5] = ActionCycleEngine

	// --- Other ---
	p.keymap[tcell.KeyCtrlY] = ActionCopyMatches
	p.keymap[tcell.KeyF6] = ActionCycleTheme

	p.modKeymap[tcell.ModAlt] = RuneKeymap{
		'i': ActionToggleIgnoreCase,
		'm': ActionToggleMultiline,
		's': ActionToggleDotAll,
		'e': ActionCycleEngine,
		't': ActionCycleTheme,
	}
}

// Bind maps key to action, replacing any existing binding.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// Printable runes without modifiers become ActionInsertRune.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Modifier + rune combinations
	if key == tcell.KeyRune && mod != tcell.ModNone {
		if runeMap, ok := p.modKeymap[mod]; ok {
			if action, ok := runeMap[runeVal]; ok {
				return ActionEvent{Action: action}
			}
		}
	}

	// Ctrl+letter keys already encode Ctrl in the key itself.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Special keys (Shift is allowed, e.g. Shift+Up)
	if key != tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Plain runes edit the pattern
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
