package app

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/rematch/internal/clipboard"
	"github.com/bethropolis/rematch/internal/event"
	"github.com/bethropolis/rematch/internal/input"
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/tui"
	"github.com/bethropolis/rematch/internal/utils"
)

// handleKey applies one key press and reports whether a redraw is needed.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	ae := a.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "App: key %v -> %v", ev.Name(), ae.Action)

	switch ae.Action {
	case input.ActionQuit:
		a.Quit()
		return false

	case input.ActionInsertRune:
		a.editPattern(func(p string, c int) (string, int) {
			return utils.InsertRune(p, c, ae.Rune), c + 1
		})
	case input.ActionDeleteCharBackward:
		a.editPattern(func(p string, c int) (string, int) {
			if c == 0 {
				return p, c
			}
			return utils.DeleteRune(p, c-1), c - 1
		})
	case input.ActionDeleteCharForward:
		a.editPattern(func(p string, c int) (string, int) {
			return utils.DeleteRune(p, c), c
		})
	case input.ActionClearPattern:
		a.editPattern(func(string, int) (string, int) { return "", 0 })

	case input.ActionCursorLeft:
		a.moveCursor(func(c, _ int) int { return c - 1 })
	case input.ActionCursorRight:
		a.moveCursor(func(c, _ int) int { return c + 1 })
	case input.ActionCursorHome:
		a.moveCursor(func(int, int) int { return 0 })
	case input.ActionCursorEnd:
		a.moveCursor(func(_, n int) int { return n })

	case input.ActionScrollUp:
		a.scrollBy(-1)
	case input.ActionScrollDown:
		a.scrollBy(1)
	case input.ActionPageUp:
		a.scrollBy(-a.pageSize())
	case input.ActionPageDown:
		a.scrollBy(a.pageSize())

	case input.ActionToggleIgnoreCase:
		a.changeOptions(func(o *pattern.MatchOptions, _ *pattern.Engine) { o.IgnoreCase = !o.IgnoreCase })
	case input.ActionToggleMultiline:
		a.changeOptions(func(o *pattern.MatchOptions, _ *pattern.Engine) { o.Multiline = !o.Multiline })
	case input.ActionToggleDotAll:
		a.changeOptions(func(o *pattern.MatchOptions, _ *pattern.Engine) { o.DotAll = !o.DotAll })
	case input.ActionCycleEngine:
		a.changeOptions(func(_ *pattern.MatchOptions, e *pattern.Engine) { *e = nextEngine(*e) })

	case input.ActionCopyMatches:
		a.copyMatches()
	case input.ActionCycleTheme:
		a.cycleTheme()

	default:
		return false
	}
	return true
}

func (a *App) editPattern(edit func(p string, cursor int) (string, int)) {
	a.mu.Lock()
	before := a.pattern
	a.pattern, a.cursor = edit(a.pattern, a.cursor)
	after := a.pattern
	a.mu.Unlock()

	if after != before {
		a.eventManager.Dispatch(event.TypePatternChanged, event.PatternChangedData{Pattern: after})
	}
}

func (a *App) moveCursor(move func(cursor, runeCount int) int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := utf8.RuneCountInString(a.pattern)
	c := move(a.cursor, n)
	if c < 0 {
		c = 0
	}
	if c > n {
		c = n
	}
	a.cursor = c
}

func (a *App) pageSize() int {
	_, height := a.tuiManager.Size()
	if h := tui.BodyHeight(height); h > 1 {
		return h - 1
	}
	return 1
}

// scrollBy moves the body viewport, keeping the last line reachable.
func (a *App) scrollBy(delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scrollY += delta
	if maxY := len(a.lines) - 1; a.scrollY > maxY {
		a.scrollY = maxY
	}
	if a.scrollY < 0 {
		a.scrollY = 0
	}
}

func (a *App) changeOptions(change func(*pattern.MatchOptions, *pattern.Engine)) {
	a.mu.Lock()
	change(&a.match, &a.engine)
	data := event.OptionsChangedData{Options: a.match, Engine: a.engine}
	a.mu.Unlock()

	a.eventManager.Dispatch(event.TypeOptionsChanged, data)
}

func nextEngine(e pattern.Engine) pattern.Engine {
	engines := pattern.Engines()
	for i, candidate := range engines {
		if candidate == e {
			return engines[(i+1)%len(engines)]
		}
	}
	return pattern.DefaultEngine
}

func (a *App) copyMatches() {
	res, err := a.Result()
	if err != nil {
		a.statusBar.SetTemporaryMessage("Nothing to copy: %v", err)
		return
	}
	n, err := clipboard.CopyMatches(a.clip, res)
	if err != nil {
		logger.Warnf("App: copy failed: %v", err)
		a.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Copied %d matches", n)
}

func (a *App) cycleTheme() {
	names := a.themes.ListThemes()
	if len(names) == 0 {
		return
	}
	current := a.themes.Current().Name
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := a.themes.SetTheme(next); err != nil {
		a.statusBar.SetTemporaryMessage("Theme: %v", err)
		return
	}
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: next})
}
