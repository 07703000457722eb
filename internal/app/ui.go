package app

import (
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/theme"
	"github.com/bethropolis/rematch/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	th := a.themes.Current()

	a.mu.Lock()
	pat, cursor := a.pattern, a.cursor
	opts, engine := a.match, a.engine
	lines, scrollY := a.lines, a.scrollY
	a.mu.Unlock()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "draw: screen %dx%d, %d lines, scroll %d", width, height, len(lines), scrollY)

	screen.SetStyle(th.GetStyle(theme.StyleDefault))
	a.tuiManager.Clear()
	tui.DrawPatternLine(a.tuiManager, pat, cursor, th)
	tui.DrawOptions(a.tuiManager, opts, engine, th)
	tui.DrawBody(a.tuiManager, lines, scrollY, th)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}
