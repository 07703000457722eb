package app

import (
	"github.com/bethropolis/rematch/internal/event"
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/render"
	"github.com/bethropolis/rematch/internal/statusbar"
)

func (a *App) handlePatternChanged(e event.Event) bool {
	a.requestHighlight()
	return false
}

func (a *App) handleOptionsChanged(e event.Event) bool {
	a.requestHighlight()
	return false
}

// handleTextLoaded replaces the text body after a reload.
func (a *App) handleTextLoaded(e event.Event) bool {
	data, ok := e.Data.(event.TextLoadedData)
	if !ok {
		logger.Warnf("App: TextLoaded event with unexpected data type: %T", e.Data)
		return false
	}
	if data.Err != nil {
		a.statusBar.SetTemporaryMessage("Reload failed: %v", data.Err)
		a.requestRedraw()
		return false
	}

	a.mu.Lock()
	a.text = data.Text
	a.mu.Unlock()

	a.statusBar.SetTemporaryMessage("Reloaded %s", data.Source)
	a.requestHighlight()
	return false
}

// handleHighlighted stores a finished outcome and updates the status bar.
func (a *App) handleHighlighted(e event.Event) bool {
	data, ok := e.Data.(event.HighlightedData)
	if !ok {
		logger.Warnf("App: Highlighted event with unexpected data type: %T", e.Data)
		return false
	}
	out := data.Outcome

	a.mu.Lock()
	if out.Err != nil {
		a.result = out.Result
		a.resultErr = out.Err
		a.lines = plainLines(out.Request.Text)
	} else {
		a.result = out.Result
		a.resultErr = nil
		a.lines = render.Lines(out.Result.Segments)
	}
	if maxY := len(a.lines) - 1; a.scrollY > maxY {
		a.scrollY = maxY
	}
	a.mu.Unlock()

	if out.Err != nil {
		a.statusBar.SetError(out.Err)
	} else {
		a.statusBar.SetResult(out.Result.Engine, out.Result.Matches, out.Result.Truncated)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	th := a.themes.Current()
	timeout := a.opts.MessageTimeout
	if timeout <= 0 {
		timeout = statusbar.DefaultConfig().MessageTimeout
	}
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(th, timeout))
	a.statusBar.SetTemporaryMessage("Theme: %s", th.Name)
	a.requestRedraw()
	return false
}
