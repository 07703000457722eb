// internal/app/app.go
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/rematch/internal/clipboard"
	"github.com/bethropolis/rematch/internal/event"
	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/input"
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/render"
	"github.com/bethropolis/rematch/internal/source"
	"github.com/bethropolis/rematch/internal/statusbar"
	"github.com/bethropolis/rematch/internal/theme"
	"github.com/bethropolis/rematch/internal/tui"
)

// Options configures an interactive session.
type Options struct {
	Text       string
	SourcePath string // Shown in the status bar; watched when Watch is set
	Watch      bool

	Pattern          string
	Match            pattern.MatchOptions
	Engine           pattern.Engine
	MaxMatches       int
	BacktrackTimeout time.Duration

	Themes         *theme.Manager      // nil loads built-in themes only
	Clipboard      clipboard.Clipboard // nil uses the system clipboard
	MessageTimeout time.Duration
	Debounce       time.Duration // Delay between an edit and re-highlighting
}

// App is the interactive pattern editor: a pattern line, option toggles, the
// highlighted text and a status bar.
type App struct {
	tuiManager     *tui.TUI
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themes         *theme.Manager
	highlighter    *highlight.Manager
	watcher        *source.Watcher
	clip           clipboard.Clipboard
	opts           Options

	mu        sync.Mutex // Protects the session state below
	pattern   string
	cursor    int // Rune index into pattern
	match     pattern.MatchOptions
	engine    pattern.Engine
	text      string
	lines     [][]highlight.Segment
	result    highlight.Result
	resultErr error
	scrollY   int

	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// New creates an App on the terminal.
func New(opts Options) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(screen, opts)
}

// NewWithScreen creates an App on the given screen.
func NewWithScreen(screen tcell.Screen, opts Options) (*App, error) {
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewManager("")
	}
	engine := opts.Engine
	if engine == "" {
		engine = pattern.DefaultEngine
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	timeout := opts.MessageTimeout
	if timeout <= 0 {
		timeout = statusbar.DefaultConfig().MessageTimeout
	}

	tuiManager, err := tui.NewWithScreen(screen, themes.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		tuiManager:     tuiManager,
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(themes.Current(), timeout)),
		eventManager:   event.NewManager(),
		inputProcessor: input.NewInputProcessor(),
		themes:         themes,
		clip:           clip,
		opts:           opts,
		pattern:        opts.Pattern,
		cursor:         len([]rune(opts.Pattern)),
		match:          opts.Match,
		engine:         engine,
		text:           opts.Text,
		lines:          plainLines(opts.Text),
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}
	a.statusBar.SetSource(opts.SourcePath)
	a.highlighter = highlight.NewManager(opts.Debounce, func(o highlight.Outcome) {
		a.eventManager.Dispatch(event.TypeHighlighted, event.HighlightedData{Outcome: o})
	})

	a.eventManager.Subscribe(event.TypePatternChanged, a.handlePatternChanged)
	a.eventManager.Subscribe(event.TypeOptionsChanged, a.handleOptionsChanged)
	a.eventManager.Subscribe(event.TypeTextLoaded, a.handleTextLoaded)
	a.eventManager.Subscribe(event.TypeHighlighted, a.handleHighlighted)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)

	return a, nil
}

// plainLines is the body shown before the first result and for invalid patterns.
func plainLines(text string) [][]highlight.Segment {
	if text == "" {
		return render.Lines(nil)
	}
	return render.Lines([]highlight.Segment{{Kind: highlight.Unmatched, Text: text, Color: highlight.NoColor}})
}

// Run starts the event loop and draws until the user quits.
func (a *App) Run() error {
	defer a.shutdown()

	go a.eventLoop()

	if a.opts.Watch && a.opts.SourcePath != "" {
		w, err := source.Watch(a.opts.SourcePath, 0, func(text string, err error) {
			a.eventManager.Dispatch(event.TypeTextLoaded, event.TextLoadedData{Source: a.opts.SourcePath, Text: text, Err: err})
		})
		if err != nil {
			logger.Warnf("App: cannot watch %s: %v", a.opts.SourcePath, err)
			a.statusBar.SetTemporaryMessage("Not watching %s: %v", a.opts.SourcePath, err)
		} else {
			a.watcher = w
		}
	}

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("F2 ignore case | F3 multiline | F4 dot all | F5 engine | Ctrl+Y copy | Esc quit")
	a.requestHighlight()
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Debugf("App: exiting interactive mode")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// Quit stops Run. It is safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

func (a *App) shutdown() {
	a.highlighter.Close()
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			logger.Warnf("App: stopping watcher: %v", err)
		}
	}
	a.tuiManager.Close()
}

// eventLoop handles terminal events until the screen is finalized.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			a.scrollBy(0)
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.handleKey(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// requestHighlight submits the current pattern, options and text.
func (a *App) requestHighlight() {
	a.mu.Lock()
	req := highlight.Request{
		Pattern:          a.pattern,
		Text:             a.text,
		Options:          a.match,
		Engine:           a.engine,
		MaxMatches:       a.opts.MaxMatches,
		BacktrackTimeout: a.opts.BacktrackTimeout,
	}
	a.mu.Unlock()
	a.highlighter.Submit(req)
}

// Pattern returns the pattern being edited and the cursor's rune index.
func (a *App) Pattern() (string, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pattern, a.cursor
}

// MatchOptions returns the current options and engine.
func (a *App) MatchOptions() (pattern.MatchOptions, pattern.Engine) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.match, a.engine
}

// Result returns the latest highlight outcome.
func (a *App) Result() (highlight.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result, a.resultErr
}

// Text returns the text being highlighted.
func (a *App) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

// StatusText returns the status line and whether it shows an error.
func (a *App) StatusText() (string, bool) {
	return a.statusBar.Text()
}
