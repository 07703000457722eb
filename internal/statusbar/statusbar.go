// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/theme"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleError     tcell.Style // Invalid pattern and load errors
	StyleMessage   tcell.Style // Temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	base := th.GetStyle(theme.StyleStatusBar)
	return Config{
		StyleDefault:   base,
		StyleError:     th.GetStyle(theme.StyleStatusBarError),
		StyleMessage:   base.Bold(true),
		MessageTimeout: timeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	source    string
	engine    pattern.Engine
	matches   int
	truncated bool
	errText   string

	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetSource updates the name of the text source shown on the left.
func (sb *StatusBar) SetSource(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.source = name
}

// SetResult shows a match count. It clears any error.
func (sb *StatusBar) SetResult(engine pattern.Engine, matches int, truncated bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.engine = engine
	sb.matches = matches
	sb.truncated = truncated
	sb.errText = ""
}

// SetError shows err in the error style until the next SetResult.
func (sb *StatusBar) SetError(err error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if err == nil {
		sb.errText = ""
		return
	}
	sb.errText = err.Error()
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line Draw would show and whether it is an error.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	text, _, isErr := sb.current()
	return text, isErr
}

// current picks the text and style to draw. Caller holds the lock.
func (sb *StatusBar) current() (string, tcell.Style, bool) {
	isTempMsgActive := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	switch {
	case isTempMsgActive:
		return sb.tempMessage, sb.config.StyleMessage, false
	case sb.errText != "":
		return sb.errText, sb.config.StyleError, true
	default:
		return sb.defaultDisplayText(), sb.config.StyleDefault, false
	}
}

func (sb *StatusBar) defaultDisplayText() string {
	source := sb.source
	if source == "" {
		source = "[text]"
	}

	noun := "matches"
	if sb.matches == 1 {
		noun = "match"
	}
	text := fmt.Sprintf("%s -- %d %s", source, sb.matches, noun)
	if sb.truncated {
		text += " (limit reached, more not shown)"
	}
	if sb.engine != "" {
		text += " -- " + sb.engine.String()
	}
	return text
}

// Draw renders the status bar on the last screen line using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	text, style, _ := sb.current()
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
