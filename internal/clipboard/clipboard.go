// Package clipboard copies highlight output to the system clipboard.
package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/logger"
)

// ErrUnavailable is returned when no system clipboard utility is installed.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// System implements Clipboard using the system clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	logger.DebugTagf("clipboard", "Copied %d bytes to system clipboard", len(text))
	return nil
}

// Memory keeps the last copied text, for tests and headless use.
type Memory struct {
	Text string
}

// Copy stores text.
func (m *Memory) Copy(text string) error {
	m.Text = text
	return nil
}

// Available reports whether a system clipboard can be written.
func Available() bool { return !clipboard.Unsupported }

// CopyMatches writes the matched texts of res, one per line, to c.
// It returns the number of matches copied.
func CopyMatches(c Clipboard, res highlight.Result) (int, error) {
	matches := res.MatchedTexts()
	if err := c.Copy(strings.Join(matches, "\n")); err != nil {
		return 0, err
	}
	return len(matches), nil
}
