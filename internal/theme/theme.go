// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names every theme is expected to define.
const (
	StyleDefault        = "Default"
	StyleMatchA         = "Match.A"
	StyleMatchB         = "Match.B"
	StyleNoMatch        = "NoMatch"
	StylePattern        = "Pattern"
	StyleError          = "Error"
	StyleStatusBar      = "StatusBar"
	StyleStatusBarError = "StatusBarError"
	StyleToggleOn       = "Toggle.On"
	StyleToggleOff      = "Toggle.Off"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks a style up by exact name, then by the part before the first
// dot, then falls back to Default and finally to tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// MatchStyle returns the style for a matched segment's color index.
// Anything other than highlight.ColorB gets Match.A.
func (t *Theme) MatchStyle(color int) tcell.Style {
	if color == highlight.ColorB {
		return t.GetStyle(StyleMatchB)
	}
	return t.GetStyle(StyleMatchA)
}

// SegmentStyle returns the style a segment is drawn with.
func (t *Theme) SegmentStyle(seg highlight.Segment) tcell.Style {
	if c, ok := seg.ColorIndex(); ok {
		return t.MatchStyle(c)
	}
	return t.GetStyle(StyleNoMatch)
}

// RegexMagic is the built-in theme: pink and yellow match backgrounds, gray
// unmatched text, a dark green pattern header and red errors.
var RegexMagic Theme

// Monochrome draws matches with reverse video and underline only.
var Monochrome Theme

func init() {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	bar := tcell.StyleDefault.Background(tcell.NewHexColor(0x2a2f38)).Foreground(tcell.NewHexColor(0xc5cdd9))

	RegexMagic = Theme{
		Name:   "Regex Magic",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:        base,
			StyleMatchA:         base.Background(tcell.ColorPink).Foreground(tcell.ColorBlack).Bold(true),
			StyleMatchB:         base.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true),
			StyleNoMatch:        base.Foreground(tcell.ColorGray),
			StylePattern:        base.Foreground(tcell.ColorDarkGreen).Bold(true).Italic(true),
			StyleError:          base.Foreground(tcell.ColorRed).Bold(true).Italic(true),
			StyleStatusBar:      bar,
			StyleStatusBarError: bar.Foreground(tcell.ColorRed).Bold(true),
			StyleToggleOn:       bar.Foreground(tcell.ColorGreen).Bold(true),
			StyleToggleOff:      bar,
		},
	}

	Monochrome = Theme{
		Name:   "Monochrome",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:        tcell.StyleDefault,
			StyleMatchA:         tcell.StyleDefault.Reverse(true),
			StyleMatchB:         tcell.StyleDefault.Reverse(true).Underline(true),
			StyleNoMatch:        tcell.StyleDefault,
			StylePattern:        tcell.StyleDefault.Bold(true),
			StyleError:          tcell.StyleDefault.Bold(true).Underline(true),
			StyleStatusBar:      tcell.StyleDefault.Reverse(true),
			StyleStatusBarError: tcell.StyleDefault.Reverse(true).Bold(true),
			"Toggle":            tcell.StyleDefault.Reverse(true),
		},
	}
}

// Builtins returns the themes compiled into the binary.
func Builtins() []*Theme {
	return []*Theme{&RegexMagic, &Monochrome}
}
