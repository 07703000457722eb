// Package render turns highlight results into terminal, HTML, plain-text and
// structured output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/theme"
)

// Output formats accepted by ForFormat.
const (
	FormatANSI  = "ansi"
	FormatHTML  = "html"
	FormatPlain = "plain"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatANSI, FormatHTML, FormatPlain, FormatYAML, FormatJSON}
}

// Renderer writes a highlight result, or an invalid-pattern error, to w.
type Renderer interface {
	Render(w io.Writer, res highlight.Result) error
	RenderError(w io.Writer, perr *pattern.PatternError) error
}

// Palette holds the two alternating match colors used by the HTML renderer.
type Palette [highlight.NumColors]string

// DefaultPalette is the pink/yellow pair of the classic notebook output.
var DefaultPalette = Palette{"Pink", "Yellow"}

// Color returns the palette entry for a match color index.
func (p Palette) Color(i int) string {
	if i == highlight.ColorB {
		return p[highlight.ColorB]
	}
	return p[highlight.ColorA]
}

// ForFormat returns the renderer for a format name (case-insensitive).
// th may be nil for formats that do not use a theme.
func ForFormat(name string, th *theme.Theme, palette Palette) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatANSI, "":
		if th == nil {
			th = &theme.RegexMagic
		}
		return NewANSIRenderer(th), nil
	case FormatHTML:
		return HTMLRenderer{Palette: palette}, nil
	case FormatPlain, "text":
		return PlainRenderer{}, nil
	case FormatYAML, "yml":
		return YAMLRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Formats(), ", "))
}

// header is the pattern line shown above the highlighted text.
func header(res highlight.Result) string {
	if opts := res.Options.String(); opts != "" {
		return res.Pattern + "  " + opts
	}
	return res.Pattern
}
