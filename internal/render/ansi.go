package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/theme"
)

// ANSIRenderer writes terminal escape sequences using lipgloss styles derived
// from a theme. Colors are dropped when the output is not a terminal.
type ANSIRenderer struct {
	pattern  lipgloss.Style
	errStyle lipgloss.Style
	noMatch  lipgloss.Style
	matches  [highlight.NumColors]lipgloss.Style
}

// NewANSIRenderer builds the lipgloss styles for th.
func NewANSIRenderer(th *theme.Theme) *ANSIRenderer {
	return &ANSIRenderer{
		pattern:  StyleFromTcell(th.GetStyle(theme.StylePattern)),
		errStyle: StyleFromTcell(th.GetStyle(theme.StyleError)),
		noMatch:  StyleFromTcell(th.GetStyle(theme.StyleNoMatch)),
		matches: [highlight.NumColors]lipgloss.Style{
			StyleFromTcell(th.MatchStyle(highlight.ColorA)),
			StyleFromTcell(th.MatchStyle(highlight.ColorB)),
		},
	}
}

// StyleFromTcell converts a tcell style to the equivalent lipgloss style.
// Tabs are left untouched so the rendered text keeps its bytes.
func StyleFromTcell(s tcell.Style) lipgloss.Style {
	fg, bg, attrs := s.Decompose()
	style := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if c, ok := lipglossColor(fg); ok {
		style = style.Foreground(c)
	}
	if c, ok := lipglossColor(bg); ok {
		style = style.Background(c)
	}
	return style.
		Bold(attrs&tcell.AttrBold != 0).
		Italic(attrs&tcell.AttrItalic != 0).
		Underline(attrs&tcell.AttrUnderline != 0).
		Reverse(attrs&tcell.AttrReverse != 0)
}

func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	hex := c.Hex()
	if hex < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", hex)), true
}

func (r *ANSIRenderer) segment(seg highlight.Segment) string {
	if c, ok := seg.ColorIndex(); ok && c >= 0 && c < highlight.NumColors {
		return r.matches[c].Render(seg.Text)
	}
	return r.noMatch.Render(seg.Text)
}

// Body renders the segments without the pattern header.
func (r *ANSIRenderer) Body(segments []highlight.Segment) string {
	lines := Lines(segments)
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, seg := range line {
			b.WriteString(r.segment(seg))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

// Render implements Renderer.
func (r *ANSIRenderer) Render(w io.Writer, res highlight.Result) error {
	body := r.Body(res.Segments)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := io.WriteString(w, r.pattern.Render(header(res))+"\n"+body)
	return err
}

// RenderError implements Renderer.
func (r *ANSIRenderer) RenderError(w io.Writer, perr *pattern.PatternError) error {
	_, err := io.WriteString(w, r.errStyle.Render(perr.Error())+"\n")
	return err
}
