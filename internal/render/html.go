package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
)

const (
	htmlPatternTmpl = `<span style="color:DarkGreen; font-weight:bold; font-style:italic;white-space: pre;">%s</span><br/>`
	htmlErrorTmpl   = `<span style="color:Red; font-weight:bold; font-style:italic;white-space: pre;">%s</span><br/>`
	htmlMatchTmpl   = `<span style="background:%s; font-weight:bold;white-space: pre;">%s</span>`
	htmlNoMatchTmpl = `<span style="color:gray;white-space: pre;">%s</span>`
	htmlLineBreak   = "<br/>"
)

// HTMLRenderer emits inline-styled spans, one line of text per <br/>.
type HTMLRenderer struct {
	Palette Palette
}

func (r HTMLRenderer) palette() Palette {
	if r.Palette[highlight.ColorA] == "" || r.Palette[highlight.ColorB] == "" {
		return DefaultPalette
	}
	return r.Palette
}

// Render implements Renderer.
func (r HTMLRenderer) Render(w io.Writer, res highlight.Result) error {
	palette := r.palette()

	var b strings.Builder
	fmt.Fprintf(&b, htmlPatternTmpl, html.EscapeString(res.Pattern))
	for i, line := range Lines(res.Segments) {
		if i > 0 {
			b.WriteString(htmlLineBreak)
		}
		for _, seg := range line {
			text := html.EscapeString(seg.Text)
			if c, ok := seg.ColorIndex(); ok {
				fmt.Fprintf(&b, htmlMatchTmpl, html.EscapeString(palette.Color(c)), text)
			} else {
				fmt.Fprintf(&b, htmlNoMatchTmpl, text)
			}
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderError implements Renderer.
func (r HTMLRenderer) RenderError(w io.Writer, perr *pattern.PatternError) error {
	_, err := fmt.Fprintf(w, htmlErrorTmpl+"\n", html.EscapeString(perr.Error()))
	return err
}
