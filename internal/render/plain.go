package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
)

// PlainRenderer marks matches with brackets, for pipes and logs.
type PlainRenderer struct{}

// Plain renders segments with every match wrapped in [ ].
func Plain(segments []highlight.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.IsMatch() {
			b.WriteString("[")
			b.WriteString(seg.Text)
			b.WriteString("]")
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Render implements Renderer.
func (PlainRenderer) Render(w io.Writer, res highlight.Result) error {
	out := Plain(res.Segments)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// RenderError implements Renderer.
func (PlainRenderer) RenderError(w io.Writer, perr *pattern.PatternError) error {
	_, err := fmt.Fprintf(w, "error: %s\n", perr.Error())
	return err
}
