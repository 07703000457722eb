package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
)

type segmentDoc struct {
	Kind  string `yaml:"kind" json:"kind"`
	Text  string `yaml:"text" json:"text"`
	Color *int   `yaml:"color,omitempty" json:"color,omitempty"`
}

type resultDoc struct {
	Pattern   string               `yaml:"pattern" json:"pattern"`
	Options   pattern.MatchOptions `yaml:"options" json:"options"`
	Engine    string               `yaml:"engine" json:"engine"`
	Matches   int                  `yaml:"matches" json:"matches"`
	Truncated bool                 `yaml:"truncated" json:"truncated"`
	Segments  []segmentDoc         `yaml:"segments" json:"segments"`
}

type errorDoc struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Engine  string `yaml:"engine,omitempty" json:"engine,omitempty"`
	Error   string `yaml:"error" json:"error"`
}

func newResultDoc(res highlight.Result) resultDoc {
	doc := resultDoc{
		Pattern:   res.Pattern,
		Options:   res.Options,
		Engine:    res.Engine.String(),
		Matches:   res.Matches,
		Truncated: res.Truncated,
		Segments:  make([]segmentDoc, 0, len(res.Segments)),
	}
	for _, seg := range res.Segments {
		sd := segmentDoc{Kind: seg.Kind.String(), Text: seg.Text}
		if c, ok := seg.ColorIndex(); ok {
			sd.Color = &c
		}
		doc.Segments = append(doc.Segments, sd)
	}
	return doc
}

func newErrorDoc(perr *pattern.PatternError) errorDoc {
	return errorDoc{Pattern: perr.Pattern, Engine: perr.Engine.String(), Error: perr.Error()}
}

// YAMLRenderer emits the result as a YAML document.
type YAMLRenderer struct{}

// Render implements Renderer.
func (YAMLRenderer) Render(w io.Writer, res highlight.Result) error {
	return encodeYAML(w, newResultDoc(res))
}

// RenderError implements Renderer.
func (YAMLRenderer) RenderError(w io.Writer, perr *pattern.PatternError) error {
	return encodeYAML(w, newErrorDoc(perr))
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// JSONRenderer emits the result as indented JSON.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, res highlight.Result) error {
	return encodeJSON(w, newResultDoc(res))
}

// RenderError implements Renderer.
func (JSONRenderer) RenderError(w io.Writer, perr *pattern.PatternError) error {
	return encodeJSON(w, newErrorDoc(perr))
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
