// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/rematch/internal/logger"
)

// themeFile is the TOML layout of a user theme:
//
//	name = "Ocean"
//	is_dark = true
//	[styles."Match.A"]
//	bg = "navy"
//	bold = true
type themeFile struct {
	Name   string              `toml:"name"`
	IsDark bool                `toml:"is_dark"`
	Styles map[string]styleDef `toml:"styles"`
}

// styleDef is one style entry. Nil fields inherit from the base style.
type styleDef struct {
	Fg            *string `toml:"fg"`
	Bg            *string `toml:"bg"`
	Bold          *bool   `toml:"bold"`
	Italic        *bool   `toml:"italic"`
	Underline     *bool   `toml:"underline"`
	Reverse       *bool   `toml:"reverse"`
	Dim           *bool   `toml:"dim"`
	StrikeThrough *bool   `toml:"strikethrough"`
}

// apply layers d over base.
func (d styleDef) apply(base tcell.Style) (tcell.Style, error) {
	style := base

	if d.Fg != nil {
		c, err := ParseColor(*d.Fg)
		if err != nil {
			return base, fmt.Errorf("fg: %w", err)
		}
		style = style.Foreground(c)
	}
	if d.Bg != nil {
		c, err := ParseColor(*d.Bg)
		if err != nil {
			return base, fmt.Errorf("bg: %w", err)
		}
		style = style.Background(c)
	}

	attrs := []struct {
		value *bool
		set   func(tcell.Style, bool) tcell.Style
	}{
		{d.Bold, tcell.Style.Bold},
		{d.Italic, tcell.Style.Italic},
		{d.Underline, func(s tcell.Style, on bool) tcell.Style { return s.Underline(on) }},
		{d.Reverse, tcell.Style.Reverse},
		{d.Dim, tcell.Style.Dim},
		{d.StrikeThrough, tcell.Style.StrikeThrough},
	}
	for _, a := range attrs {
		if a.value != nil {
			style = a.set(style, *a.value)
		}
	}
	return style, nil
}

// LoadThemeFromFile reads a theme file. A file without a name is named after
// the file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", filePath, err)
	}

	th, err := ParseTheme(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", filePath, err)
	}
	if th.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	logger.Debugf("Theme: loaded '%s' (%d styles) from %s", th.Name, len(th.Styles), filePath)
	return th, nil
}

// ParseTheme decodes a theme from TOML source. Styles other than Default
// inherit unset properties from the theme's Default style. Styles with bad
// colors are dropped.
func ParseTheme(data string) (*Theme, error) {
	var file themeFile
	md, err := toml.Decode(data, &file)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': ignoring unknown keys %v", file.Name, undecoded)
	}

	th := &Theme{
		Name:   file.Name,
		IsDark: file.IsDark,
		Styles: make(map[string]tcell.Style, len(file.Styles)+1),
	}

	base := tcell.StyleDefault
	if def, ok := file.Styles[StyleDefault]; ok {
		if s, err := def.apply(tcell.StyleDefault); err != nil {
			logger.Warnf("Theme '%s': style %s: %v", th.Name, StyleDefault, err)
		} else {
			base = s
		}
	}
	th.Styles[StyleDefault] = base

	for name, def := range file.Styles {
		if name == StyleDefault {
			continue
		}
		s, err := def.apply(base)
		if err != nil {
			logger.Warnf("Theme '%s': style %s: %v", th.Name, name, err)
			continue
		}
		th.Styles[name] = s
	}
	return th, nil
}

// ParseColor converts "#RRGGBB", "reset", "default" or a W3C color name
// (case-insensitive, e.g. "Pink", "darkgreen") to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	switch {
	case name == "reset":
		return tcell.ColorReset, nil
	case name == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(name, "#"):
		hex := name[1:]
		if len(hex) != 6 {
			return tcell.ColorDefault, fmt.Errorf("color %q: want #RRGGBB", s)
		}
		rgb, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("color %q: %w", s, err)
		}
		return tcell.NewHexColor(int32(rgb)), nil
	}

	if c, ok := tcell.ColorNames[name]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
