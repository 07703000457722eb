// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/theme"
)

// Screen layout: pattern line, option toggles, text body, status bar.
const (
	PatternRow      = 0
	OptionsRow      = 1
	BodyTop         = 2
	StatusBarHeight = 1

	PatternPrompt = "pattern> "
	TabWidth      = 4
)

// BodyHeight returns the number of text rows for a screen height.
func BodyHeight(height int) int {
	h := height - BodyTop - StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

func calculateVisualColumn(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// drawString draws s from column x on row y, stopping before maxX. Tabs expand
// to the next multiple of TabWidth counted from originX. Returns the next column.
func drawString(screen tcell.Screen, x, y, originX, maxX int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		if runes[0] == '\t' {
			spaces := TabWidth - ((x - originX) % TabWidth)
			for i := 0; i < spaces && x < maxX; i++ {
				screen.SetContent(x, y, ' ', nil, style)
				x++
			}
			continue
		}

		clusterWidth := gr.Width()
		if clusterWidth == 0 {
			// Control characters other than tab are shown as a placeholder.
			runes, clusterWidth = []rune{'·'}, 1
		}
		if x+clusterWidth > maxX {
			return maxX
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		for cw := 1; cw < clusterWidth; cw++ {
			screen.SetContent(x+cw, y, ' ', nil, style)
		}
		x += clusterWidth
	}
	return x
}

func fillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// DrawPatternLine draws the prompt and the pattern being edited and places the
// terminal cursor at cursor (a rune index into pat).
func DrawPatternLine(t *TUI, pat string, cursor int, th *theme.Theme) {
	width, height := t.Size()
	if height <= PatternRow || width <= 0 {
		return
	}
	defaultStyle := th.GetStyle(theme.StyleDefault)
	fillRow(t.screen, PatternRow, width, defaultStyle)

	x := drawString(t.screen, 0, PatternRow, 0, width, PatternPrompt, defaultStyle)
	start := x
	drawString(t.screen, x, PatternRow, start, width, pat, th.GetStyle(theme.StylePattern))

	cursorX := start + calculateVisualColumn(pat, cursor)
	if cursorX < width {
		t.screen.ShowCursor(cursorX, PatternRow)
	} else {
		t.screen.HideCursor()
	}
}

// OptionsText returns the toggle labels and whether each is on, in display order.
func OptionsText(opts pattern.MatchOptions, engine pattern.Engine) ([]string, []bool) {
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	labels := []string{
		check(opts.IgnoreCase) + " ignore case F2",
		check(opts.Multiline) + " multiline F3",
		check(opts.DotAll) + " dot all F4",
		"engine: " + engine.String() + " F5",
	}
	return labels, []bool{opts.IgnoreCase, opts.Multiline, opts.DotAll, false}
}

// DrawOptions draws the option checkboxes and the engine name.
func DrawOptions(t *TUI, opts pattern.MatchOptions, engine pattern.Engine, th *theme.Theme) {
	width, height := t.Size()
	if height <= OptionsRow || width <= 0 {
		return
	}
	offStyle := th.GetStyle(theme.StyleToggleOff)
	onStyle := th.GetStyle(theme.StyleToggleOn)
	fillRow(t.screen, OptionsRow, width, offStyle)

	labels, on := OptionsText(opts, engine)
	x := 0
	for i, label := range labels {
		style := offStyle
		if on[i] {
			style = onStyle
		}
		if i > 0 {
			x = drawString(t.screen, x, OptionsRow, 0, width, "  ", offStyle)
		}
		x = drawString(t.screen, x, OptionsRow, 0, width, label, style)
	}
}

// gutterWidth returns the width of the line number column, or 0 when the
// screen is too narrow for it.
func gutterWidth(lineCount, width int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	w := maxDigits + 1
	if w >= width {
		return 0
	}
	return w
}

// DrawBody draws the highlighted lines starting at line scrollY, with a
// line number gutter. Each segment uses the theme style for its color.
func DrawBody(t *TUI, lines [][]highlight.Segment, scrollY int, th *theme.Theme) {
	width, height := t.Size()
	viewHeight := BodyHeight(height)
	if viewHeight <= 0 || width <= 0 {
		return
	}

	defaultStyle := th.GetStyle(theme.StyleDefault)
	lineNumberStyle := th.GetStyle("LineNumber")
	gutter := gutterWidth(len(lines), width)

	for row := 0; row < viewHeight; row++ {
		y := BodyTop + row
		lineIdx := scrollY + row
		fillRow(t.screen, y, width, defaultStyle)

		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d", gutter-1, lineIdx+1)
			drawString(t.screen, 0, y, 0, gutter-1, num, lineNumberStyle)
		}

		x := gutter
		for _, seg := range lines[lineIdx] {
			if x >= width {
				break
			}
			x = drawString(t.screen, x, y, gutter, width, seg.Text, th.SegmentStyle(seg))
		}
	}
}
