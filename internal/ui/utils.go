package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Surface is the character grid the plot is drawn onto; tcell.Screen satisfies it
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Show()
}

func inBounds(s Surface, x, y, w int) bool {
	width, height := s.Size()
	return x >= 0 && y >= 0 && y < height && x+w <= width
}

// DrawText draws text at the specified position, one grapheme cluster per cell.
// Clusters that do not fit on the surface are skipped. Returns the column after the text.
func DrawText(s Surface, x, y int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := runewidth.StringWidth(gr.Str())
		if w == 0 {
			continue
		}
		if inBounds(s, x, y, w) {
			s.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

// ClearCells blanks count cells starting at (x, y)
func ClearCells(s Surface, x, y, count int) {
	for i := 0; i < count; i++ {
		if inBounds(s, x+i, y, 1) {
			s.SetContent(x+i, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// TextWidth returns the number of terminal columns text occupies
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// ProbeSymbolWidth draws symbol at the origin and reads back how many
// columns the surface gave it. The probed cells are blanked afterwards.
func ProbeSymbolWidth(s Surface, symbol string) int {
	x := 0
	gr := uniseg.NewGraphemes(symbol)
	for gr.Next() {
		runes := gr.Runes()
		s.SetContent(x, 0, runes[0], runes[1:], tcell.StyleDefault)

		_, _, _, w := s.GetContent(x, 0)
		if w < 1 {
			// Off-surface probes read back nothing, fall back to the width table
			w = runewidth.StringWidth(gr.Str())
		}
		if w < 1 {
			w = 1
		}
		x += w
	}
	ClearCells(s, 0, 0, x)

	if x < 1 {
		return 1
	}
	return x
}
