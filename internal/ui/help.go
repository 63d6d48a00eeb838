package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Banner messages shown on the bottom row
const (
	BannerInputEnded = " end of input - press any key to exit "
)

// DrawBanner draws text centered on the bottom row in reverse video
func DrawBanner(s Surface, text string) {
	width, height := s.Size()
	if height <= 0 {
		return
	}
	x := (width - TextWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	DrawText(s, x, height-1, text, tcell.StyleDefault.Reverse(true))
	s.Show()
}
