// Package canvas has the small drawing helpers shared by the terminal view
// modules.
package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vk/duelview/internal/palette"
)

// Layout of the piste on screen.
const (
	HeaderRow = 0
	PisteRow  = 4
	OffsetX   = 2
	CellWidth = 3
)

// Column returns the screen column of a piste position.
func Column(position int) int {
	return OffsetX + position*CellWidth
}

// Style returns the default style with c as foreground.
func Style(c palette.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c.TCell())
}

// Text draws s starting at (x, y), clipped to the screen. It returns the
// column after the last drawn rune.
func Text(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x + len([]rune(s))
	}
	for _, r := range s {
		if x >= 0 && x < w {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// HLine draws a horizontal run of r from x0 to x1 inclusive.
func HLine(screen tcell.Screen, x0, x1, y int, style tcell.Style, r rune) {
	for x := x0; x <= x1; x++ {
		screen.SetContent(x, y, r, nil, style)
	}
}
