package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"pipeplot/internal/models"
)

// Region is a rectangle of the surface, in cells
type Region struct {
	X, Y          int
	Width, Height int
}

// CellOp fills or clears one symbol-wide cell of the plot
type CellOp struct {
	X, Y int
	Fill bool
}

// Rasterize maps values (newest first) onto region as bottom-anchored bars.
//
// Each value owns symbolWidth columns. Rows above the bar top are cleared and
// rows from the bar top down to the region bottom are filled. Columns for which
// there is no value are left untouched.
func Rasterize(values []float64, r Range, region Region, symbolWidth int, direction models.Direction) []CellOp {
	if region.Width <= 0 || region.Height <= 0 || len(values) == 0 {
		return nil
	}
	if symbolWidth < 1 {
		symbolWidth = 1
	}

	span := region.Height - 1
	var k float64
	if !r.Degenerate() {
		k = float64(span) / (r.Max - r.Min)
	}

	ops := make([]CellOp, 0, len(values)*region.Height)
	for i, value := range values {
		x := i * symbolWidth
		if direction == models.TowardLowerIndex {
			x = region.Width - symbolWidth - x
		}
		if x >= region.Width || x+symbolWidth <= 0 {
			continue
		}

		// Flat data is drawn as a line through the middle
		var level float64
		if r.Degenerate() {
			level = math.Floor(0.5 * float64(span))
		} else {
			level = math.Floor((value - r.Min) * k)
		}
		// Above max fills the whole column, below min clears it
		level = math.Max(-1, math.Min(level, float64(span)))
		filled := span - int(level)

		for y := 0; y < filled; y++ {
			ops = append(ops, CellOp{X: region.X + x, Y: region.Y + y})
		}
		for y := filled; y <= span; y++ {
			ops = append(ops, CellOp{X: region.X + x, Y: region.Y + y, Fill: true})
		}
	}
	return ops
}

// ApplyOps writes rasterized cells to the surface. Out-of-bounds cells are dropped.
func ApplyOps(s Surface, ops []CellOp, symbol string, symbolWidth int, style tcell.Style) {
	for _, op := range ops {
		if op.Fill {
			DrawText(s, op.X, op.Y, symbol, style)
		} else {
			ClearCells(s, op.X, op.Y, symbolWidth)
		}
	}
}
