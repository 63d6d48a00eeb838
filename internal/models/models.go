package models

import "fmt"

// DefaultHistorySize is the number of samples kept when no capacity is configured
const DefaultHistorySize = 1000

// ScaleMode selects how the plotted value range is derived
type ScaleMode int

const (
	ScaleFullHistory ScaleMode = iota // lifetime extrema of the retained history
	ScaleWindowed                     // extrema of the samples currently on screen
)

// String returns the flag spelling of the scale mode
func (m ScaleMode) String() string {
	switch m {
	case ScaleFullHistory:
		return "full-history"
	case ScaleWindowed:
		return "windowed"
	default:
		return "unknown"
	}
}

// ParseScaleMode accepts both the current flag values and the short aliases
func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "full-history", "all", "":
		return ScaleFullHistory, nil
	case "windowed", "window":
		return ScaleWindowed, nil
	}
	return ScaleFullHistory, fmt.Errorf("unknown scale mode %q", s)
}

// Direction controls which edge of the plot the newest sample is drawn at
type Direction int

const (
	// TowardHigherIndex puts the newest sample at column 0, older samples scroll right
	TowardHigherIndex Direction = iota
	// TowardLowerIndex puts the newest sample at the right edge, older samples scroll left
	TowardLowerIndex
)

// String returns the flag spelling of the direction
func (d Direction) String() string {
	switch d {
	case TowardHigherIndex:
		return "toward-higher-index"
	case TowardLowerIndex:
		return "toward-lower-index"
	default:
		return "unknown"
	}
}

// ParseDirection accepts both the current flag values and the left/right aliases
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "toward-higher-index", "right", "":
		return TowardHigherIndex, nil
	case "toward-lower-index", "left":
		return TowardLowerIndex, nil
	}
	return TowardHigherIndex, fmt.Errorf("unknown direction %q", s)
}

// PlotConfig is set once at startup and shared read-only by the plot components
type PlotConfig struct {
	Title string

	// Palette index of the fill symbol
	Color int

	Symbol      string
	SymbolWidth int // terminal columns taken by Symbol, probed on the surface

	Scale     ScaleMode
	Direction Direction

	// Fixed bounds, nil when the bound follows the data
	FixedMin *float64
	FixedMax *float64

	HistorySize int
}

// HasTitle reports whether a title row is reserved above the plot
func (c PlotConfig) HasTitle() bool {
	return c.Title != ""
}
