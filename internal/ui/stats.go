package ui

import (
	"fmt"
	"math"
	"strings"
)

const (
	statsFloatFormat = "%6.2f "
	statsIntFormat   = "%6d    "
)

// Stats is the overlay content for one frame
type Stats struct {
	Max, Current, Min float64
	Average           float64

	// Natural selects integer formatting for Max, Current and Min
	Natural bool
}

// TextWrite places a line of text on the surface
type TextWrite struct {
	X, Y int
	Text string
}

// FormatStats builds the Max, Cur, Min and Avg lines in that order
func FormatStats(st Stats) []string {
	format := func(v float64) string {
		if st.Natural {
			return formatInt(v)
		}
		return fmt.Sprintf(statsFloatFormat, v)
	}
	return []string{
		" Max: " + format(st.Max),
		" Cur: " + format(st.Current),
		" Min: " + format(st.Min),
		// integer samples can still average to a fraction
		" Avg: " + fmt.Sprintf(statsFloatFormat, st.Average),
	}
}

func formatInt(v float64) string {
	if math.Abs(v) < 1<<62 {
		return fmt.Sprintf(statsIntFormat, int64(v))
	}
	return fmt.Sprintf("%6.0f    ", v)
}

// LayoutStats centers the stats block on a width x height surface
func LayoutStats(st Stats, width, height int) []TextWrite {
	lines := FormatStats(st)

	longest := 0
	for _, line := range lines {
		if w := TextWidth(line); w > longest {
			longest = w
		}
	}
	offsetX := (width - longest) / 2
	offsetY := (height - len(lines)) / 2

	writes := make([]TextWrite, 0, len(lines))
	for i, line := range lines {
		writes = append(writes, TextWrite{X: offsetX, Y: offsetY + i, Text: line})
	}
	return writes
}

// LayoutTitle pads title so it is centered across width on the top row.
// Titles wider than the surface are returned unpadded and get clipped.
func LayoutTitle(title string, width int) TextWrite {
	pad := width - TextWidth(title)
	if pad <= 0 {
		return TextWrite{Text: title}
	}
	left := pad / 2
	return TextWrite{Text: strings.Repeat(" ", left) + title + strings.Repeat(" ", pad-left)}
}
