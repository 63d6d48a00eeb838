package ui

import "pipeplot/internal/models"

// Range is the value interval mapped onto the plot height
type Range struct {
	Min, Max float64
}

// Degenerate reports whether the range has no extent
func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// DataRange picks the range the data itself spans under the given mode.
// window is the on-screen slice, lifetimeMin/lifetimeMax the history extrema.
func DataRange(mode models.ScaleMode, window []float64, lifetimeMin, lifetimeMax float64) Range {
	if mode == models.ScaleWindowed {
		if lo, hi, ok := models.Extrema(window); ok {
			return Range{Min: lo, Max: hi}
		}
	}
	return Range{Min: lifetimeMin, Max: lifetimeMax}
}

// ResolveRange applies the fixed bounds, which win over the data regardless of mode
func ResolveRange(data Range, fixedMin, fixedMax *float64) Range {
	r := data
	if fixedMin != nil {
		r.Min = *fixedMin
	}
	if fixedMax != nil {
		r.Max = *fixedMax
	}
	return r
}
