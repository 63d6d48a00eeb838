package models

import "math"

// History stores a fixed number of samples, newest first when read.
// When capacity is reached the oldest sample is overwritten.
//
// Lifetime extrema are updated as samples arrive and never recomputed, so
// they may describe samples that have already been evicted.
type History struct {
	data     []float64
	capacity int
	head     int // next write position
	size     int // current number of samples

	min, max   float64
	hasExtrema bool

	natural bool
}

// NewHistory creates a History holding up to capacity samples.
// A non-positive capacity falls back to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		data:     make([]float64, capacity),
		capacity: capacity,
		natural:  true,
	}
}

// Append records a sample, evicting the oldest one when full
func (h *History) Append(value float64) {
	// Once a fractional sample has been seen the flag stays false
	if h.natural {
		h.natural = math.Mod(value, 1) == 0
	}

	if !h.hasExtrema {
		h.min, h.max = value, value
		h.hasExtrema = true
	} else {
		if value < h.min {
			h.min = value
		}
		if value > h.max {
			h.max = value
		}
	}

	h.data[h.head] = value
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// Window returns up to n samples, newest first.
// Fewer are returned when the history is shorter than n.
func (h *History) Window(n int) []float64 {
	if n > h.size {
		n = h.size
	}
	if n <= 0 {
		return nil
	}
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		// head points to the next write position, newest is at head-1
		idx := (h.head - 1 - i + h.capacity) % h.capacity
		result[i] = h.data[idx]
	}
	return result
}

// Latest returns the most recent sample and true, or 0 and false if empty
func (h *History) Latest() (float64, bool) {
	if h.size == 0 {
		return 0, false
	}
	return h.data[(h.head-1+h.capacity)%h.capacity], true
}

// Extrema returns the lifetime minimum and maximum.
// ok is false until the first sample arrives.
func (h *History) Extrema() (min, max float64, ok bool) {
	return h.min, h.max, h.hasExtrema
}

// Natural reports whether every sample seen so far was integral
func (h *History) Natural() bool {
	return h.natural
}

// Len returns the number of samples currently retained
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum number of retained samples
func (h *History) Cap() int {
	return h.capacity
}
