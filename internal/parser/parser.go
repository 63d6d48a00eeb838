package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoSample means no complete line is available yet; retry later.
	ErrNoSample = errors.New("no sample available")

	// ErrNotFinite rejects NaN and infinities, which cannot be scaled.
	ErrNotFinite = errors.New("sample is not a finite number")
)

// SampleError reports a non-blank input line that is not a number
type SampleError struct {
	Line int    // 1-based input line number
	Text string // the offending line, trimmed
	Err  error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("line %d: could not convert %q to float: %v", e.Line, e.Text, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// IsBlank checks if a line carries no sample
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ParseSample parses one input line into a sample value
func ParseSample(line string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNotFinite
	}
	return value, nil
}
