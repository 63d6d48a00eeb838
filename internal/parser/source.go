package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Lines longer than this are reported as read errors by the scanner
const maxLineSize = 1024 * 1024

// LineSource turns a line-oriented reader (usually stdin) into samples.
//
// The reader is consumed by a background goroutine so that Poll never
// blocks: when no line is pending it returns ErrNoSample.
type LineSource struct {
	lines chan string

	// Written by the scanner goroutine before lines is closed
	scanErr error

	lineCount int
	ended     bool

	logger logrus.FieldLogger
}

// NewLineSource starts reading input in the background
func NewLineSource(input io.Reader) *LineSource {
	s := &LineSource{
		lines:  make(chan string, 256),
		logger: logrus.WithField("tag", "LineSource"),
	}
	go s.scan(input)
	return s
}

func (s *LineSource) scan(input io.Reader) {
	defer close(s.lines)

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
	s.scanErr = scanner.Err()
}

// Poll returns the next sample without blocking.
//
// Blank lines are skipped. It returns ErrNoSample when nothing is pending,
// io.EOF once the input is exhausted, a *SampleError for a malformed line,
// or the underlying read error.
func (s *LineSource) Poll() (float64, error) {
	if s.ended {
		return 0, s.endErr()
	}

	for {
		select {
		case line, open := <-s.lines:
			if !open {
				s.ended = true
				s.logger.WithField("lines", s.lineCount).Debug("input ended")
				return 0, s.endErr()
			}

			s.lineCount++
			if IsBlank(line) {
				s.logger.WithField("lineNum", s.lineCount).Debug("blank line, ignoring...")
				continue
			}

			value, err := ParseSample(line)
			if err != nil {
				return 0, &SampleError{Line: s.lineCount, Text: strings.TrimSpace(line), Err: err}
			}
			return value, nil
		default:
			return 0, ErrNoSample
		}
	}
}

// LineCount returns the number of lines consumed so far, blank ones included
func (s *LineSource) LineCount() int {
	return s.lineCount
}

func (s *LineSource) endErr() error {
	if s.scanErr != nil {
		return s.scanErr
	}
	return io.EOF
}
