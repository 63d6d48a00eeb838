package parser

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"
)

// errReader simulates an io.Reader that fails on Read.
type errReader struct{ err error }

func (e *errReader) Read(p []byte) (int, error) { return 0, e.err }

// pollNext polls until the source yields something other than ErrNoSample.
func pollNext(t *testing.T, s *LineSource) (float64, error) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		value, err := s.Poll()
		if err != ErrNoSample {
			return value, err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for a sample")
	return 0, nil
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		name string
		line string
		want float64
	}{
		{"integer", "42", 42},
		{"negative float", "-3.25", -3.25},
		{"surrounding whitespace", "  7.5\t", 7.5},
		{"exponent", "1e3", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSample(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseSample(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseSample("abc")
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Fatalf("expected *strconv.NumError, got %v", err)
		}
	})

	t.Run("not finite", func(t *testing.T) {
		for _, line := range []string{"NaN", "inf", "-Inf"} {
			if _, err := ParseSample(line); !errors.Is(err, ErrNotFinite) {
				t.Fatalf("ParseSample(%q) error = %v, want ErrNotFinite", line, err)
			}
		}
	})
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("   \t") {
		t.Fatal("expected whitespace-only lines to be blank")
	}
	if IsBlank(" 1 ") {
		t.Fatal("expected a number line not to be blank")
	}
}

func TestLineSource(t *testing.T) {
	t.Run("Poll_SamplesInOrder", func(t *testing.T) {
		s := NewLineSource(strings.NewReader("1\n2.5\n-3\n"))
		for _, want := range []float64{1, 2.5, -3} {
			got, err := pollNext(t, s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Fatalf("got %v want %v", got, want)
			}
		}
		if _, err := pollNext(t, s); err != io.EOF {
			t.Fatalf("expected io.EOF after samples, got %v", err)
		}
		// stays ended
		if _, err := s.Poll(); err != io.EOF {
			t.Fatalf("expected io.EOF on repeated poll, got %v", err)
		}
	})

	t.Run("Poll_BlankLinesIgnored", func(t *testing.T) {
		s := NewLineSource(strings.NewReader("\n  \n5\n\n"))
		got, err := pollNext(t, s)
		if err != nil || got != 5 {
			t.Fatalf("got %v, %v want 5, nil", got, err)
		}
		if _, err := pollNext(t, s); err != io.EOF {
			t.Fatalf("expected io.EOF, got %v", err)
		}
		if s.LineCount() != 4 {
			t.Fatalf("LineCount() = %d, want 4", s.LineCount())
		}
	})

	t.Run("Poll_MalformedLine", func(t *testing.T) {
		s := NewLineSource(strings.NewReader("1\n\nabc\n2\n"))
		if _, err := pollNext(t, s); err != nil {
			t.Fatalf("unexpected error on first line: %v", err)
		}
		_, err := pollNext(t, s)
		var sampleErr *SampleError
		if !errors.As(err, &sampleErr) {
			t.Fatalf("expected *SampleError, got %v", err)
		}
		if sampleErr.Line != 3 || sampleErr.Text != "abc" {
			t.Fatalf("unexpected error details: line %d text %q", sampleErr.Line, sampleErr.Text)
		}
		if !strings.Contains(err.Error(), `"abc"`) {
			t.Fatalf("error message should quote the line: %v", err)
		}
	})

	t.Run("Poll_NoDataYet", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		s := NewLineSource(pr)
		if _, err := s.Poll(); err != ErrNoSample {
			t.Fatalf("expected ErrNoSample, got %v", err)
		}

		go func() {
			_, _ = pw.Write([]byte("9\n"))
		}()
		got, err := pollNext(t, s)
		if err != nil || got != 9 {
			t.Fatalf("got %v, %v want 9, nil", got, err)
		}
	})

	t.Run("Poll_UnderlyingError", func(t *testing.T) {
		underlying := errors.New("boom")
		s := NewLineSource(&errReader{err: underlying})
		_, err := pollNext(t, s)
		if !errors.Is(err, underlying) {
			t.Fatalf("expected underlying error %v, got %v", underlying, err)
		}
	})
}
