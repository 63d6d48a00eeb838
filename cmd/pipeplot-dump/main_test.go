package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"pipeplot/internal/parser"
)

func parseDumpOptions(t *testing.T, args ...string) dumpOptions {
	t.Helper()
	var opts dumpOptions
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		t.Fatalf("failed to parse options %v: %v", args, err)
	}
	return opts
}

func TestDump(t *testing.T) {
	t.Run("ConstantSamples", func(t *testing.T) {
		opts := parseDumpOptions(t, "--width", "20", "--height", "10")
		var out bytes.Buffer
		if err := dump(strings.NewReader("5\n5\n\n5\n"), &out, opts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != 11 {
			t.Fatalf("got %d lines, want 10 rows and a summary:\n%s", len(lines), out.String())
		}
		if lines[0] != "" {
			t.Fatalf("top row = %q, want blank", lines[0])
		}
		for _, y := range []int{7, 8, 9} {
			if lines[y] != "███" {
				t.Fatalf("row %d = %q, want three filled columns", y, lines[y])
			}
		}
		if !strings.Contains(lines[3], "Max:      5") {
			t.Fatalf("row 3 = %q, want the Max line", lines[3])
		}
		if !strings.Contains(lines[6], "Avg:   5.00") {
			t.Fatalf("row 6 = %q, want the Avg line", lines[6])
		}
		if lines[10] != "samples: 3, lines: 4" {
			t.Fatalf("summary = %q", lines[10])
		}
	})

	t.Run("Frames", func(t *testing.T) {
		opts := parseDumpOptions(t, "--width", "20", "--height", "6", "--frames")
		var out bytes.Buffer
		if err := dump(strings.NewReader("1\n2\n"), &out, opts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := strings.Count(out.String(), "=== Frame"); n != 2 {
			t.Fatalf("got %d frames, want 2", n)
		}
	})

	t.Run("MalformedSample", func(t *testing.T) {
		opts := parseDumpOptions(t)
		var out bytes.Buffer
		err := dump(strings.NewReader("1\nabc\n"), &out, opts)
		var sampleErr *parser.SampleError
		if !errors.As(err, &sampleErr) {
			t.Fatalf("expected *parser.SampleError, got %v", err)
		}
	})

	t.Run("InvalidSize", func(t *testing.T) {
		opts := parseDumpOptions(t, "--width", "0")
		if err := dump(strings.NewReader("1\n"), &bytes.Buffer{}, opts); err == nil {
			t.Fatal("expected error for zero width")
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		opts := parseDumpOptions(t)
		var out bytes.Buffer
		if err := dump(strings.NewReader(""), &out, opts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.String() != "samples: 0, lines: 0\n" {
			t.Fatalf("unexpected output %q", out.String())
		}
	})
}
