package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"pipeplot/internal/config"
	"pipeplot/internal/parser"
	"pipeplot/internal/ui"
)

// dumpOptions extends the plot flags with the size of the virtual screen
type dumpOptions struct {
	config.Options

	Width  int  `long:"width" default:"80" description:"Width of the virtual screen"`
	Height int  `long:"height" default:"24" description:"Height of the virtual screen"`
	Frames bool `long:"frames" description:"Print every frame instead of only the last one"`
}

func main() {
	logrus.SetOutput(io.Discard)

	var opts dumpOptions
	p := flags.NewParser(&opts, flags.Default)
	p.Name = "pipeplot-dump"
	p.LongDescription = "Renders numbers from stdin the way pipeplot does, onto a virtual screen printed as text."
	if _, err := p.Parse(); err != nil {
		if config.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := dump(os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Stdin error: %v\n", err)
		os.Exit(1)
	}
}

func dump(input io.Reader, output io.Writer, opts dumpOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", opts.Width, opts.Height)
	}
	plotConfig, err := opts.PlotConfig()
	if err != nil {
		return err
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(opts.Width, opts.Height)
	screen.Clear()

	plotConfig.SymbolWidth = ui.ProbeSymbolWidth(screen, plotConfig.Symbol)
	widget := ui.NewPlotWidget(plotConfig)
	source := parser.NewLineSource(input)

	frames := 0
	for {
		value, err := source.Poll()
		if errors.Is(err, parser.ErrNoSample) {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		widget.Append(value)
		widget.Draw(screen)
		frames++
		if opts.Frames {
			fmt.Fprintf(output, "=== Frame %d ===\n", frames)
			writeScreen(output, screen)
		}
	}

	if !opts.Frames && frames > 0 {
		writeScreen(output, screen)
	}
	fmt.Fprintf(output, "samples: %d, lines: %d\n", widget.History().Len(), source.LineCount())
	return nil
}

// writeScreen prints the surface row by row with trailing blanks trimmed
func writeScreen(output io.Writer, s ui.Surface) {
	width, height := s.Size()
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; {
			primary, combining, _, w := s.GetContent(x, y)
			if primary == 0 {
				primary = ' '
			}
			row.WriteRune(primary)
			for _, r := range combining {
				row.WriteRune(r)
			}
			if w < 1 {
				w = 1
			}
			x += w
		}
		fmt.Fprintln(output, strings.TrimRight(row.String(), " "))
	}
}
