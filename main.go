package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pipeplot/internal/app"
	"pipeplot/internal/config"
	"pipeplot/internal/models"
	"pipeplot/internal/parser"
	"pipeplot/internal/ui"
)

const version = "0.3.3"

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	opts, err := config.Parse(args)
	if err != nil {
		if config.IsHelp(err) {
			fmt.Println(err)
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if opts.Version {
		fmt.Printf("pipeplot %s\n", version)
		return 0
	}

	plotConfig, err := opts.PlotConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	level, err := opts.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logFile, err := setupLogging(opts.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "pipeplot reads numbers from a pipe, e.g.: vmstat -n 1 | awk '{print $13}' | pipeplot")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The terminal is restored inside run, so diagnostics are printed after it
	err = run(ctx, plotConfig, opts.Hold)
	if err == nil {
		return 0
	}

	logrus.WithError(err).Error("pipeplot stopped")
	var sampleErr *parser.SampleError
	if errors.As(err, &sampleErr) {
		fmt.Fprintf(os.Stderr, "Stdin error: %v\n", sampleErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

func run(ctx context.Context, plotConfig models.PlotConfig, hold bool) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: runs before Fini so the report lands on a restored terminal
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	screen.HideCursor()
	screen.Clear()

	plotConfig.SymbolWidth = ui.ProbeSymbolWidth(screen, plotConfig.Symbol)
	logrus.WithFields(logrus.Fields{
		"symbol":      plotConfig.Symbol,
		"symbolWidth": plotConfig.SymbolWidth,
		"scale":       plotConfig.Scale,
		"direction":   plotConfig.Direction,
	}).Info("starting plot")

	widget := ui.NewPlotWidget(plotConfig)
	source := parser.NewLineSource(os.Stdin)

	return app.New(screen, source, widget, app.Config{Hold: hold}).Run(ctx)
}

// setupLogging sends logs to path, or discards them when path is empty.
// The terminal belongs to the plot, so logs never go to stdout or stderr.
func setupLogging(path string, level logrus.Level) (io.Closer, error) {
	logrus.SetLevel(level)
	if path == "" {
		logrus.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil, err
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logrus.SetOutput(f)
	return f, nil
}
