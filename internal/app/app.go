package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"pipeplot/internal/parser"
	"pipeplot/internal/ui"
)

// DefaultPollInterval is how long the loop waits when no sample is pending
const DefaultPollInterval = 100 * time.Millisecond

// SampleSource yields samples without blocking.
// It returns parser.ErrNoSample when nothing is pending and io.EOF at the end.
type SampleSource interface {
	Poll() (float64, error)
}

type Config struct {
	// Keep the last frame on screen after the input ends until a key is pressed
	Hold bool

	PollInterval time.Duration
}

// App drives the plot: it feeds samples into the widget and redraws the screen
type App struct {
	screen tcell.Screen
	source SampleSource
	widget *ui.PlotWidget
	cfg    Config

	state   LoopState
	samples int

	// throughput is logged at most once per interval
	progress *rate.Sometimes

	logger logrus.FieldLogger
}

func New(screen tcell.Screen, source SampleSource, widget *ui.PlotWidget, cfg Config) *App {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &App{
		screen:   screen,
		source:   source,
		widget:   widget,
		cfg:      cfg,
		state:    StateWaitingForSample,
		progress: &rate.Sometimes{First: 1, Interval: time.Second},
		logger:   logrus.WithField("tag", "App"),
	}
}

// Run loops until the input ends, the user quits or ctx is cancelled.
// Only malformed samples and read failures are returned as errors.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go a.pumpEvents(events, done)

	for {
		switch a.state {
		case StateWaitingForSample:
			// Keys and resizes are handled even while samples keep arriving
			if stop := a.drainEvents(ctx, events); stop {
				return nil
			}

			value, err := a.source.Poll()
			switch {
			case err == nil:
				a.widget.Append(value)
				a.samples++
				a.progress.Do(func() {
					a.logger.WithFields(logrus.Fields{
						"samples": a.samples,
						"latest":  value,
					}).Debug("receiving samples")
				})
				a.transition(StateSampleReceived)
			case errors.Is(err, parser.ErrNoSample):
				if stop := a.wait(ctx, events, a.cfg.PollInterval); stop {
					return nil
				}
			case errors.Is(err, io.EOF):
				a.transition(StateInputEnded)
			default:
				a.logger.WithError(err).Error("unable to read sample")
				return fmt.Errorf("read sample: %w", err)
			}

		case StateSampleReceived:
			a.transition(StateRedraw)

		case StateRedraw:
			a.widget.Draw(a.screen)
			a.transition(StateWaitingForSample)

		case StateInputEnded:
			a.logger.WithField("samples", a.samples).Info("input ended")
			if !a.cfg.Hold {
				return nil
			}
			return a.holdUntilKey(ctx, events)

		default:
			return fmt.Errorf("unknown loop state %v", a.state)
		}
	}
}

// Samples returns the number of samples appended so far
func (a *App) Samples() int {
	return a.samples
}

func (a *App) transition(next LoopState) {
	a.logger.WithFields(logrus.Fields{
		"from": a.state,
		"to":   next,
	}).Trace("state transition")
	a.state = next
}

func (a *App) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (a *App) drainEvents(ctx context.Context, events <-chan tcell.Event) bool {
	for {
		select {
		case <-ctx.Done():
			return true
		case ev := <-events:
			if a.handleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (a *App) wait(ctx context.Context, events <-chan tcell.Event, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return true
	case ev := <-events:
		return a.handleEvent(ev)
	case <-timer.C:
		return false
	}
}

// handleEvent reacts to a terminal event and reports whether to quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return true
		}
	case *tcell.EventResize:
		a.redraw()
	}
	return false
}

// redraw repaints from scratch after the surface changed size
func (a *App) redraw() {
	a.screen.Clear()
	a.widget.Draw(a.screen)
	a.screen.Sync()
}

func (a *App) holdUntilKey(ctx context.Context, events <-chan tcell.Event) error {
	ui.DrawBanner(a.screen, ui.BannerInputEnded)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				a.redraw()
				ui.DrawBanner(a.screen, ui.BannerInputEnded)
			}
		}
	}
}
