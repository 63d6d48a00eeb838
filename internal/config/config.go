package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"pipeplot/internal/models"
)

const description = "Displays a graph based on data from the pipe."

// Options are the command-line flags
type Options struct {
	Title     string   `long:"title" description:"Title line centered above the plot"`
	Color     int      `long:"color" default:"2" description:"Palette index of the plot symbol (0-255)"`
	Symbol    string   `long:"symbol" default:"█" description:"Symbol used to fill the bars"`
	Scale     string   `long:"scale" default:"full-history" choice:"full-history" choice:"windowed" choice:"all" choice:"window" description:"Range of the vertical axis: all retained samples or only the visible ones"`
	Direction string   `long:"direction" default:"toward-higher-index" choice:"toward-higher-index" choice:"toward-lower-index" choice:"right" choice:"left" description:"Scroll direction of the plot"`
	Min       *float64 `long:"min" description:"Fixed lower bound of the vertical axis"`
	Max       *float64 `long:"max" description:"Fixed upper bound of the vertical axis"`
	History   int      `long:"history" default:"1000" description:"Number of samples kept in memory"`
	Hold      bool     `long:"hold" description:"Keep the plot on screen after the input ends until a key is pressed"`

	LogFile  string `long:"log-file" description:"Write debug logs to this file"`
	LogLevel string `long:"log-level" default:"info" description:"Log level (trace, debug, info, warn, error)"`

	Version bool `long:"version" description:"Print the version and exit"`
}

// Parse reads options from args (without the program name).
// Help requests are reported as a *flags.Error of type flags.ErrHelp.
func Parse(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "pipeplot"
	parser.LongDescription = description

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return &opts, nil
}

// IsHelp reports whether err is a help request rather than a failure
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

// PlotConfig validates the options and derives the plot configuration.
// SymbolWidth is left for the caller to probe on the screen.
func (o *Options) PlotConfig() (models.PlotConfig, error) {
	if o.Symbol == "" {
		return models.PlotConfig{}, errors.New("--symbol must not be empty")
	}
	if o.Color < 0 || o.Color > 255 {
		return models.PlotConfig{}, fmt.Errorf("--color must be within 0-255, got %d", o.Color)
	}
	if o.History <= 0 {
		return models.PlotConfig{}, fmt.Errorf("--history must be > 0, got %d", o.History)
	}
	if o.Min != nil && o.Max != nil && *o.Min >= *o.Max {
		return models.PlotConfig{}, fmt.Errorf("--min (%g) must be below --max (%g)", *o.Min, *o.Max)
	}

	scale, err := models.ParseScaleMode(o.Scale)
	if err != nil {
		return models.PlotConfig{}, fmt.Errorf("--scale: %w", err)
	}
	direction, err := models.ParseDirection(o.Direction)
	if err != nil {
		return models.PlotConfig{}, fmt.Errorf("--direction: %w", err)
	}

	return models.PlotConfig{
		Title:       o.Title,
		Color:       o.Color,
		Symbol:      o.Symbol,
		Scale:       scale,
		Direction:   direction,
		FixedMin:    o.Min,
		FixedMax:    o.Max,
		HistorySize: o.History,
	}, nil
}

// Level returns the parsed log level
func (o *Options) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("--log-level: %w", err)
	}
	return level, nil
}
