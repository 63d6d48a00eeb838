package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"pipeplot/internal/models"
)

// Frame is everything one draw cycle needs, derived fresh from the history
type Frame struct {
	Values []float64 // newest first

	Data Range // extent of the data under the scale mode
	Plot Range // Data with the fixed bounds applied

	Current float64
	Average float64
	Natural bool
}

// Stats returns the overlay content of the frame
func (f Frame) Stats() Stats {
	return Stats{
		Max:     f.Data.Max,
		Current: f.Current,
		Min:     f.Data.Min,
		Average: f.Average,
		Natural: f.Natural,
	}
}

// PlotWidget owns the sample history and draws it onto a Surface
type PlotWidget struct {
	config  models.PlotConfig
	history *models.History

	plotStyle tcell.Style
	uiStyle   tcell.Style

	logger logrus.FieldLogger
}

// NewPlotWidget creates a widget with an empty history sized from config
func NewPlotWidget(config models.PlotConfig) *PlotWidget {
	if config.SymbolWidth < 1 {
		config.SymbolWidth = 1
	}
	return &PlotWidget{
		config:    config,
		history:   models.NewHistory(config.HistorySize),
		plotStyle: tcell.StyleDefault.Foreground(tcell.PaletteColor(config.Color)),
		uiStyle:   tcell.StyleDefault,
		logger:    logrus.WithField("tag", "PlotWidget"),
	}
}

// Append records a new sample
func (w *PlotWidget) Append(value float64) {
	w.history.Append(value)
}

// History exposes the sample history for inspection
func (w *PlotWidget) History() *models.History {
	return w.history
}

// Config returns the configuration the widget was built with
func (w *PlotWidget) Config() models.PlotConfig {
	return w.config
}

// Columns returns how many samples fit across width
func (w *PlotWidget) Columns(width int) int {
	return (width + w.config.SymbolWidth - 1) / w.config.SymbolWidth
}

// Frame computes the frame for a surface width. ok is false with no samples.
func (w *PlotWidget) Frame(width int) (Frame, bool) {
	values := w.history.Window(w.Columns(width))
	if len(values) == 0 {
		return Frame{}, false
	}

	lifetimeMin, lifetimeMax, _ := w.history.Extrema()
	data := DataRange(w.config.Scale, values, lifetimeMin, lifetimeMax)

	return Frame{
		Values:  values,
		Data:    data,
		Plot:    ResolveRange(data, w.config.FixedMin, w.config.FixedMax),
		Current: values[0],
		Average: models.Mean(values),
		Natural: w.history.Natural(),
	}, true
}

// Draw renders the title, plot and stats, then shows the surface.
// It returns false when there was nothing to draw.
func (w *PlotWidget) Draw(s Surface) bool {
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		return false
	}
	frame, ok := w.Frame(width)
	if !ok {
		return false
	}

	top := 0
	if w.config.HasTitle() {
		title := LayoutTitle(w.config.Title, width)
		DrawText(s, title.X, title.Y, title.Text, w.uiStyle)
		top = 1
	}

	region := Region{X: 0, Y: top, Width: width, Height: height - top}
	ops := Rasterize(frame.Values, frame.Plot, region, w.config.SymbolWidth, w.config.Direction)
	ApplyOps(s, ops, w.config.Symbol, w.config.SymbolWidth, w.plotStyle)

	for _, line := range LayoutStats(frame.Stats(), width, height) {
		DrawText(s, line.X, line.Y, line.Text, w.uiStyle)
	}

	w.logger.WithFields(logrus.Fields{
		"width":   width,
		"height":  height,
		"samples": len(frame.Values),
		"min":     frame.Plot.Min,
		"max":     frame.Plot.Max,
	}).Trace("frame drawn")

	s.Show()
	return true
}
