// render.go

// Package render lays out line and bar charts on a scene.
//
// A chart is built stage by stage: title, X axis, left Y axis and its
// series, right Y axis and its series, legend. Each stage measures what it
// draws and grows or shifts the regions drawn before it, so no stage needs
// to know the final size of the others in advance.
package render

import (
	"errors"
	"fmt"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/scene"
)

// OutputRenderer draws an output kind this package does not lay out itself,
// such as a summary or a month calendar.
type OutputRenderer interface {
	Render(canvas *scene.Node, info *chartinfo.RenderInfo) error
}

type options struct {
	truncateExpand bool
	summary        OutputRenderer
	month          OutputRenderer
	log            *logger.Logger
}

// Option configures Render.
type Option func(*options)

// WithTruncateExpand cuts region sizes to whole pixels before every growth
// step, reproducing charts laid out by integer-only hosts.
func WithTruncateExpand(on bool) Option {
	return func(o *options) { o.truncateExpand = on }
}

// WithSummaryRenderer handles chartinfo.Summary outputs.
func WithSummaryRenderer(r OutputRenderer) Option {
	return func(o *options) { o.summary = r }
}

// WithMonthRenderer handles chartinfo.Month outputs.
func WithMonthRenderer(r OutputRenderer) Option {
	return func(o *options) { o.month = r }
}

// WithLogger sets the logger for layout progress.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Render draws the chart described by info onto the scene canvas. The
// datasets of info are not modified: penalties and accumulation are applied
// to a copy. A missing line or bar block draws nothing.
//
// Errors are diagnostics meant to be shown in place of the chart, see
// RenderError. A *LayoutError wraps one of the Err sentinels.
func Render(sc *scene.Scene, info *chartinfo.RenderInfo, opts ...Option) (err error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Global().WithComponent("render")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chart layout failed: %v", r)
		}
		if err != nil {
			o.log.Warn("chart not drawn", logger.Fields{"diagnostic": err.Error()})
		}
	}()

	if info == nil || info.Datasets == nil {
		return errors.New("chart has no datasets")
	}
	info = prepare(info)

	switch info.Output {
	case chartinfo.Line:
		if info.Line == nil {
			return nil
		}
		li := info.Line
		return renderChart(sc, info, &li.CommonChartInfo, &o, func(chartinfo.PerSide[[]int]) seriesRenderer {
			return &lineSeries{info: li}
		})
	case chartinfo.Bar:
		if info.Bar == nil {
			return nil
		}
		bi := info.Bar
		return renderChart(sc, info, &bi.CommonChartInfo, &o, func(sides chartinfo.PerSide[[]int]) seriesRenderer {
			return &barSeries{info: bi, total: len(sides[chartinfo.Left]) + len(sides[chartinfo.Right])}
		})
	case chartinfo.Summary:
		return renderExternal(sc, info, o.summary)
	case chartinfo.Month:
		return renderExternal(sc, info, o.month)
	default:
		return newLayoutError("dispatch", chartinfo.NoSide, ErrUnknownOutput)
	}
}

// prepare returns a normalized copy of info whose datasets are copies with
// the configured penalty and accumulation applied to every plotted dataset.
func prepare(info *chartinfo.RenderInfo) *chartinfo.RenderInfo {
	out := *info
	out.Datasets = info.Datasets.Clone()
	if info.Line != nil {
		li := *info.Line
		out.Line = &li
	}
	if info.Bar != nil {
		bi := *info.Bar
		out.Bar = &bi
	}
	out.Normalize()
	for _, ds := range out.Datasets.All() {
		if ds.UsedAsXDataset() {
			continue
		}
		id := ds.ID()
		if id < len(out.Penalty) && out.Penalty[id] != nil {
			ds.SetPenalty(*out.Penalty[id])
		}
		if id < len(out.Accum) && out.Accum[id] {
			ds.AccumulateValues()
		}
	}
	return &out
}

func renderExternal(sc *scene.Scene, info *chartinfo.RenderInfo, r OutputRenderer) error {
	if r == nil {
		return newLayoutError("dispatch", chartinfo.NoSide, fmt.Errorf("%w %s", ErrNoRenderer, info.Output))
	}
	return r.Render(sc.Canvas, info)
}

// renderChart runs the layout stages of a line or bar chart.
func renderChart(sc *scene.Scene, info *chartinfo.RenderInfo, chart *chartinfo.CommonChartInfo, o *options,
	newSeries func(chartinfo.PerSide[[]int]) seriesRenderer) error {
	start := newLayout(sc, info, chart, o)
	series := newSeries(start.l.sides)

	left, err := start.AddTitle().AddXAxis()
	if err != nil {
		return err
	}
	leftSeries, err := left.AddLeftYAxis()
	if err != nil {
		return err
	}
	right, err := leftSeries.AddSeries(series).AddRightYAxis()
	if err != nil {
		return err
	}
	legend := right.AddSeries(series)

	var el *ChartElements
	if chart.ShowLegend {
		el = legend.AddLegend().Finish()
	} else {
		el = legend.Finish()
	}
	o.log.Debug("chart laid out", logger.Fields{
		"output": info.Output.String(), "width": el.SVG.Width, "height": el.SVG.Height,
	})
	return nil
}

// RenderError replaces whatever the canvas holds with err's message in a
// red block.
func RenderError(sc *scene.Scene, err error) {
	sc.Canvas.Clear()
	sc.Canvas.Append("div").
		SetText(err.Error()).
		SetStyle("background-color", "white").
		SetStyle("margin-bottom", "20px").
		SetStyle("padding", "10px").
		SetStyle("color", "red")
}
