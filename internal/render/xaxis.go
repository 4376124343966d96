// xaxis.go

package render

import (
	"math"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/scale"
	"github.com/buffos/go-tracker/internal/scene"
	"github.com/buffos/go-tracker/internal/tick"
)

// tickLabelAngle is the rotation of X tick labels, in degrees.
const tickLabelAngle = 65.0

// renderXAxis draws the time axis under the data area and grows the chart by
// the height of the rotated tick labels.
func (l *layout) renderXAxis() error {
	dates := l.info.Datasets.Dates()
	if len(dates) == 0 {
		return newLayoutError("x axis", chartinfo.NoSide, ErrNoDates)
	}
	size := l.info.DataAreaSize
	first, last := dates[0], dates[len(dates)-1]
	xScale := scale.NewTime(first, last, 0, size.Width)
	l.el.XScale = xScale

	interval := tick.IntervalFor(len(dates))
	format := tick.Formatter(interval.Layout())
	var ticks []axisTick
	for _, t := range interval.Range(first, last) {
		ticks = append(ticks, axisTick{pos: xScale.Map(t), label: format(t)})
	}

	g := l.el.DataArea.Node.Append("g").SetAttr("id", l.sc.ID("xAxis"))
	axis := newRegion(g)
	axis.setOffset(0, size.Height)
	labels := drawAxis(g, axisBottom, 0, size.Width, ticks)
	g.SetAttr("class", "tracker-axis")
	if l.chart.XAxisColor != "" {
		g.SetStyle("stroke", l.chart.XAxisColor)
	}
	l.el.XAxis = axis

	rad := tickLabelAngle / 180 * math.Pi
	textSize := l.sc.MeasureText("99-99-99", "")
	for _, label := range labels {
		label.SetAttr("x", -textSize.Height*math.Cos(rad)).
			SetAttr("y", 0).
			SetAttr("transform", "rotate(-65)").
			SetAttr("class", "tracker-tick-label").
			SetStyle("text-anchor", "end")
		if l.chart.XAxisColor != "" {
			label.SetStyle("fill", l.chart.XAxisColor)
		}
	}

	tickLabelHeight := textSize.Width * math.Sin(rad)
	axisLabel := g.Append("text").
		SetText(l.chart.XAxisLabel).
		SetAttr("transform", scene.Translate(size.Width/2, tickSize+tickLabelHeight)).
		SetAttr("class", "tracker-axis-label")
	if l.chart.XAxisLabelColor != "" {
		axisLabel.SetStyle("fill", l.chart.XAxisLabelColor)
	}

	height := tickSize + tickLabelHeight
	axis.Height = height
	g.SetAttr("height", height)

	l.expandArea(l.el.SVG, 0, height)
	l.expandArea(l.el.GraphArea, 0, height)
	l.log.Debug("x axis laid out", logger.Fields{"interval": interval.String(), "ticks": len(ticks), "height": height})
	return nil
}
