// line.go

package render

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/dataset"
	"github.com/buffos/go-tracker/internal/scene"
	"github.com/buffos/go-tracker/internal/tick"
)

// Tooltip fade durations.
const (
	tooltipFadeIn  = 200 * time.Millisecond
	tooltipFadeOut = 500 * time.Millisecond
)

// seriesRenderer draws one dataset against the Y axis of side.
type seriesRenderer interface {
	renderSeries(l *layout, ds *dataset.Dataset, side chartinfo.Side)
}

type lineSeries struct {
	info *chartinfo.LineInfo
}

func (s *lineSeries) renderSeries(l *layout, ds *dataset.Dataset, side chartinfo.Side) {
	s.renderLine(l, ds, side)
	s.renderPoints(l, ds, side)
}

// renderLine draws the path through the dataset. A missing value breaks the
// path unless fillGap drops missing values first.
func (s *lineSeries) renderLine(l *layout, ds *dataset.Dataset, side chartinfo.Side) {
	id := ds.ID()
	if !s.info.ShowLine[id] {
		return
	}
	points := ds.Points()
	if s.info.FillGap[id] {
		points = ds.ValidPoints()
	}
	yScale := l.el.YScale.Get(side)
	d := linePath(points, l.el.XScale.Map, yScale.Map)

	path := l.el.DataArea.Node.Append("path").
		SetAttr("class", "tracker-line").
		SetStyle("stroke-width", s.info.LineWidth[id]).
		SetAttr("d", d)
	if c := s.info.LineColor[id]; c != "" {
		path.SetStyle("stroke", c)
	}
}

// linePath builds path data through the valid points. Every run of valid
// points starts a new subpath; a run of a single point is closed so it still
// shows up with round caps.
func linePath(points []dataset.DataPoint, x func(time.Time) float64, y func(float64) float64) string {
	var b strings.Builder
	run := 0
	for _, p := range points {
		if !p.Valid {
			if run == 1 {
				b.WriteString("Z")
			}
			run = 0
			continue
		}
		if run == 0 {
			b.WriteString("M")
		} else {
			b.WriteString("L")
		}
		b.WriteString(scene.FormatNumber(x(p.Date)))
		b.WriteString(",")
		b.WriteString(scene.FormatNumber(y(p.Value)))
		run++
	}
	if run == 1 {
		b.WriteString("Z")
	}
	return b.String()
}

// renderPoints draws a marker per valid point. Markers carry the date and
// value shown by the hover tooltip.
func (s *lineSeries) renderPoints(l *layout, ds *dataset.Dataset, side chartinfo.Side) {
	id := ds.ID()
	if !s.info.ShowPoint[id] {
		return
	}
	yScale := l.el.YScale.Get(side)
	dateFormat := tick.Formatter(tick.DayLayout)

	var dots []*scene.Node
	for _, p := range ds.ValidPoints() {
		dot := l.el.DataArea.Node.Append("circle").
			SetAttr("r", s.info.PointSize[id]).
			SetAttr("cx", l.el.XScale.Map(p.Date)).
			SetAttr("cy", yScale.Map(p.Value)).
			SetAttr("date", dateFormat(p.Date)).
			SetAttr("value", pointValue(p.Value)).
			SetAttr("class", "tracker-dot")
		if c := s.info.PointColor[id]; c != "" {
			dot.SetStyle("fill", c)
			if bc := s.info.PointBorderColor[id]; bc != "" && s.info.PointBorderWidth[id] > 0 {
				dot.SetStyle("stroke", bc)
				dot.SetStyle("stroke-width", s.info.PointBorderWidth[id])
			}
		}
		dots = append(dots, dot)
	}

	if s.info.AllowInspectData && len(dots) > 0 {
		tooltip := l.newTooltip(id)
		for _, dot := range dots {
			date, _ := dot.Attr("date")
			value, _ := dot.Attr("value")
			dot.OnHover(scene.Hover{
				Tooltip:   tooltip,
				Lines:     []string{"date:" + date, "value:" + value},
				FadeIn:    tooltipFadeIn,
				FadeOut:   tooltipFadeOut,
				AreaWidth: l.info.DataAreaSize.Width,
				TooltipSize: scene.Size{
					Width:  l.info.TooltipSize.Width,
					Height: l.info.TooltipSize.Height,
				},
			})
		}
	}
}

// pointValue prints whole numbers without decimals and everything else with two.
func pointValue(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// newTooltip appends a hidden tooltip group to the svg root. Its two text
// lines are filled in when a marker is hovered.
func (l *layout) newTooltip(datasetID int) *scene.Node {
	size := l.info.TooltipSize
	tip := l.el.SVG.Node.Append("g").
		SetAttr("id", l.sc.ID("tooltip-"+strconv.Itoa(datasetID))).
		SetStyle("opacity", 0)
	tip.Append("rect").
		SetAttr("width", size.Width).
		SetAttr("height", size.Height).
		SetAttr("class", "tracker-tooltip")
	for i := 1; i <= 2; i++ {
		tip.Append("text").
			SetAttr("x", 4).
			SetAttr("y", size.Height/5*float64(2*i)).
			SetAttr("class", "tracker-tooltip-label")
	}
	return tip
}
