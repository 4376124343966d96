// yaxis.go

package render

import (
	"math"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/dataset"
	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/scale"
	"github.com/buffos/go-tracker/internal/tick"
)

// axisPadding is the share of the data extent added to a derived bound.
const axisPadding = 0.2

// axisDomain is the value range of one Y axis.
type axisDomain struct {
	Lower, Upper float64
	// MinAssigned and MaxAssigned tell whether the bounds came from the
	// configuration, after a possible swap.
	MinAssigned bool
	MaxAssigned bool
	IsTime      bool
}

// resolveDomain combines the datasets drawn against one axis with its
// configured bounds. Configured bounds win over the data; derived bounds are
// padded by a fifth of the extent. With includeZero the domain is widened to
// contain zero, as bars grow from the zero line.
func resolveDomain(sets []*dataset.Dataset, yMin, yMax chartinfo.Bound, includeZero bool) (axisDomain, error) {
	var (
		dataMin, dataMax float64
		haveRange        bool
		dom              axisDomain
	)
	for i, ds := range sets {
		isTime := ds.ValueType() == dataset.Time
		if i == 0 {
			dom.IsTime = isTime
		} else if isTime != dom.IsTime {
			return axisDomain{}, ErrMixedValueTypes
		}
		lo, ok := ds.YMin()
		if !ok {
			continue
		}
		hi, _ := ds.YMax()
		if !haveRange || lo < dataMin {
			dataMin = lo
		}
		if !haveRange || hi > dataMax {
			dataMax = hi
		}
		haveRange = true
	}

	lo, hi := dataMin, dataMax
	if yMin.Assigned {
		lo, dom.MinAssigned = yMin.Value, true
	}
	if yMax.Assigned {
		hi, dom.MaxAssigned = yMax.Value, true
	}
	if hi < lo {
		lo, hi = hi, lo
		dom.MinAssigned, dom.MaxAssigned = dom.MaxAssigned, dom.MinAssigned
	}

	extent := hi - lo
	dom.Lower, dom.Upper = lo, hi
	if !dom.MinAssigned {
		dom.Lower = lo - extent*axisPadding
	}
	if !dom.MaxAssigned {
		dom.Upper = hi + extent*axisPadding
	}
	if includeZero {
		if dom.Upper < 0 {
			dom.Upper = 0
		}
		if dom.Lower > 0 {
			dom.Lower = 0
		}
	}
	return dom, nil
}

// renderYAxis draws the axis of one side for the given datasets and grows
// the chart by its width. A left axis pushes the data area and the title to
// the right. Nothing is drawn for a side without datasets.
func (l *layout) renderYAxis(side chartinfo.Side, ids []int) error {
	var sets []*dataset.Dataset
	for _, id := range ids {
		if ds := l.info.Datasets.ByID(id); ds != nil && !ds.UsedAsXDataset() {
			sets = append(sets, ds)
		}
	}
	if len(sets) == 0 {
		return nil
	}

	c := l.chart
	dom, err := resolveDomain(sets, c.YMin.Get(side), c.YMax.Get(side), l.info.Output == chartinfo.Bar)
	if err != nil {
		return newLayoutError("y axis", side, err)
	}
	size := l.info.DataAreaSize
	yScale := scale.NewLinear(dom.Lower, dom.Upper, size.Height, 0)
	l.el.YScale[side] = yScale

	labelFormat := yScale.TickFormat(10)
	if dom.IsTime {
		labelFormat = tick.TimeOfDay
	}
	var ticks []axisTick
	for _, v := range yScale.Ticks(10) {
		ticks = append(ticks, axisTick{pos: yScale.Map(v), label: labelFormat(v)})
	}

	orient := axisLeft
	if side == chartinfo.Right {
		orient = axisRight
	}
	g := l.el.DataArea.Node.Append("g").SetAttr("id", l.sc.ID(side.String()+"YAxis"))
	labels := drawAxis(g, orient, size.Height, 0, ticks)
	g.SetAttr("class", "tracker-axis")
	axis := newRegion(g)
	if side == chartinfo.Right {
		axis.setOffset(size.Width, 0)
	}
	l.el.YAxis[side] = axis

	color := c.YAxisColor.Get(side)
	if color != "" {
		for _, n := range g.FindAll("path") {
			n.SetStyle("stroke", color)
		}
		for _, n := range g.FindAll("line") {
			n.SetStyle("stroke", color)
		}
	}
	for _, label := range labels {
		label.SetAttr("class", "tracker-tick-label")
		if color != "" {
			label.SetStyle("fill", color)
		}
	}

	// The reserved width uses the plain numeric labels of the domain ends,
	// also for clock time axes.
	endFormat := scale.TickFormat(dom.Lower, dom.Upper, 10)
	maxTickLabelWidth := math.Max(
		l.sc.MeasureText(endFormat(dom.Lower), "tracker-axis-label").Width,
		l.sc.MeasureText(endFormat(dom.Upper), "tracker-axis-label").Width,
	)

	labelText := c.YAxisLabel.Get(side)
	if unit := c.YAxisUnit.Get(side); unit != "" {
		labelText += " (" + unit + ")"
	}
	labelSize := l.sc.MeasureText(labelText, "")
	axisLabel := g.Append("text").
		SetText(labelText).
		SetAttr("transform", "rotate(-90)").
		SetAttr("x", -size.Height/2).
		SetAttr("class", "tracker-axis-label")
	if side == chartinfo.Left {
		axisLabel.SetAttr("y", -tickSize-maxTickLabelWidth-labelSize.Height/2)
	} else {
		axisLabel.SetAttr("y", tickSize+maxTickLabelWidth+labelSize.Height)
	}
	if lc := c.YAxisLabelColor.Get(side); lc != "" {
		axisLabel.SetStyle("fill", lc)
	}

	width := labelSize.Height + maxTickLabelWidth + tickSize
	axis.Width = width
	g.SetAttr("width", width)

	l.expandArea(l.el.SVG, width, 0)
	l.expandArea(l.el.GraphArea, width, 0)
	if side == chartinfo.Left {
		moveArea(l.el.DataArea, width, 0)
		if l.el.Title != nil {
			moveArea(l.el.Title, width, 0)
		}
	}
	l.log.Debug("y axis laid out", logger.Fields{
		"side": side.String(), "lower": dom.Lower, "upper": dom.Upper, "width": width,
	})
	return nil
}
