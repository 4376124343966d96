// bar.go

package render

import (
	"math"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/dataset"
)

// barGap separates the bar groups of neighboring dates.
const barGap = 1.0

// barSeries draws datasets as side by side bar sets. It counts the bar sets
// drawn so far to place the next one inside each date slot.
type barSeries struct {
	info  *chartinfo.BarInfo
	total int
	curr  int
}

func (s *barSeries) renderSeries(l *layout, ds *dataset.Dataset, side chartinfo.Side) {
	defer func() { s.curr++ }()

	yScale := l.el.YScale.Get(side)
	zero := yScale.Map(0)
	size := l.info.DataAreaSize
	color := s.info.BarColor[ds.ID()]

	for i, p := range ds.ValidPoints() {
		x, w := barGeometry(barSlot{
			center:    l.el.XScale.Map(p.Date),
			areaWidth: size.Width,
			length:    ds.Len(),
			index:     i,
			set:       s.curr,
			sets:      s.total,
		})
		bar := l.el.DataArea.Node.Append("rect").
			SetAttr("x", x).
			SetAttr("y", yScale.Map(math.Max(p.Value, 0))).
			SetAttr("width", w).
			SetAttr("height", math.Abs(yScale.Map(p.Value)-zero)).
			SetAttr("class", "tracker-bar")
		if color != "" {
			bar.SetStyle("fill", color)
		}
	}
}

// barSlot locates one bar: the pixel position of its date, the data area
// width, the dataset length counting missing values, the bar's index among
// the dataset's valid points, and its bar set out of sets.
type barSlot struct {
	center    float64
	areaWidth float64
	length    int
	index     int
	set       int
	sets      int
}

// barGeometry returns the x origin and width of a bar. Each date owns a slot
// of areaWidth/length pixels shared by all bar sets. At the first and last
// point a bar set lying past the plot edge is cut by the fraction outside.
func barGeometry(s barSlot) (x, width float64) {
	setWidth := s.areaWidth / float64(s.length)
	barWidth := setWidth
	if setWidth-barGap > 0 {
		barWidth = setWidth - barGap
	}
	barWidth /= float64(s.sets)

	x = s.center - setWidth/2 + float64(s.set)*barWidth
	width = barWidth

	visible := float64(s.set) + 1 - float64(s.sets)/2
	switch s.index {
	case 0:
		if visible < 1 {
			x += visible * barWidth
		}
		width = partialWidth(visible, barWidth)
	case s.length - 1:
		width = partialWidth(1-visible, barWidth)
	}
	return x, width
}

func partialWidth(portion, barWidth float64) float64 {
	switch {
	case portion < 0:
		return 0
	case portion < 1:
		return barWidth * portion
	default:
		return barWidth
	}
}
