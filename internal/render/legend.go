// legend.go

package render

import (
	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/scene"
)

// --- Legend Geometry ---

// legendMetrics is the measured layout of a legend.
type legendMetrics struct {
	Width, Height float64
	XSpacing      float64
	YSpacing      float64
	MarkerWidth   float64
	NameHeight    float64
}

// legendBox sizes a legend from the measured names. Names at the ids in
// skip take no row or column. Spacing is derived from the average character
// width of the widest name.
func legendBox(names []string, sizes []scene.Size, skip map[int]bool, orientation chartinfo.LegendOrientation) legendMetrics {
	widest, maxWidth := -1, 0.0
	numNames := 0
	sumWidth := 0.0
	for i := range names {
		if skip[i] {
			continue
		}
		numNames++
		sumWidth += sizes[i].Width
		if widest < 0 || sizes[i].Width > maxWidth {
			widest, maxWidth = i, sizes[i].Width
		}
	}
	var m legendMetrics
	if widest < 0 {
		return m
	}
	charWidth := 0.0
	if n := len([]rune(names[widest])); n > 0 {
		charWidth = maxWidth / float64(n)
	}
	m.NameHeight = sizes[widest].Height
	m.XSpacing = 2 * charWidth
	m.YSpacing = m.NameHeight
	m.MarkerWidth = 2 * charWidth

	switch orientation {
	case chartinfo.Vertical:
		m.Width = 3*m.XSpacing + m.MarkerWidth + maxWidth
		m.Height = float64(numNames+1) * m.YSpacing
	case chartinfo.Horizontal:
		m.Width = (2*m.XSpacing+m.MarkerWidth)*float64(numNames) + m.XSpacing + sumWidth
		m.Height = m.YSpacing + m.NameHeight
	}
	return m
}

// horizontalOffsets returns the x offset of every entry of a horizontal
// legend from the first entry. The running position walks all names, X
// datasets included: each name moves it by the width of the name at its
// index among plotted datasets, and an index of zero resets it. An entry
// that follows an X dataset is therefore pushed twice.
func horizontalOffsets(sizes []scene.Size, skip map[int]bool, m legendMetrics) []float64 {
	offsets := make([]float64, len(sizes))
	pos, xBefore := 0.0, 0
	for i := range sizes {
		adjusted := i - xBefore
		if adjusted == 0 {
			pos = 0
		} else {
			pos += sizes[adjusted].Width + 2*m.XSpacing + m.MarkerWidth
		}
		offsets[i] = pos
		if skip[i] {
			xBefore++
		}
	}
	return offsets
}

// legendEntry is what a legend shows for one dataset.
type legendEntry struct {
	name      string
	color     string
	marker    string // "line" or "bar"
	showPoint bool
	pointSize float64
	pointFill string
}

// --- Drawing ---

// renderLegend places the legend around the data area, growing the chart
// to make room, and draws a marker and label per plotted dataset.
func (l *layout) renderLegend() {
	c := l.chart
	sets := l.info.Datasets
	names := sets.Names()
	skip := make(map[int]bool)
	for _, id := range sets.XDatasetIDs() {
		skip[id] = true
	}
	sizes := make([]scene.Size, len(names))
	for i, n := range names {
		sizes[i] = l.sc.MeasureText(n, "tracker-legend-label")
	}
	m := legendBox(names, sizes, skip, c.LegendOrientation)
	if m.Width == 0 && m.Height == 0 {
		return
	}

	size := l.info.DataAreaSize
	titleHeight := l.el.Title.height()
	xAxisHeight := l.el.XAxis.height()
	leftWidth := l.el.YAxis[chartinfo.Left].width()
	rightWidth := l.el.YAxis[chartinfo.Right].width()

	var x, y float64
	switch c.LegendPosition {
	case chartinfo.LegendTop:
		x = leftWidth + size.Width/2 - m.Width/2
		y = titleHeight
		l.expandArea(l.el.SVG, 0, m.Height+m.YSpacing)
		moveArea(l.el.DataArea, 0, m.Height+m.YSpacing)
	case chartinfo.LegendBottom:
		x = leftWidth + size.Width/2 - m.Width/2
		y = titleHeight + size.Height + xAxisHeight + m.YSpacing
		l.expandArea(l.el.SVG, 0, m.Height+m.YSpacing)
	case chartinfo.LegendLeft:
		y = titleHeight + size.Height/2 - m.Height/2
		l.expandArea(l.el.SVG, m.Width+m.XSpacing, 0)
		moveArea(l.el.DataArea, m.Width+m.XSpacing, 0)
		if l.el.Title != nil {
			moveArea(l.el.Title, m.Width+m.XSpacing, 0)
		}
	case chartinfo.LegendRight:
		x = size.Width + leftWidth + rightWidth + m.XSpacing
		y = titleHeight + size.Height/2 - m.Height/2
		l.expandArea(l.el.SVG, m.Width+m.XSpacing, 0)
	default:
		return
	}

	g := l.el.GraphArea.Node.Append("g").SetAttr("id", l.sc.ID("legend"))
	legend := newRegion(g)
	legend.setOffset(x, y)
	legend.Width, legend.Height = m.Width, m.Height
	l.el.Legend = legend

	bg := g.Append("rect").
		SetAttr("class", "tracker-legend").
		SetAttr("width", m.Width).
		SetAttr("height", m.Height)
	if c.LegendBgColor != "" {
		bg.SetStyle("fill", c.LegendBgColor)
	}
	if c.LegendBorderColor != "" {
		bg.SetStyle("stroke", c.LegendBorderColor)
	}

	markerX := m.XSpacing
	rowY := m.NameHeight
	labelX := markerX + m.XSpacing + m.MarkerWidth
	horizontal := c.LegendOrientation == chartinfo.Horizontal
	var offsets []float64
	if horizontal {
		offsets = horizontalOffsets(sizes, skip, m)
	}
	adjusted := 0
	for i, name := range names {
		if skip[i] {
			continue
		}
		e := l.legendEntry(i, name)
		mx, lx, ey := markerX, labelX, rowY
		if horizontal {
			mx += offsets[i]
			lx += offsets[i]
		} else {
			ey = rowY + float64(adjusted)*m.YSpacing
		}
		drawLegendMarker(g, e, mx, ey, m)
		label := g.Append("text").
			SetAttr("x", lx).
			SetAttr("y", ey).
			SetText(e.name).
			SetStyle("alignment-baseline", "middle").
			SetAttr("class", "tracker-legend-label")
		if e.color != "" {
			label.SetStyle("fill", e.color)
		}
		adjusted++
	}
	l.log.Debug("legend laid out", logger.Fields{
		"position": string(c.LegendPosition), "width": m.Width, "height": m.Height,
	})
}

func (l *layout) legendEntry(id int, name string) legendEntry {
	e := legendEntry{name: name}
	switch {
	case l.info.Output == chartinfo.Line && l.info.Line != nil:
		li := l.info.Line
		e.marker = "line"
		e.color = li.LineColor[id]
		e.showPoint = li.ShowPoint[id]
		e.pointSize = li.PointSize[id]
		e.pointFill = li.PointColor[id]
	case l.info.Output == chartinfo.Bar && l.info.Bar != nil:
		e.marker = "bar"
		e.color = l.info.Bar.BarColor[id]
	}
	return e
}

// drawLegendMarker draws a line with a point for line charts and a filled
// box for bar charts, starting at x and centered on y.
func drawLegendMarker(g *scene.Node, e legendEntry, x, y float64, m legendMetrics) {
	switch e.marker {
	case "line":
		line := g.Append("line").
			SetAttr("x1", x).
			SetAttr("x2", x+m.MarkerWidth).
			SetAttr("y1", y).
			SetAttr("y2", y)
		if e.color != "" {
			line.SetStyle("stroke", e.color)
		}
		r := 0.0
		if e.showPoint {
			r = e.pointSize
		}
		dot := g.Append("circle").
			SetAttr("cx", x+m.MarkerWidth/2).
			SetAttr("cy", y).
			SetAttr("r", r)
		if e.pointFill != "" {
			dot.SetStyle("fill", e.pointFill)
		}
	case "bar":
		box := g.Append("rect").
			SetAttr("x", x).
			SetAttr("y", y-m.NameHeight/2).
			SetAttr("width", m.MarkerWidth).
			SetAttr("height", m.NameHeight)
		if e.color != "" {
			box.SetStyle("fill", e.color)
		}
	}
}
