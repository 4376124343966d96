// title.go

package render

import "github.com/buffos/go-tracker/internal/scene"

// renderTitle centers the title above the data area and pushes the data
// area down by its height.
func (l *layout) renderTitle() {
	text := l.chart.Title
	if text == "" {
		return
	}
	size := l.sc.MeasureText(text, "tracker-title")

	n := l.el.GraphArea.Node.Append("text").
		SetText(text).
		SetAttr("id", l.sc.ID("title"))
	title := newRegion(n)
	title.setOffset(l.info.DataAreaSize.Width/2, size.Height/2)
	title.Height = size.Height
	n.SetAttr("height", size.Height).SetAttr("class", "tracker-title")
	l.el.Title = title

	l.expandArea(l.el.SVG, 0, size.Height)
	l.expandArea(l.el.GraphArea, 0, size.Height)
	moveArea(l.el.DataArea, 0, size.Height)
}

// setChartScale replaces the fixed svg size with a viewBox and sizes the
// canvas: the full panel width, or the natural size times the fixed scale.
func (l *layout) setChartScale() {
	svg := l.el.SVG
	w, h := svg.Width, svg.Height
	svg.Node.RemoveAttr("width").RemoveAttr("height").
		SetAttr("viewBox", "0 0 "+scene.FormatNumber(w)+" "+scene.FormatNumber(h)).
		SetAttr("preserveAspectRatio", "xMidYMid meet")

	canvas := l.sc.Canvas
	if l.info.FitPanelWidth {
		canvas.SetStyle("width", "100%")
		return
	}
	canvas.SetStyle("width", scene.FormatNumber(w*l.info.FixedScale)+"px")
	canvas.SetStyle("height", scene.FormatNumber(h*l.info.FixedScale)+"px")
}
