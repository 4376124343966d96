// areas.go

package render

import (
	"math"

	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/scale"
	"github.com/buffos/go-tracker/internal/scene"
)

// Region is a drawn container whose size and offset later stages may still
// grow. Width, Height, X and Y mirror the node's width, height and
// translate attributes.
type Region struct {
	Node   *scene.Node
	Width  float64
	Height float64
	X, Y   float64
}

func newRegion(n *scene.Node) *Region {
	return &Region{Node: n}
}

func (r *Region) setSize(w, h float64) {
	r.Width, r.Height = w, h
	r.Node.SetAttr("width", w).SetAttr("height", h)
}

func (r *Region) setOffset(x, y float64) {
	r.X, r.Y = x, y
	r.Node.SetAttr("transform", scene.Translate(x, y))
}

// expandArea grows a region by addW and addH. With truncate set the current
// size is cut to whole pixels first.
func expandArea(r *Region, addW, addH float64, truncate bool) {
	w, h := r.Width, r.Height
	if truncate {
		w, h = math.Trunc(w), math.Trunc(h)
	}
	r.setSize(w+addW, h+addH)
}

// moveArea shifts a region by (dx, dy) from wherever it currently is.
func moveArea(r *Region, dx, dy float64) {
	r.setOffset(r.X+dx, r.Y+dy)
}

// ChartElements holds the regions and scales of one chart while it is laid
// out. Regions a chart does not draw stay nil.
type ChartElements struct {
	SVG       *Region
	GraphArea *Region
	DataArea  *Region
	Title     *Region
	XAxis     *Region
	YAxis     chartinfo.PerSide[*Region]
	Legend    *Region

	XScale *scale.Time
	YScale chartinfo.PerSide[*scale.Linear]
}

// createAreas appends the svg root with its graph and data areas to the
// canvas, sized to the data area plus margins.
func createAreas(sc *scene.Scene, info *chartinfo.RenderInfo) *ChartElements {
	size, m := info.DataAreaSize, info.Margin

	svg := newRegion(sc.Canvas.Append("svg").SetAttr("id", sc.ID("svg")))
	svg.setSize(size.Width+m.Left+m.Right, size.Height+m.Top+m.Bottom)

	graph := newRegion(svg.Node.Append("g").SetAttr("id", sc.ID("graphArea")))
	graph.setOffset(m.Left, m.Top)
	graph.setSize(size.Width+m.Right, size.Height+m.Bottom)

	data := newRegion(graph.Node.Append("g").SetAttr("id", sc.ID("dataArea")))
	data.setSize(size.Width, size.Height)

	return &ChartElements{SVG: svg, GraphArea: graph, DataArea: data}
}

// height returns the region height, zero for a region that was not drawn.
func (r *Region) height() float64 {
	if r == nil {
		return 0
	}
	return r.Height
}

func (r *Region) width() float64 {
	if r == nil {
		return 0
	}
	return r.Width
}
