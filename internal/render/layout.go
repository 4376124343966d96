// layout.go

package render

import (
	"github.com/buffos/go-tracker/internal/chartinfo"
	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/scene"
)

// layout is the state of one chart render. It is owned by the stage values
// below and never shared between renders.
type layout struct {
	sc       *scene.Scene
	info     *chartinfo.RenderInfo
	chart    *chartinfo.CommonChartInfo
	el       *ChartElements
	truncate bool
	log      *logger.Logger

	// dataset ids per Y axis, X datasets excluded
	sides chartinfo.PerSide[[]int]
}

func (l *layout) expandArea(r *Region, addW, addH float64) {
	expandArea(r, addW, addH, l.truncate)
}

// Each region can only be laid out once the regions it depends on have
// their final size. The stage types below allow exactly one order:
//
//	newLayout → AddTitle → AddXAxis → AddLeftYAxis → AddSeries →
//	AddRightYAxis → AddSeries → [AddLegend] → Finish

type titleStage struct{ l *layout }
type xAxisStage struct{ l *layout }
type leftAxisStage struct{ l *layout }
type leftSeriesStage struct{ l *layout }
type rightAxisStage struct{ l *layout }
type rightSeriesStage struct{ l *layout }
type legendStage struct{ l *layout }
type finalStage struct{ l *layout }

// newLayout creates the svg, graph and data areas on the scene canvas and
// splits the datasets between the two Y axes.
func newLayout(sc *scene.Scene, info *chartinfo.RenderInfo, chart *chartinfo.CommonChartInfo, o *options) titleStage {
	l := &layout{
		sc:       sc,
		info:     info,
		chart:    chart,
		truncate: o.truncateExpand,
		log:      o.log,
	}
	l.el = createAreas(sc, info)
	for id, side := range chart.YAxisLocation {
		if info.Datasets.IsXDataset(id) || info.Datasets.ByID(id) == nil {
			continue
		}
		if side == chartinfo.Left || side == chartinfo.Right {
			l.sides[side] = append(l.sides[side], id)
		}
	}
	return titleStage{l}
}

func (s titleStage) AddTitle() xAxisStage {
	s.l.renderTitle()
	return xAxisStage{s.l}
}

func (s xAxisStage) AddXAxis() (leftAxisStage, error) {
	if err := s.l.renderXAxis(); err != nil {
		return leftAxisStage{}, err
	}
	return leftAxisStage{s.l}, nil
}

func (s leftAxisStage) AddLeftYAxis() (leftSeriesStage, error) {
	if err := s.l.renderYAxis(chartinfo.Left, s.l.sides[chartinfo.Left]); err != nil {
		return leftSeriesStage{}, err
	}
	return leftSeriesStage{s.l}, nil
}

func (s leftSeriesStage) AddSeries(r seriesRenderer) rightAxisStage {
	s.l.renderSide(chartinfo.Left, r)
	return rightAxisStage{s.l}
}

func (s rightAxisStage) AddRightYAxis() (rightSeriesStage, error) {
	if err := s.l.renderYAxis(chartinfo.Right, s.l.sides[chartinfo.Right]); err != nil {
		return rightSeriesStage{}, err
	}
	return rightSeriesStage{s.l}, nil
}

func (s rightSeriesStage) AddSeries(r seriesRenderer) legendStage {
	s.l.renderSide(chartinfo.Right, r)
	return legendStage{s.l}
}

func (s legendStage) AddLegend() finalStage {
	s.l.renderLegend()
	return finalStage{s.l}
}

// Finish applies the output scaling and returns the laid out regions.
func (s legendStage) Finish() *ChartElements {
	return finalStage(s).Finish()
}

func (s finalStage) Finish() *ChartElements {
	s.l.setChartScale()
	return s.l.el
}

// renderSide draws every dataset of side, once its axis exists.
func (l *layout) renderSide(side chartinfo.Side, r seriesRenderer) {
	if l.el.YAxis[side] == nil || l.el.YScale[side] == nil {
		return
	}
	for _, id := range l.sides[side] {
		ds := l.info.Datasets.ByID(id)
		if ds == nil || ds.UsedAsXDataset() {
			continue
		}
		r.renderSeries(l, ds, side)
	}
}
