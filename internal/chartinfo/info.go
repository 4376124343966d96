// info.go

// Package chartinfo describes a fully resolved chart: geometry, output kind,
// per-dataset styling and the datasets themselves.
package chartinfo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/buffos/go-tracker/internal/dataset"
)

// --- Enumerations ---

// OutputType selects the renderer.
type OutputType int

const (
	Line OutputType = iota
	Bar
	Summary
	Month
)

func (o OutputType) String() string {
	switch o {
	case Line:
		return "line"
	case Bar:
		return "bar"
	case Summary:
		return "summary"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("OutputType(%d)", int(o))
	}
}

// ParseOutputType parses "line", "bar", "summary" or "month".
func ParseOutputType(s string) (OutputType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "bar":
		return Bar, nil
	case "summary":
		return Summary, nil
	case "month":
		return Month, nil
	default:
		return -1, fmt.Errorf("unknown output %q", s)
	}
}

// Side is one of the two Y axes.
type Side int

const (
	Left Side = iota
	Right
	// NoSide marks a dataset that is not drawn against any Y axis.
	NoSide Side = -1
)

// Sides lists the Y axes in drawing order.
var Sides = [2]Side{Left, Right}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseSide is case-insensitive. Anything but left or right is NoSide.
func ParseSide(s string) Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left
	case "right":
		return Right
	default:
		return NoSide
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	*s = ParseSide(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PerSide holds one value for each Y axis, indexed by Side.
type PerSide[T any] [2]T

// Get returns the value for side. NoSide yields the zero value.
func (p PerSide[T]) Get(s Side) T {
	var zero T
	if s != Left && s != Right {
		return zero
	}
	return p[s]
}

// Bound is an axis limit that is either configured or derived from the data.
type Bound struct {
	Value    float64
	Assigned bool
}

// Assigned returns a configured bound.
func Assigned(v float64) Bound { return Bound{Value: v, Assigned: true} }

// Derived returns a bound left to the data.
func Derived() Bound { return Bound{} }

func (b Bound) String() string {
	if !b.Assigned {
		return "derived"
	}
	return fmt.Sprintf("%g", b.Value)
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Margin is the space around the graph area.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// LegendPosition places the legend around the data area.
type LegendPosition string

const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// LegendOrientation lays legend entries out in a column or a row.
type LegendOrientation string

const (
	Vertical   LegendOrientation = "vertical"
	Horizontal LegendOrientation = "horizontal"
)

// --- Chart Structs ---

// CommonChartInfo is shared by line and bar charts.
type CommonChartInfo struct {
	Title             string            `json:"title"`
	XAxisLabel        string            `json:"xAxisLabel"`
	XAxisColor        string            `json:"xAxisColor"`
	XAxisLabelColor   string            `json:"xAxisLabelColor"`
	YAxisLabel        PerSide[string]   `json:"yAxisLabel"`
	YAxisColor        PerSide[string]   `json:"yAxisColor"`
	YAxisLabelColor   PerSide[string]   `json:"yAxisLabelColor"`
	YAxisUnit         PerSide[string]   `json:"yAxisUnit"`
	YMin              PerSide[Bound]    `json:"yMin"`
	YMax              PerSide[Bound]    `json:"yMax"`
	YAxisLocation     []Side            `json:"yAxisLocation"`
	AllowInspectData  bool              `json:"allowInspectData"`
	ShowLegend        bool              `json:"showLegend"`
	LegendPosition    LegendPosition    `json:"legendPosition"`
	LegendOrientation LegendOrientation `json:"legendOrientation"`
	LegendBgColor     string            `json:"legendBgColor"`
	LegendBorderColor string            `json:"legendBorderColor"`
}

// LineInfo styles a line chart. Slices are indexed by dataset id.
type LineInfo struct {
	CommonChartInfo
	LineColor        []string  `json:"lineColor"`
	LineWidth        []float64 `json:"lineWidth"`
	ShowLine         []bool    `json:"showLine"`
	ShowPoint        []bool    `json:"showPoint"`
	PointColor       []string  `json:"pointColor"`
	PointBorderColor []string  `json:"pointBorderColor"`
	PointBorderWidth []float64 `json:"pointBorderWidth"`
	PointSize        []float64 `json:"pointSize"`
	FillGap          []bool    `json:"fillGap"`
}

// BarInfo styles a bar chart. Slices are indexed by dataset id.
type BarInfo struct {
	CommonChartInfo
	BarColor []string `json:"barColor"`
}

// RenderInfo is everything a render needs.
type RenderInfo struct {
	Output        OutputType
	DataAreaSize  Size
	Margin        Margin
	TooltipSize   Size
	FitPanelWidth bool
	FixedScale    float64

	// Penalty is substituted for missing values of the dataset with the
	// same id. Nil entries leave the dataset alone.
	Penalty []*float64
	// Accum turns the dataset with the same id into a running total.
	Accum []bool

	Datasets *dataset.Datasets
	Line     *LineInfo
	Bar      *BarInfo
}

// ChartInfo returns the common part of the block matching Output, or nil.
func (ri *RenderInfo) ChartInfo() *CommonChartInfo {
	switch ri.Output {
	case Line:
		if ri.Line != nil {
			return &ri.Line.CommonChartInfo
		}
	case Bar:
		if ri.Bar != nil {
			return &ri.Bar.CommonChartInfo
		}
	}
	return nil
}

// Defaults applied by Normalize.
const (
	DefaultDataAreaWidth  = 460.0
	DefaultDataAreaHeight = 305.0
	DefaultTooltipWidth   = 90.0
	DefaultTooltipHeight  = 45.0
	DefaultLineWidth      = 1.5
	DefaultPointSize      = 3.0
	DefaultPointColor     = "#69b3a2"
)

// DefaultMargin is used when a document sets no margin.
var DefaultMargin = Margin{Top: 10, Right: 30, Bottom: 20, Left: 0}

// --- Defaults and Validation ---

// Normalize fills unset geometry with defaults and sizes every per-dataset
// slice to the dataset count.
func (ri *RenderInfo) Normalize() {
	if ri.DataAreaSize.Width <= 0 {
		ri.DataAreaSize.Width = DefaultDataAreaWidth
	}
	if ri.DataAreaSize.Height <= 0 {
		ri.DataAreaSize.Height = DefaultDataAreaHeight
	}
	if ri.TooltipSize.Width <= 0 {
		ri.TooltipSize.Width = DefaultTooltipWidth
	}
	if ri.TooltipSize.Height <= 0 {
		ri.TooltipSize.Height = DefaultTooltipHeight
	}
	if ri.FixedScale <= 0 {
		ri.FixedScale = 1
	}
	n := 0
	if ri.Datasets != nil {
		n = ri.Datasets.Len()
	}
	ri.Penalty = resize(ri.Penalty, n, nil)
	ri.Accum = resize(ri.Accum, n, false)
	if ri.Line != nil {
		l := ri.Line
		l.normalizeCommon(n)
		l.LineColor = resize(l.LineColor, n, "")
		l.LineWidth = resize(l.LineWidth, n, DefaultLineWidth)
		l.ShowLine = resize(l.ShowLine, n, true)
		l.ShowPoint = resize(l.ShowPoint, n, true)
		l.PointColor = resize(l.PointColor, n, DefaultPointColor)
		l.PointBorderColor = resize(l.PointBorderColor, n, DefaultPointColor)
		l.PointBorderWidth = resize(l.PointBorderWidth, n, 0)
		l.PointSize = resize(l.PointSize, n, DefaultPointSize)
		l.FillGap = resize(l.FillGap, n, false)
	}
	if ri.Bar != nil {
		ri.Bar.normalizeCommon(n)
		ri.Bar.BarColor = resize(ri.Bar.BarColor, n, "")
	}
}

func (c *CommonChartInfo) normalizeCommon(n int) {
	c.YAxisLocation = resize(c.YAxisLocation, n, Left)
	if c.LegendPosition == "" {
		c.LegendPosition = LegendBottom
	}
	if c.LegendOrientation == "" {
		switch c.LegendPosition {
		case LegendLeft, LegendRight:
			c.LegendOrientation = Vertical
		default:
			c.LegendOrientation = Horizontal
		}
	}
}

// resize pads s with def up to n entries and truncates it beyond n. A
// single configured value applies to every dataset.
func resize[T any](s []T, n int, def T) []T {
	out := make([]T, n)
	for i := range out {
		switch {
		case i < len(s):
			out[i] = s[i]
		case len(s) == 1:
			out[i] = s[0]
		default:
			out[i] = def
		}
	}
	return out
}

// Validate reports configuration the renderers cannot work with.
func (ri *RenderInfo) Validate() error {
	if ri.Datasets == nil {
		return fmt.Errorf("render info has no datasets")
	}
	if ri.DataAreaSize.Width <= 0 || ri.DataAreaSize.Height <= 0 {
		return fmt.Errorf("data area size must be positive, got %gx%g", ri.DataAreaSize.Width, ri.DataAreaSize.Height)
	}
	if ri.FixedScale <= 0 {
		return fmt.Errorf("fixed scale must be positive, got %g", ri.FixedScale)
	}
	if c := ri.ChartInfo(); c != nil {
		switch c.LegendPosition {
		case LegendTop, LegendBottom, LegendLeft, LegendRight:
		default:
			return fmt.Errorf("unknown legend position %q", c.LegendPosition)
		}
		switch c.LegendOrientation {
		case Vertical, Horizontal:
		default:
			return fmt.Errorf("unknown legend orientation %q", c.LegendOrientation)
		}
	}
	return nil
}

// --- Bound Encoding ---

// UnmarshalJSON reads null as a derived bound and a number as an assigned one.
func (b *Bound) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = Derived()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("axis bound must be a number or null: %w", err)
	}
	*b = Assigned(v)
	return nil
}

// MarshalJSON writes derived bounds as null.
func (b Bound) MarshalJSON() ([]byte, error) {
	if !b.Assigned {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}
