// measure.go

package scene

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Measurer reports the pixel extent of a string drawn with a style class.
type Measurer interface {
	MeasureText(text, class string) Size
}

// DefaultFontSizes maps the chart's style classes to font sizes in pixels.
// The empty class is the fallback for unstyled text.
var DefaultFontSizes = map[string]float64{
	"":                      14,
	"tracker-title":         20,
	"tracker-axis-label":    14,
	"tracker-tick-label":    12,
	"tracker-legend-label":  14,
	"tracker-tooltip-label": 12,
}

// lineHeight converts a font size into the height of a text bounding box.
const lineHeight = 1.2

func fontSizeFor(sizes map[string]float64, class string) float64 {
	if sz, ok := sizes[class]; ok {
		return sz
	}
	if sz, ok := sizes[""]; ok {
		return sz
	}
	return DefaultFontSizes[""]
}

// FontSizesOf returns the class font sizes m measures with. Measurers of
// other types report DefaultFontSizes.
func FontSizesOf(m Measurer) map[string]float64 {
	switch m := m.(type) {
	case *EstimateMeasurer:
		if m.FontSizes != nil {
			return m.FontSizes
		}
	case *FontMeasurer:
		if m.FontSizes != nil {
			return m.FontSizes
		}
	}
	return DefaultFontSizes
}

// EstimateMeasurer approximates text extents from the font size alone.
// It is deterministic and needs no font files.
type EstimateMeasurer struct {
	FontSizes map[string]float64
}

// NewEstimateMeasurer returns an estimate measurer. A nil map uses DefaultFontSizes.
func NewEstimateMeasurer(sizes map[string]float64) *EstimateMeasurer {
	if sizes == nil {
		sizes = DefaultFontSizes
	}
	return &EstimateMeasurer{FontSizes: sizes}
}

// MeasureText uses an average glyph width of 0.6 em. Empty text has no extent.
func (m *EstimateMeasurer) MeasureText(text, class string) Size {
	if text == "" {
		return Size{}
	}
	size := fontSizeFor(m.FontSizes, class)
	return Size{
		Width:  float64(len([]rune(text))) * size * 0.6,
		Height: size * lineHeight,
	}
}

type measureKey struct {
	text  string
	class string
}

// FontMeasurer measures text with real glyph metrics from a TrueType font.
// It is safe for concurrent use.
type FontMeasurer struct {
	FontSizes map[string]float64

	mu       sync.Mutex
	renderer chart.Renderer
	cache    map[measureKey]Size
}

// NewFontMeasurer loads the go-chart default font. A nil map uses DefaultFontSizes.
func NewFontMeasurer(sizes map[string]float64) (*FontMeasurer, error) {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("loading default font: %w", err)
	}
	return NewFontMeasurerWithFont(font, sizes)
}

// NewFontMeasurerWithFont measures with the given font.
func NewFontMeasurerWithFont(font *truetype.Font, sizes map[string]float64) (*FontMeasurer, error) {
	if sizes == nil {
		sizes = DefaultFontSizes
	}
	r, err := chart.SVG(1, 1)
	if err != nil {
		return nil, fmt.Errorf("creating measuring renderer: %w", err)
	}
	// 72 dpi makes one point one pixel, so font sizes can be given in pixels.
	r.SetDPI(72)
	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	return &FontMeasurer{
		FontSizes: sizes,
		renderer:  r,
		cache:     make(map[measureKey]Size),
	}, nil
}

// MeasureText returns the advance width of text and a line-height based box height.
func (m *FontMeasurer) MeasureText(text, class string) Size {
	if text == "" {
		return Size{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := measureKey{text: text, class: class}
	if sz, ok := m.cache[key]; ok {
		return sz
	}
	fontSize := fontSizeFor(m.FontSizes, class)
	m.renderer.SetFontSize(fontSize)
	box := m.renderer.MeasureText(text)
	sz := Size{
		Width:  float64(box.Width()),
		Height: math.Max(float64(box.Height()), fontSize) * lineHeight,
	}
	m.cache[key] = sz
	return sz
}
