// scene.go

package scene

import (
	"strings"

	"github.com/google/uuid"
)

// Size is a measured or configured width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Scene is the drawing surface handed to a chart render. Canvas is the host
// element (rendered as a div in HTML output) that the chart attaches to.
type Scene struct {
	Canvas   *Node
	Measurer Measurer
	scope    string
}

// Option configures a Scene.
type Option func(*Scene)

// WithScope fixes the element id scope. Useful for reproducible output.
func WithScope(scope string) Option {
	return func(s *Scene) { s.scope = scope }
}

// WithMeasurer sets the text measurer.
func WithMeasurer(m Measurer) Option {
	return func(s *Scene) { s.Measurer = m }
}

// New creates a scene with an empty canvas. Without options the scope is a
// random identifier and text is measured with the estimate heuristic.
func New(opts ...Option) *Scene {
	s := &Scene{Canvas: NewNode("div")}
	for _, opt := range opts {
		opt(s)
	}
	if s.scope == "" {
		s.scope = strings.SplitN(uuid.NewString(), "-", 2)[0]
	}
	if s.Measurer == nil {
		s.Measurer = NewEstimateMeasurer(nil)
	}
	return s
}

// Scope returns the id scope used by this scene.
func (s *Scene) Scope() string {
	return s.scope
}

// ID returns an element identifier unique to this scene.
func (s *Scene) ID(name string) string {
	return "tracker-" + s.scope + "-" + name
}

// FontSizes returns the class font sizes text on this scene is measured
// with. Serialize with WithFontSizes(s.FontSizes()) so drawn text matches.
func (s *Scene) FontSizes() map[string]float64 {
	return FontSizesOf(s.Measurer)
}

// MeasureText measures text rendered with the given style class.
func (s *Scene) MeasureText(text, class string) Size {
	return s.Measurer.MeasureText(text, class)
}
