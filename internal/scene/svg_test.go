// svg_test.go

package scene

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func testChart() (*Scene, *Node) {
	sc := New(WithScope("t"))
	svg := sc.Canvas.Append("svg").SetAttr("id", sc.ID("svg")).SetAttr("viewBox", "0 0 100 50")
	g := svg.Append("g").SetAttr("id", sc.ID("dataArea"))
	g.Append("path").SetAttr("d", "M0,0L10,10").SetAttr("class", "tracker-line")
	g.Append("text").SetAttr("x", 1).SetAttr("y", 2).SetText("a < b")
	return sc, svg
}

func TestWriteSVG(t *testing.T) {
	_, svg := testChart()
	var buf bytes.Buffer
	if err := WriteSVG(&buf, svg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`viewBox="0 0 100 50"`,
		`id="tracker-t-dataArea"`,
		`d="M0,0L10,10"`,
		`class="tracker-line"`,
		`.tracker-line`,
		`a &lt; b`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<script") {
		t.Error("script emitted without hover bindings")
	}
}

func TestWriteSVGHover(t *testing.T) {
	_, svg := testChart()
	tip := svg.Append("g").SetAttr("id", "tip").SetStyle("opacity", 0)
	svg.Children[0].Append("circle").SetAttr("r", 3).OnHover(Hover{
		Tooltip:     tip,
		Lines:       []string{"date:21-01-02", "value:3"},
		FadeIn:      200 * time.Millisecond,
		FadeOut:     500 * time.Millisecond,
		AreaWidth:   460,
		TooltipSize: Size{Width: 90, Height: 45},
	})

	var buf bytes.Buffer
	if err := WriteSVG(&buf, svg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`data-tooltip="tip"`,
		`data-fade-in="200"`,
		`data-fade-out="500"`,
		`data-line-0="date:21-01-02"`,
		`data-area-width="460"`,
		`<script`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestWriteSVGNeedsSVGRoot(t *testing.T) {
	if err := WriteSVG(&bytes.Buffer{}, NewNode("g")); err == nil {
		t.Error("expected an error for a non-svg root")
	}
}

func TestStyleSheetFontSizes(t *testing.T) {
	if StyleSheet(DefaultFontSizes) != DefaultStyleSheet {
		t.Error("default sizes should give the default stylesheet")
	}
	for _, want := range []string{
		".tracker-title { font-size: 20px; text-anchor: middle; dominant-baseline: middle; }",
		".tracker-tick-label { font-size: 12px; fill: currentColor; }",
		".tracker-legend-label { font-size: 14px; }",
		".tracker-dot { fill: #69b3a2; }",
	} {
		if !strings.Contains(DefaultStyleSheet, want) {
			t.Errorf("default stylesheet is missing %q", want)
		}
	}

	// Classes missing from the map fall back to the unstyled size.
	custom := StyleSheet(map[string]float64{"": 10, "tracker-title": 30})
	for _, want := range []string{
		".tracker-title { font-size: 30px;",
		".tracker-tick-label { font-size: 10px;",
		".tracker-tooltip-label { font-size: 10px; }",
	} {
		if !strings.Contains(custom, want) {
			t.Errorf("custom stylesheet is missing %q:\n%s", want, custom)
		}
	}
}

func TestWriteSVGFontSizes(t *testing.T) {
	sizes := map[string]float64{"": 16, "tracker-title": 28}
	sc := New(WithMeasurer(NewEstimateMeasurer(sizes)))
	svg := sc.Canvas.Append("svg")

	var buf bytes.Buffer
	if err := WriteSVG(&buf, svg, WithFontSizes(sc.FontSizes())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, ".tracker-title { font-size: 28px;") || !strings.Contains(out, ".tracker-legend-label { font-size: 16px; }") {
		t.Errorf("stylesheet does not follow the measured sizes:\n%s", out)
	}
	if strings.Contains(out, "font-size: 20px") {
		t.Error("default title size leaked into the output")
	}

	buf.Reset()
	if err := WriteSVG(&buf, svg); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), ".tracker-title { font-size: 20px;") {
		t.Error("no options should write the default sizes")
	}
}

func TestSceneFontSizes(t *testing.T) {
	if got := New().FontSizes(); got["tracker-title"] != 20 {
		t.Errorf("default scene title size = %v", got["tracker-title"])
	}
	m, err := NewFontMeasurer(map[string]float64{"": 9})
	if err != nil {
		t.Skipf("no default font: %v", err)
	}
	if got := New(WithMeasurer(m)).FontSizes(); got[""] != 9 {
		t.Errorf("font measurer sizes = %v", got)
	}
}

func TestWriteDiagnosticSVG(t *testing.T) {
	tests := []struct {
		name          string
		opts          []WriteOption
		width, height string
		font          string
	}{
		// 3 runes at 14px: 3*8.4 plus 10px padding each side.
		{"default sizes", nil, `width="45.20"`, `height="40.00"`, `font-size="14px"`},
		// A 24px line box plus padding outgrows the 40px minimum.
		{"configured sizes", []WriteOption{WithFontSizes(map[string]float64{"": 20})}, `width="56.00"`, `height="44.00"`, `font-size="20px"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteDiagnosticSVG(&buf, "a<b", tt.opts...); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			for _, want := range []string{tt.width, tt.height, tt.font, `fill="red"`, "a&lt;b"} {
				if !strings.Contains(out, want) {
					t.Errorf("diagnostic is missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestWriteHTML(t *testing.T) {
	sc, _ := testChart()
	sc.Canvas.SetStyle("width", "120px")

	var buf bytes.Buffer
	if err := WriteHTML(&buf, sc.Canvas); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<div style="width: 120px">`) {
		t.Errorf("unexpected prefix: %.40q", out)
	}
	if strings.Contains(out, "<?xml") {
		t.Error("inline svg should not carry an XML declaration")
	}
	if !strings.Contains(out, `id="tracker-t-svg"`) || !strings.HasSuffix(out, "</div>\n") {
		t.Errorf("svg not nested in the canvas:\n%s", out)
	}
}

func TestWriteHTMLDiagnostic(t *testing.T) {
	sc := New(WithScope("t"))
	sc.Canvas.Append("div").SetText("Unknown <output>").SetStyle("color", "red")

	var buf bytes.Buffer
	if err := WriteHTML(&buf, sc.Canvas); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<div style="color: red">Unknown &lt;output&gt;</div>`) {
		t.Errorf("got %s", buf.String())
	}
}

func TestEstimateMeasurer(t *testing.T) {
	m := NewEstimateMeasurer(nil)
	if got := m.MeasureText("", "tracker-title"); got != (Size{}) {
		t.Errorf("empty text = %+v", got)
	}
	got := m.MeasureText("abcde", "tracker-title")
	if got.Width != 5*20*0.6 || got.Height != 20*lineHeight {
		t.Errorf("MeasureText = %+v", got)
	}
	// Unknown classes fall back to the unstyled size.
	if a, b := m.MeasureText("x", "nope"), m.MeasureText("x", ""); a != b {
		t.Errorf("fallback %+v != %+v", a, b)
	}
	custom := NewEstimateMeasurer(map[string]float64{"": 10})
	if got := custom.MeasureText("ab", "tracker-title"); got.Width != 12 {
		t.Errorf("custom sizes width = %v", got.Width)
	}
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(nil)
	if err != nil {
		t.Skipf("no default font: %v", err)
	}
	short := m.MeasureText("ab", "")
	long := m.MeasureText("abcdef", "")
	if short.Width <= 0 || long.Width <= short.Width {
		t.Errorf("widths %v and %v should grow with the text", short.Width, long.Width)
	}
	if big := m.MeasureText("ab", "tracker-title"); big.Height <= short.Height {
		t.Errorf("title height %v should exceed %v", big.Height, short.Height)
	}
	if m.MeasureText("", "") != (Size{}) {
		t.Error("empty text should have no extent")
	}
}
