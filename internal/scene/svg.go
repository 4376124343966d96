// svg.go

package scene

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// --- Stylesheet ---

// styleRules are the rules of the embedded stylesheet. Rules marked sized
// get a font-size taken from the class font sizes.
var styleRules = []struct {
	selector string
	decl     string
	sized    bool
}{
	{".tracker-axis", "font-family: sans-serif;", false},
	{".tracker-axis path, .tracker-axis line", "fill: none; stroke: currentColor;", false},
	{".tracker-axis-label", "fill: currentColor; text-anchor: middle;", true},
	{".tracker-tick-label", "fill: currentColor;", true},
	{".tracker-line", "fill: none; stroke: #69b3a2; stroke-width: 1.5px;", false},
	{".tracker-dot", "fill: #69b3a2;", false},
	{".tracker-bar", "fill: #69b3a2;", false},
	{".tracker-title", "text-anchor: middle; dominant-baseline: middle;", true},
	{".tracker-legend", "fill: #ffffff; stroke: #cccccc;", false},
	{".tracker-legend-label", "", true},
	{".tracker-tooltip", "fill: #ffffff; stroke: #999999;", false},
	{".tracker-tooltip-label", "", true},
}

// StyleSheet returns the stylesheet embedded in every serialized SVG, with
// text classes sized from sizes. Sizes must match the ones the chart was
// measured with or labels overflow the space reserved for them.
func StyleSheet(sizes map[string]float64) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, r := range styleRules {
		var decls []string
		if r.sized {
			class := strings.TrimPrefix(r.selector, ".")
			decls = append(decls, "font-size: "+FormatNumber(fontSizeFor(sizes, class))+"px;")
		}
		if r.decl != "" {
			decls = append(decls, r.decl)
		}
		fmt.Fprintf(&b, "%s { %s }\n", r.selector, strings.Join(decls, " "))
	}
	return b.String()
}

// DefaultStyleSheet is the stylesheet for DefaultFontSizes.
var DefaultStyleSheet = StyleSheet(DefaultFontSizes)

// --- Serialization ---

// WriteOption configures serialization.
type WriteOption func(*writeOptions)

type writeOptions struct {
	fontSizes map[string]float64
}

// WithFontSizes sizes text classes in the output. Pass the sizes of the
// measurer the chart was laid out with, see Scene.FontSizes.
func WithFontSizes(sizes map[string]float64) WriteOption {
	return func(o *writeOptions) {
		if sizes != nil {
			o.fontSizes = sizes
		}
	}
}

func newWriteOptions(opts []WriteOption) writeOptions {
	o := writeOptions{fontSizes: DefaultFontSizes}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteSVG serializes an svg node and its subtree as a standalone document.
func WriteSVG(w io.Writer, root *Node, opts ...WriteOption) error {
	if root == nil || root.Tag != "svg" {
		return fmt.Errorf("scene: WriteSVG needs an svg root node")
	}
	o := newWriteOptions(opts)
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	canvas.Startraw(attrStrings(root, nil)...)
	canvas.Style("text/css", StyleSheet(o.fontSizes))
	hasHover := false
	for _, c := range root.Children {
		if writeNode(canvas, c) {
			hasHover = true
		}
	}
	if hasHover {
		canvas.Script("application/javascript", hoverScript)
	}
	canvas.End()
	return bw.Flush()
}

// WriteDiagnosticSVG writes a small SVG document showing msg in red, sized
// to fit the message at the unstyled font size.
func WriteDiagnosticSVG(w io.Writer, msg string, opts ...WriteOption) error {
	const pad = 10
	o := newWriteOptions(opts)
	text := NewEstimateMeasurer(o.fontSizes).MeasureText(msg, "")
	width := text.Width + 2*pad
	height := math.Max(40, text.Height+2*pad)

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, `fill="#ffffff"`)
	canvas.Text(pad, height-15, msg, `fill="red"`, `font-family="sans-serif"`,
		`font-size="`+FormatNumber(fontSizeFor(o.fontSizes, ""))+`px"`)
	canvas.End()
	return bw.Flush()
}

// writeNode writes one node and its children. It reports whether any node in
// the subtree carries a hover binding.
func writeNode(canvas *svg.SVG, n *Node) bool {
	hasHover := n.hover != nil
	switch n.Tag {
	case "g":
		canvas.Group(attrStrings(n, nil)...)
		for _, c := range n.Children {
			if writeNode(canvas, c) {
				hasHover = true
			}
		}
		canvas.Gend()
		return hasHover
	case "path":
		d, _ := n.Attr("d")
		canvas.Path(d, attrStrings(n, skip("d"))...)
	case "circle":
		canvas.Circle(n.AttrFloat("cx"), n.AttrFloat("cy"), n.AttrFloat("r"), attrStrings(n, skip("cx", "cy", "r"))...)
	case "rect":
		canvas.Rect(n.AttrFloat("x"), n.AttrFloat("y"), n.AttrFloat("width"), n.AttrFloat("height"),
			attrStrings(n, skip("x", "y", "width", "height"))...)
	case "line":
		canvas.Line(n.AttrFloat("x1"), n.AttrFloat("y1"), n.AttrFloat("x2"), n.AttrFloat("y2"),
			attrStrings(n, skip("x1", "y1", "x2", "y2"))...)
	case "text":
		canvas.Text(n.AttrFloat("x"), n.AttrFloat("y"), n.Text, attrStrings(n, skip("x", "y"))...)
	default:
		fmt.Fprintf(canvas.Writer, "<%s", n.Tag)
		for _, a := range attrStrings(n, nil) {
			fmt.Fprintf(canvas.Writer, " %s", a)
		}
		fmt.Fprint(canvas.Writer, ">")
		if n.Text != "" {
			fmt.Fprint(canvas.Writer, html.EscapeString(n.Text))
		}
		for _, c := range n.Children {
			if writeNode(canvas, c) {
				hasHover = true
			}
		}
		fmt.Fprintf(canvas.Writer, "</%s>\n", n.Tag)
	}
	return hasHover
}

func skip(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// attrStrings renders attributes as name="value" strings, the form svgo
// appends verbatim to an element.
func attrStrings(n *Node, skipped map[string]bool) []string {
	out := make([]string, 0, len(n.attrs)+1)
	for _, a := range n.attrs {
		if skipped[a.name] {
			continue
		}
		out = append(out, a.name+`="`+escapeAttr(a.value)+`"`)
	}
	if len(n.style) > 0 {
		out = append(out, `style="`+escapeAttr(n.StyleString())+`"`)
	}
	if n.hover != nil && n.hover.Tooltip != nil {
		out = append(out, hoverAttrs(*n.hover)...)
	}
	return out
}

func escapeAttr(s string) string {
	return html.EscapeString(s)
}
