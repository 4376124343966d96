// hover.go

package scene

import (
	"strconv"
	"time"
)

// Hover describes what happens when the pointer enters and leaves a node:
// the Tooltip node fades in showing Lines, then fades out again. The payload
// is fixed at build time; the surface that displays the chart runs the
// transitions on its own UI thread.
type Hover struct {
	Tooltip *Node
	Lines   []string
	FadeIn  time.Duration
	FadeOut time.Duration

	// Placement inputs: the data area width decides which side of the
	// pointer the tooltip opens on.
	AreaWidth   float64
	TooltipSize Size
}

// OnHover attaches hover behavior to the node. A later call replaces it.
func (n *Node) OnHover(h Hover) {
	hc := h
	hc.Lines = append([]string(nil), h.Lines...)
	n.hover = &hc
}

// HoverBinding returns the hover behavior attached to the node, if any.
func (n *Node) HoverBinding() (Hover, bool) {
	if n.hover == nil {
		return Hover{}, false
	}
	return *n.hover, true
}

// TooltipOffset is where a tooltip is translated to for a pointer at (x, y).
// It opens to the right of the pointer on the left half of the area and on
// the pointer itself on the right half.
func TooltipOffset(x, y, areaWidth float64, tooltip Size) (float64, float64) {
	if x < areaWidth/2 {
		return x + tooltip.Width*1.3, y - tooltip.Height
	}
	return x, y - tooltip.Height
}

// hoverAttrs renders the binding as data attributes read by hoverScript.
func hoverAttrs(h Hover) []string {
	out := []string{
		dataAttr("tooltip", h.Tooltip.ID()),
		dataAttr("fade-in", strconv.FormatInt(h.FadeIn.Milliseconds(), 10)),
		dataAttr("fade-out", strconv.FormatInt(h.FadeOut.Milliseconds(), 10)),
		dataAttr("area-width", FormatNumber(h.AreaWidth)),
		dataAttr("tooltip-width", FormatNumber(h.TooltipSize.Width)),
		dataAttr("tooltip-height", FormatNumber(h.TooltipSize.Height)),
	}
	for i, line := range h.Lines {
		out = append(out, dataAttr("line-"+strconv.Itoa(i), line))
	}
	return out
}

func dataAttr(name, value string) string {
	return "data-" + name + `="` + escapeAttr(value) + `"`
}

// hoverScript mirrors TooltipOffset in the browser.
const hoverScript = `
(function () {
  var svg = document.currentScript ? document.currentScript.ownerSVGElement || document.currentScript.parentNode : document;
  var root = svg && svg.querySelectorAll ? svg : document;
  root.querySelectorAll('[data-tooltip]').forEach(function (dot) {
    var tip = document.getElementById(dot.getAttribute('data-tooltip'));
    if (!tip) { return; }
    var labels = tip.querySelectorAll('text');
    var areaWidth = parseFloat(dot.getAttribute('data-area-width'));
    var w = parseFloat(dot.getAttribute('data-tooltip-width'));
    var h = parseFloat(dot.getAttribute('data-tooltip-height'));
    dot.addEventListener('mouseenter', function (ev) {
      for (var i = 0; i < labels.length; i++) {
        labels[i].textContent = dot.getAttribute('data-line-' + i) || '';
      }
      var pt = dot.ownerSVGElement.createSVGPoint();
      pt.x = ev.clientX; pt.y = ev.clientY;
      pt = pt.matrixTransform(dot.getScreenCTM().inverse());
      var x = pt.x < areaWidth / 2 ? pt.x + w * 1.3 : pt.x;
      tip.setAttribute('transform', 'translate(' + x + ',' + (pt.y - h) + ')');
      tip.style.transition = 'opacity ' + dot.getAttribute('data-fade-in') + 'ms';
      tip.style.opacity = 1;
    });
    dot.addEventListener('mouseleave', function () {
      tip.style.transition = 'opacity ' + dot.getAttribute('data-fade-out') + 'ms';
      tip.style.opacity = 0;
    });
  });
})();
`
