// axis.go

package render

import (
	"github.com/buffos/go-tracker/internal/scene"
)

type axisOrient int

const (
	axisBottom axisOrient = iota
	axisLeft
	axisRight
)

// axis geometry in pixels
const (
	tickSize    = 6.0
	tickPadding = 3.0
	// Crisp one pixel lines on a standard density display.
	axisOffset = 0.5
)

type axisTick struct {
	pos   float64
	label string
}

// drawAxis draws a domain line with one tick mark and label per tick into g,
// the way a browser chart axis lays them out. It returns the tick label nodes.
func drawAxis(g *scene.Node, orient axisOrient, r0, r1 float64, ticks []axisTick) []*scene.Node {
	anchor := "middle"
	switch orient {
	case axisLeft:
		anchor = "end"
	case axisRight:
		anchor = "start"
	}
	g.SetAttr("fill", "none").
		SetAttr("font-size", 10).
		SetAttr("font-family", "sans-serif").
		SetAttr("text-anchor", anchor)

	k := 1.0
	if orient == axisLeft {
		k = -1
	}
	outer := scene.FormatNumber(k * tickSize)
	a, b := scene.FormatNumber(r0+axisOffset), scene.FormatNumber(r1+axisOffset)
	var d string
	if orient == axisBottom {
		d = "M" + a + "," + outer + "V" + scene.FormatNumber(axisOffset) + "H" + b + "V" + outer
	} else {
		d = "M" + outer + "," + a + "H" + scene.FormatNumber(axisOffset) + "V" + b + "H" + outer
	}
	g.Append("path").
		SetAttr("class", "domain").
		SetAttr("stroke", "currentColor").
		SetAttr("d", d)

	labels := make([]*scene.Node, 0, len(ticks))
	for _, t := range ticks {
		tg := g.Append("g").SetAttr("class", "tick").SetAttr("opacity", 1)
		line := tg.Append("line").SetAttr("stroke", "currentColor")
		text := tg.Append("text").SetAttr("fill", "currentColor")
		if orient == axisBottom {
			tg.SetAttr("transform", scene.Translate(t.pos+axisOffset, 0))
			line.SetAttr("y2", tickSize)
			text.SetAttr("y", tickSize+tickPadding).SetAttr("dy", "0.71em")
		} else {
			tg.SetAttr("transform", scene.Translate(0, t.pos+axisOffset))
			line.SetAttr("x2", k*tickSize)
			text.SetAttr("x", k*(tickSize+tickPadding)).SetAttr("dy", "0.32em")
		}
		text.SetText(t.label)
		labels = append(labels, text)
	}
	return labels
}
