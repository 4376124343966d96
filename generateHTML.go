// generateHTML.go
package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/buffos/go-tracker/internal/scene"
)

// generateHTML wraps the drawn canvas in a standalone page. The chart's own
// stylesheet travels inside the svg, the page only centers the canvas.
func generateHTML(sc *scene.Scene, title string) (string, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	b.WriteString("<style>\n")
	b.WriteString("body { margin: 0; padding: 40px; font-family: sans-serif; background-color: #f8f8f8; }\n")
	b.WriteString(".tracker-canvas { margin: 0 auto; }\n")
	b.WriteString(".tracker-canvas svg { width: 100%; height: 100%; background-color: #ffffff; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	sc.Canvas.SetAttr("class", "tracker-canvas")
	if err := scene.WriteHTML(&b, sc.Canvas, scene.WithFontSizes(sc.FontSizes())); err != nil {
		return "", fmt.Errorf("writing canvas: %w", err)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
