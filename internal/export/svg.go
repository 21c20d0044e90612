// Package export renders 2D projections of trajectories to image files.
package export

import (
	"fmt"
	"strings"

	"github.com/mstolbov/attractor/internal/chaos"
)

// ProjectionToSVG renders a projection as a single stroked path on a dark
// background. Bounds come from the data with a 10% margin per side.
func ProjectionToSVG(proj *chaos.Projection, width, height int, strokeColor string) string {
	if proj == nil || len(proj.Points) < 2 {
		return ""
	}

	minX, maxX := proj.Points[0][0], proj.Points[0][0]
	minY, maxY := proj.Points[0][1], proj.Points[0][1]
	for _, p := range proj.Points {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="0.6" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range proj.Points {
		x := (p[0] - minX) / rangeX * float64(width)
		y := float64(height) - (p[1]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
