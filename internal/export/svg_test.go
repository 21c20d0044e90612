package export

import (
	"strings"
	"testing"

	"github.com/mstolbov/attractor/internal/chaos"
)

func TestProjectionToSVG(t *testing.T) {
	proj := &chaos.Projection{
		Points: [][2]float64{{0, 0}, {1, 2}, {2, 1}, {3, 3}},
		XLabel: "X",
		YLabel: "Y",
	}

	svg := ProjectionToSVG(proj, 400, 300, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, `width="400" height="300"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	// One path: a moveto plus a lineto per remaining point.
	if got := strings.Count(svg, "<path"); got != 1 {
		t.Errorf("expected 1 path, got %d", got)
	}
	if got := strings.Count(svg, " L"); got != len(proj.Points)-1 {
		t.Errorf("expected %d line segments, got %d", len(proj.Points)-1, got)
	}
}

func TestProjectionToSVG_Degenerate(t *testing.T) {
	if svg := ProjectionToSVG(nil, 100, 100, "#fff"); svg != "" {
		t.Error("nil projection should render nothing")
	}

	single := &chaos.Projection{Points: [][2]float64{{1, 1}}}
	if svg := ProjectionToSVG(single, 100, 100, "#fff"); svg != "" {
		t.Error("single point should render nothing")
	}
}

func TestProjectionToSVG_FlatLine(t *testing.T) {
	// Zero vertical range must not divide by zero.
	proj := &chaos.Projection{
		Points: [][2]float64{{0, 5}, {1, 5}, {2, 5}},
	}

	svg := ProjectionToSVG(proj, 100, 100, "#fff")
	if !strings.Contains(svg, "<path") {
		t.Error("flat data should still render a path")
	}
	if strings.Contains(svg, "NaN") {
		t.Error("flat data produced NaN coordinates")
	}
}
