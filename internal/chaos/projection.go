package chaos

import (
	"fmt"
	"strings"
)

var axisLabels = [3]string{"X", "Y", "Z"}

// Projection is a 2D slice of a trajectory: two coordinate columns in
// original row order, plus the axis labels of the retained coordinates.
type Projection struct {
	Points [][2]float64
	XLabel string
	YLabel string
}

// Project extracts the plane selected by name: xoy keeps columns 0 and 1,
// xoz columns 0 and 2, yoz columns 1 and 2. The selector is matched
// case-insensitively. Rows are never reordered or resampled.
func Project(tr Trajectory, plane string) (*Projection, error) {
	if tr == nil {
		return nil, ErrNoTrajectory
	}

	var xi, yi int
	switch strings.ToLower(plane) {
	case "xoy":
		xi, yi = 0, 1
	case "xoz":
		xi, yi = 0, 2
	case "yoz":
		xi, yi = 1, 2
	default:
		return nil, fmt.Errorf("%w: unknown projection %q (want xoy, xoz or yoz)",
			ErrState, plane)
	}

	points := make([][2]float64, len(tr))
	for i, row := range tr {
		points[i] = [2]float64{row[xi], row[yi]}
	}

	return &Projection{
		Points: points,
		XLabel: axisLabels[xi],
		YLabel: axisLabels[yi],
	}, nil
}
