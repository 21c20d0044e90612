package viz

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mstolbov/attractor/internal/chaos"
)

// Bounds returns per-axis limits of a trajectory with a 10% margin on each
// side, the way the animation frame is sized.
func Bounds(tr chaos.Trajectory) (min, max [3]float64) {
	if len(tr) == 0 {
		return min, max
	}
	for i := 0; i < 3; i++ {
		col := tr.Column(i)
		lo, hi := floats.Min(col), floats.Max(col)
		margin := (hi - lo) * 0.1
		if margin == 0 {
			margin = 1
		}
		min[i] = lo - margin
		max[i] = hi + margin
	}
	return min, max
}

// Normalize maps trajectory rows into a cube of roughly [-1, 1] per axis so
// the camera projection is independent of the attractor's natural scale.
func Normalize(tr chaos.Trajectory) []Vec3 {
	min, max := Bounds(tr)
	var center, half [3]float64
	for i := 0; i < 3; i++ {
		center[i] = (min[i] + max[i]) / 2
		half[i] = (max[i] - min[i]) / 2
		if half[i] == 0 {
			half[i] = 1
		}
	}

	out := make([]Vec3, 0, len(tr))
	for _, row := range tr {
		if !row.IsValid() {
			continue
		}
		out = append(out, Vec3{
			X: (row[0] - center[0]) / half[0],
			Y: (row[1] - center[1]) / half[1],
			Z: (row[2] - center[2]) / half[2],
		})
	}
	return out
}
