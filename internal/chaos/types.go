package chaos

import "math"

// State is a point in phase space. Value semantics keep trajectory rows
// immutable once stored.
type State [3]float64

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	return math.Sqrt(s[0]*s[0] + s[1]*s[1] + s[2]*s[2])
}

func (s State) Sub(other State) State {
	return State{s[0] - other[0], s[1] - other[1], s[2] - other[2]}
}

// Params holds the coefficients of an attractor family, in the order the
// family's derivative formula expects them.
type Params []float64

// Trajectory is the ordered movement history of one integration run:
// row 0 is the initial state, row i the state after i steps.
type Trajectory []State

// Column extracts a single coordinate series (0=x, 1=y, 2=z).
func (t Trajectory) Column(i int) []float64 {
	col := make([]float64, len(t))
	for k, row := range t {
		col[k] = row[i]
	}
	return col
}
