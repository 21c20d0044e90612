package chaos

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Family identifies one of the supported attractor systems.
type Family string

const (
	Lorenz   Family = "lorenz"
	FourWing Family = "four_wing"
	Thomas   Family = "thomas"
	Chen     Family = "chen"
)

// DeriveFunc maps a phase-space point and family parameters to the
// instantaneous derivative (dx/dt, dy/dt, dz/dt).
type DeriveFunc func(s State, p Params) State

type familyDef struct {
	arity  int
	names  []string
	derive DeriveFunc
}

// families is the closed dispatch table: one entry per supported system,
// carrying its derivative and expected parameter count.
var families = map[Family]familyDef{
	Lorenz:   {3, []string{"sigma", "rho", "beta"}, deriveLorenz},
	FourWing: {3, []string{"a", "b", "c"}, deriveFourWing},
	Thomas:   {1, []string{"b"}, deriveThomas},
	Chen:     {3, []string{"a", "b", "c"}, deriveChen},
}

// ParseFamily resolves a family name, case-insensitively.
func ParseFamily(name string) (Family, error) {
	f := Family(strings.ToLower(name))
	if _, ok := families[f]; !ok {
		return "", fmt.Errorf("%w: unknown family %q (want one of %s)",
			ErrConfiguration, name, strings.Join(Families(), ", "))
	}
	return f, nil
}

// Families lists the known family names, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for f := range families {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

func (f Family) Valid() bool {
	_, ok := families[f]
	return ok
}

// Arity returns the number of parameters the family's formula takes.
func (f Family) Arity() int {
	return families[f].arity
}

// ParamNames returns the conventional names of the family's parameters,
// in formula order.
func (f Family) ParamNames() []string {
	return families[f].names
}

// ValidateParams checks the parameter count against the family's arity.
func (f Family) ValidateParams(p Params) error {
	def, ok := families[f]
	if !ok {
		return fmt.Errorf("%w: unknown family %q", ErrConfiguration, string(f))
	}
	if len(p) != def.arity {
		return fmt.Errorf("%w: family %s takes %d parameter(s), got %d",
			ErrConfiguration, string(f), def.arity, len(p))
	}
	return nil
}

// DeriveFunc returns the family's derivative function. Callers are expected
// to have validated the parameter arity first.
func (f Family) DeriveFunc() DeriveFunc {
	return families[f].derive
}

func deriveLorenz(s State, p Params) State {
	x, y, z := s[0], s[1], s[2]
	sigma, rho, beta := p[0], p[1], p[2]
	return State{sigma * (y - x), rho*x - y - x*z, x*y - beta*z}
}

func deriveChen(s State, p Params) State {
	x, y, z := s[0], s[1], s[2]
	a, b, c := p[0], p[1], p[2]
	return State{a*x - y*z, b*y + x*z, c*z + x*y/3}
}

func deriveFourWing(s State, p Params) State {
	x, y, z := s[0], s[1], s[2]
	a, b, c := p[0], p[1], p[2]
	return State{a*x + y*z, b*x + c*y - x*z, -z - x*y}
}

func deriveThomas(s State, p Params) State {
	x, y, z := s[0], s[1], s[2]
	b := p[0]
	return State{math.Sin(y) - b*x, math.Sin(z) - b*y, math.Sin(x) - b*z}
}
