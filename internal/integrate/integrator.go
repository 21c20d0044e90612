package integrate

import (
	"fmt"

	"github.com/mstolbov/attractor/internal/chaos"
)

// Config fixes one integration setup. It is immutable for the duration of a
// Compute call; the initial state is replaced only through
// [Integrator.SetInitial], which yields a new Integrator.
type Config struct {
	Family     chaos.Family
	Method     Method
	Step       float64
	Iterations int
	Initial    chaos.State
}

// Integrator drives repeated derivative evaluations to build a trajectory.
//
// An Integrator is single-writer: concurrent Compute calls on the same
// instance must be serialized by the caller. Each instance owns its cached
// trajectory exclusively and overwrites it on every Compute.
type Integrator struct {
	cfg     Config
	stepper Stepper
	cached  chaos.Trajectory
}

// New validates the configuration and returns a ready Integrator.
// All validation failures wrap [chaos.ErrConfiguration].
func New(cfg Config) (*Integrator, error) {
	if !cfg.Family.Valid() {
		return nil, fmt.Errorf("%w: unknown family %q", chaos.ErrConfiguration, string(cfg.Family))
	}
	if cfg.Step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %g", chaos.ErrConfiguration, cfg.Step)
	}
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", chaos.ErrConfiguration, cfg.Iterations)
	}
	stepper, err := NewStepper(cfg.Method)
	if err != nil {
		return nil, err
	}
	return &Integrator{cfg: cfg, stepper: stepper}, nil
}

func (in *Integrator) Config() Config {
	return in.cfg
}

// SetInitial returns a new Integrator with the same configuration but a
// different starting point and an empty cache. The receiver is unchanged.
func (in *Integrator) SetInitial(s chaos.State) *Integrator {
	cfg := in.cfg
	cfg.Initial = s
	return &Integrator{cfg: cfg, stepper: in.stepper}
}

// Compute runs the full integration and returns the trajectory: iterations+1
// rows, row 0 equal to the configured initial state. The result replaces any
// previously cached trajectory on this instance.
//
// Values may grow unbounded or become non-finite for unstable parameter and
// step combinations; that is accepted numerical behavior, not an error.
func (in *Integrator) Compute(p chaos.Params) (chaos.Trajectory, error) {
	if err := in.cfg.Family.ValidateParams(p); err != nil {
		return nil, err
	}

	derive := in.cfg.Family.DeriveFunc()
	tr := make(chaos.Trajectory, in.cfg.Iterations+1)
	tr[0] = in.cfg.Initial

	for i := 0; i < in.cfg.Iterations; i++ {
		tr[i+1] = in.stepper.Step(derive, tr[i], p, in.cfg.Step)
	}

	in.cached = tr
	return tr, nil
}

// Cached returns the trajectory of the most recent Compute, if any.
func (in *Integrator) Cached() (chaos.Trajectory, bool) {
	return in.cached, in.cached != nil
}

// ProjectCached projects the most recent trajectory onto the named plane.
// It fails with [chaos.ErrNoTrajectory] when nothing has been computed yet;
// there is no silent fallback.
func (in *Integrator) ProjectCached(plane string) (*chaos.Projection, error) {
	if in.cached == nil {
		return nil, chaos.ErrNoTrajectory
	}
	return chaos.Project(in.cached, plane)
}
