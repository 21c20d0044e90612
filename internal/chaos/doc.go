// Package chaos defines the data model for strange-attractor trajectories.
//
// The package provides:
//
//   - [State]: a point in phase space (x, y, z)
//   - [Family]: the closed set of supported attractor systems, each carrying
//     its derivative function and expected parameter count
//   - [Trajectory]: an ordered sequence of states produced by integration
//   - [Project]: 2D column slices of a trajectory for plane rendering
//
// Derivative evaluation is pure arithmetic: no side effects, no randomness,
// deterministic for identical inputs. Integration lives in the integrate
// package; this package only describes the systems being integrated.
package chaos
