// Package scenarios implements the stress-test overlays of spec.md
// §4.2: pure, stateless transforms of SimulationParams applied before
// the return model samples each step, plus an optional one-time
// additive shock.
package scenarios

import "github.com/quantrisk/portfolio-stress/simtypes"

// Scenario modifies simulation parameters to model a persistent
// economic condition. Both methods are pure: apply and apply_shock
// never mutate params or state.
type Scenario interface {
	Apply(params simtypes.SimulationParams, state simtypes.State, t int) simtypes.SimulationParams
	ApplyShock(state simtypes.State, t int) []float64
}
