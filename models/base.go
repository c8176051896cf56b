// Package models implements the three return models of spec.md §4.1:
// Gaussian multivariate normal, Student-t, and two-state
// regime-switching. Each exposes the same ReturnModel contract so the
// simulator can dispatch on simtypes.ModelType without knowing which
// concrete sampler it's driving.
package models

import (
	"math/rand"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

// ReturnModel samples per-step arithmetic returns and advances the
// per-path state in response to them. rng is threaded through both
// methods so that every stochastic draw - sampling and, for the
// regime-switching model, the Markov transition - comes from one
// ordered stream (spec.md §5).
type ReturnModel interface {
	SampleReturns(state simtypes.State, params simtypes.SimulationParams, t int, rng *rand.Rand) ([]float64, error)
	UpdateState(state simtypes.State, returns []float64, rng *rand.Rand) simtypes.State
}

// advanceState implements the common state-advancement rule of
// spec.md §4.1.4: new per-asset values drift by (1+r), weights are
// renormalised from those drifted values (falling back to the prior
// weights if the renormalising sum is non-positive), and portfolio
// value compounds by the weighted portfolio return. Regime is left
// untouched; callers that need a regime transition apply it on top of
// the returned State.
func advanceState(state simtypes.State, returns []float64) simtypes.State {
	n := len(state.CurrentWeights)
	newValues := make([]float64, n)
	total := 0.0
	for i := range newValues {
		newValues[i] = state.CurrentWeights[i] * (1 + returns[i])
		total += newValues[i]
	}

	newWeights := state.CurrentWeights
	if total > 0 {
		newWeights = make([]float64, n)
		for i := range newWeights {
			newWeights[i] = newValues[i] / total
		}
	}

	portfolioReturn := 0.0
	for i, w := range state.CurrentWeights {
		portfolioReturn += w * returns[i]
	}

	return simtypes.State{
		CurrentWeights: newWeights,
		PortfolioValue: state.PortfolioValue * (1 + portfolioReturn),
		CurrentRegime:  state.CurrentRegime,
		Step:           state.Step + 1,
	}
}
