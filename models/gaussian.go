package models

import (
	"math/rand"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

// GaussianModel draws per-step returns from a multivariate normal
// distribution with mean and covariance scaled down from the
// annualised params to the step frequency. It's the engine's baseline
// model (spec.md §4.1.1).
type GaussianModel struct {
	stepsPerYear int
}

// NewGaussianModel constructs a Gaussian return model.
func NewGaussianModel(stepsPerYear int) *GaussianModel {
	return &GaussianModel{stepsPerYear: stepsPerYear}
}

// SampleReturns draws r ~ N(step_mu, step_cov).
func (m *GaussianModel) SampleReturns(state simtypes.State, params simtypes.SimulationParams, t int, rng *rand.Rand) ([]float64, error) {
	n := params.NAssets()
	s := float64(m.stepsPerYear)

	stepMu := make([]float64, n)
	for i, mu := range params.Mu {
		stepMu[i] = mu / s
	}

	stepCov := params.CovarianceMatrix()
	for i := range stepCov {
		for j := range stepCov[i] {
			stepCov[i][j] /= s
		}
	}

	L, err := lowerCholesky("gaussian model", stepCov)
	if err != nil {
		return nil, err
	}

	z := make([]float64, n)
	for i := range z {
		z[i] = rng.NormFloat64()
	}
	draw := matVec(L, z)

	returns := make([]float64, n)
	for i := range returns {
		returns[i] = stepMu[i] + draw[i]
	}
	return returns, nil
}

// UpdateState has no regime state to advance beyond the common drift
// rule.
func (m *GaussianModel) UpdateState(state simtypes.State, returns []float64, rng *rand.Rand) simtypes.State {
	return advanceState(state, returns)
}
