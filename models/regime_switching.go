package models

import (
	"math"
	"math/rand"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

// RegimeSwitchingModel is a two-state (calm/crisis) Markov-modulated
// Gaussian model (spec.md §4.1.3). In crisis, expected returns are cut,
// volatility is amplified, and correlations are pulled up toward a
// contagion floor before the step covariance is assembled.
type RegimeSwitchingModel struct {
	pCalmToCrisis         float64
	pCrisisToCalm         float64
	crisisVolMultiplier   float64
	crisisMuReduction     float64
	crisisCorrelationFloor float64
	stepsPerYear          int
}

// RegimeSwitchingOption customises a RegimeSwitchingModel away from its
// spec.md §4.1.3 defaults.
type RegimeSwitchingOption func(*RegimeSwitchingModel)

// NewRegimeSwitchingModel constructs a regime-switching model with the
// spec.md §4.1.3 defaults (p_calm_to_crisis=0.05, p_crisis_to_calm=0.20,
// crisis_vol_multiplier=2.0, crisis_mu_reduction=0.5,
// crisis_correlation_floor=0.7), overridable via options.
func NewRegimeSwitchingModel(stepsPerYear int, opts ...RegimeSwitchingOption) *RegimeSwitchingModel {
	m := &RegimeSwitchingModel{
		pCalmToCrisis:          0.05,
		pCrisisToCalm:          0.20,
		crisisVolMultiplier:    2.0,
		crisisMuReduction:      0.5,
		crisisCorrelationFloor: 0.7,
		stepsPerYear:           stepsPerYear,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SampleReturns draws a regime-conditional multivariate normal return.
func (m *RegimeSwitchingModel) SampleReturns(state simtypes.State, params simtypes.SimulationParams, t int, rng *rand.Rand) ([]float64, error) {
	n := params.NAssets()
	s := float64(m.stepsPerYear)

	stepMu := make([]float64, n)
	for i, mu := range params.Mu {
		stepMu[i] = mu / s
	}
	stepVol := make([]float64, n)
	for i, vol := range params.Volatility {
		stepVol[i] = vol / math.Sqrt(s)
	}

	corr := params.CorrelationMatrix
	if state.CurrentRegime == simtypes.RegimeCrisis {
		for i := range stepMu {
			stepMu[i] *= m.crisisMuReduction
		}
		for i := range stepVol {
			stepVol[i] *= m.crisisVolMultiplier
		}
		corr = m.crisisCorrelation(params.CorrelationMatrix)
	}

	stepCov := make([][]float64, n)
	for i := range stepCov {
		stepCov[i] = make([]float64, n)
		for j := range stepCov[i] {
			stepCov[i][j] = stepVol[i] * corr[i][j] * stepVol[j]
		}
	}

	L, err := lowerCholesky("regime_switching model", stepCov)
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

// crisisCorrelation raises every off-diagonal correlation toward the
// contagion floor (spec.md §4.1.3).
func (m *RegimeSwitchingModel) crisisCorrelation(corr [][]float64) [][]float64 {
	n := len(corr)
	out := make([][]float64, n)
	for i := range corr {
		out[i] = append([]float64(nil), corr[i]...)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if corr[i][j] < m.crisisCorrelationFloor {
				out[i][j] = m.crisisCorrelationFloor
			}
		}
	}
	return out
}

// UpdateState advances the common drift rule and then rolls the Markov
// regime transition on the same rng stream used for sampling
// (spec.md §5: sampling, then regime transition, in that order).
func (m *RegimeSwitchingModel) UpdateState(state simtypes.State, returns []float64, rng *rand.Rand) simtypes.State {
	advanced := advanceState(state, returns)
	advanced.CurrentRegime = m.transitionRegime(state.CurrentRegime, rng)
	return advanced
}

func (m *RegimeSwitchingModel) transitionRegime(current simtypes.Regime, rng *rand.Rand) simtypes.Regime {
	u := rng.Float64()
	if current == simtypes.RegimeCalm {
		if u < m.pCalmToCrisis {
			return simtypes.RegimeCrisis
		}
		return simtypes.RegimeCalm
	}
	if u < m.pCrisisToCalm {
		return simtypes.RegimeCalm
	}
	return simtypes.RegimeCrisis
}
