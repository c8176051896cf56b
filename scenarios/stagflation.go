package scenarios

import "github.com/quantrisk/portfolio-stress/simtypes"

// Stagflation models 1970s-style conditions: elevated volatility,
// reduced real returns, and correlations pushed up toward 1 as
// diversification breaks down (spec.md §4.2.2). Persistent, so like
// JapanLostDecade it never emits a shock.
type Stagflation struct {
	volatilityMultiplier float64
	muReductionFactor    float64
	correlationIncrease  float64
	correlationCap       float64
}

// NewStagflation constructs the scenario with spec.md §4.2.2 defaults
// (volatility_multiplier=1.5, mu_reduction_factor=0.5,
// correlation_increase=0.2, cap=0.95).
func NewStagflation() *Stagflation {
	return &Stagflation{
		volatilityMultiplier: 1.5,
		muReductionFactor:    0.5,
		correlationIncrease:  0.2,
		correlationCap:       0.95,
	}
}

// Apply halves expected returns, inflates volatility, and pushes every
// off-diagonal correlation up by correlationIncrease, capped at
// correlationCap.
func (s *Stagflation) Apply(params simtypes.SimulationParams, state simtypes.State, t int) simtypes.SimulationParams {
	out := params.Clone()
	for i, mu := range params.Mu {
		out.Mu[i] = mu * s.muReductionFactor
	}
	for i, vol := range params.Volatility {
		out.Volatility[i] = vol * s.volatilityMultiplier
	}

	n := params.NAssets()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			raised := params.CorrelationMatrix[i][j] + s.correlationIncrease
			if raised > s.correlationCap {
				raised = s.correlationCap
			}
			out.CorrelationMatrix[i][j] = raised
		}
	}
	return out
}

// ApplyShock never fires; stagflation is a persistent condition, not a
// one-time event.
func (s *Stagflation) ApplyShock(state simtypes.State, t int) []float64 {
	return nil
}
