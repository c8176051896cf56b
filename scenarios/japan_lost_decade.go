package scenarios

import "github.com/quantrisk/portfolio-stress/simtypes"

// JapanLostDecade models Japan's 1990s-2000s prolonged equity
// stagnation: expected returns are cut dramatically, with an extra
// penalty for assets that were previously net-positive (the "equities
// that fail to recover" characteristic of spec.md §4.2.1). The scenario
// is gradual, so it never emits a one-time shock.
type JapanLostDecade struct {
	muReductionFactor float64
	equityPenalty     float64
	muFloor           float64
}

// NewJapanLostDecade constructs the scenario with spec.md §4.2.1
// defaults (mu_reduction_factor=0.2, equity_penalty=0.3, floor=-0.10).
func NewJapanLostDecade() *JapanLostDecade {
	return &JapanLostDecade{
		muReductionFactor: 0.2,
		equityPenalty:     0.3,
		muFloor:           -0.10,
	}
}

// Apply reduces mu across the board, with a steeper cut for assets
// whose base expected return was positive, then clamps from below so
// the scenario stays a persistent drag rather than a catastrophe.
func (s *JapanLostDecade) Apply(params simtypes.SimulationParams, state simtypes.State, t int) simtypes.SimulationParams {
	out := params.Clone()
	for i, mu := range params.Mu {
		if mu > 0 {
			out.Mu[i] = mu * (s.muReductionFactor - s.equityPenalty)
		} else {
			out.Mu[i] = mu * s.muReductionFactor
		}
		if out.Mu[i] < s.muFloor {
			out.Mu[i] = s.muFloor
		}
	}
	return out
}

// ApplyShock never fires; this scenario is a gradual regime, not a
// one-time event.
func (s *JapanLostDecade) ApplyShock(state simtypes.State, t int) []float64 {
	return nil
}
