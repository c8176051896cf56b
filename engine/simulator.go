// Package engine drives the Monte Carlo loop of spec.md §4.5: one
// model and one optional scenario, run independently per path, per
// step, on a single seeded RNG stream. Nothing here touches a
// network, a file, or a database — the engine's only collaborators
// are the pure models, scenarios, and results packages.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/quantrisk/portfolio-stress/models"
	"github.com/quantrisk/portfolio-stress/results"
	"github.com/quantrisk/portfolio-stress/scenarios"
	"github.com/quantrisk/portfolio-stress/simtypes"
)

// Simulator runs SimulationRequests against a fixed annualisation
// frequency. stepsPerYear is the engine's one piece of configuration
// that isn't per-request: it determines both the scaling of annual
// mu/covariance down to a single step and the rebalance-frequency
// resolution of stepsPerRebalancePeriod.
type Simulator struct {
	stepsPerYear int
}

// NewSimulator constructs a Simulator. stepsPerYear is 252 for daily
// steps, 12 for monthly, etc.
func NewSimulator(stepsPerYear int) *Simulator {
	return &Simulator{stepsPerYear: stepsPerYear}
}

// Run executes request.NumPaths independent paths of request.Steps
// steps each, returning the reduced SimulationResult (spec.md §4.5-
// §4.7). Run is the engine's entire public surface (spec.md §6): it
// trusts the caller's request to already satisfy the invariants
// ValidateRequest checks, and its only failure modes are an unknown
// model_type/scenario (UnknownEnumError) or a covariance matrix that
// won't factor even after jitter (NumericalFailureError).
func (s *Simulator) Run(request simtypes.SimulationRequest) (simtypes.SimulationResult, error) {
	model, err := models.New(request.ModelType, s.stepsPerYear)
	if err != nil {
		return simtypes.SimulationResult{}, fmt.Errorf("constructing return model: %w", err)
	}

	var scenario scenarios.Scenario
	if request.Scenario != nil {
		scenario, err = scenarios.New(*request.Scenario)
		if err != nil {
			return simtypes.SimulationResult{}, fmt.Errorf("constructing scenario: %w", err)
		}
	}

	// A nil RebalanceFrequency disables rebalancing entirely (spec.md
	// §4.3, §4.5): rebalancePeriod == 0 makes the runPath gate below
	// always false, regardless of drift.
	rebalancePeriod := 0
	if request.RebalanceFrequency != nil {
		rebalancePeriod = stepsPerRebalancePeriod(*request.RebalanceFrequency, s.stepsPerYear)
	}
	rebalancer := NewRebalancer(request.RebalanceThreshold, request.Params.Weights)
	costs := NewTransactionCosts(request.TransactionCostBps)

	rng := newRNG(request.Seed)

	terminalValues := make([]float64, request.NumPaths)
	maxDrawdowns := make([]float64, request.NumPaths)
	paths := make([][]float64, request.NumPaths)

	for p := 0; p < request.NumPaths; p++ {
		values, maxDD, err := s.runPath(request, model, scenario, rebalancer, costs, rebalancePeriod, rng)
		if err != nil {
			return simtypes.SimulationResult{}, fmt.Errorf("path %d: %w", p, err)
		}
		paths[p] = values
		terminalValues[p] = values[len(values)-1]
		maxDrawdowns[p] = maxDD
	}

	metrics := results.ComputeMetrics(terminalValues, maxDrawdowns, request.Params.InitialPortfolioValue, request.RuinThreshold, request.RuinThresholdType)

	selections := results.SelectRepresentativePaths(paths, terminalValues, request.SamplePathsCount)
	samplePaths := make([]simtypes.SamplePath, len(selections))
	for i, sel := range selections {
		samplePaths[i] = simtypes.SamplePath{
			Percentile:    sel.Percentile,
			Values:        paths[sel.PathIndex],
			TerminalValue: sel.TerminalValue,
		}
	}

	return simtypes.SimulationResult{
		Metrics:           metrics,
		SamplePaths:       samplePaths,
		AllTerminalValues: terminalValues,
	}, nil
}

// runPath executes one path: request.Steps applications of
// scenario-overlay -> sample -> optional shock -> state update,
// gated rebalancing, and per-step portfolio value/drawdown
// bookkeeping (spec.md §4.5).
func (s *Simulator) runPath(request simtypes.SimulationRequest, model models.ReturnModel, scenario scenarios.Scenario, rebalancer *Rebalancer, costs *TransactionCosts, rebalancePeriod int, rng *rand.Rand) ([]float64, float64, error) {
	state := simtypes.State{
		CurrentWeights: append([]float64(nil), request.Params.Weights...),
		PortfolioValue: request.Params.InitialPortfolioValue,
		Step:           0,
	}

	values := make([]float64, request.Steps+1)
	values[0] = state.PortfolioValue
	peak := state.PortfolioValue
	maxDrawdown := 0.0

	for t := 0; t < request.Steps; t++ {
		stepParams := request.Params
		if scenario != nil {
			stepParams = scenario.Apply(request.Params, state, t)
		}

		returns, err := model.SampleReturns(state, stepParams, t, rng)
		if err != nil {
			return nil, 0, err
		}

		if scenario != nil {
			if shock := scenario.ApplyShock(state, t); shock != nil {
				for i := range returns {
					returns[i] += shock[i]
				}
			}
		}

		state = model.UpdateState(state, returns, rng)

		if rebalancePeriod > 0 && state.Step%rebalancePeriod == 0 && rebalancer.NeedsRebalance(state.CurrentWeights) {
			newWeights, turnover := rebalancer.Rebalance(state.CurrentWeights)
			state.PortfolioValue -= costs.Calculate(state.PortfolioValue, turnover)
			state.CurrentWeights = newWeights
		}

		values[t+1] = state.PortfolioValue
		if state.PortfolioValue > peak {
			peak = state.PortfolioValue
		} else if peak > 0 {
			drawdown := (peak - state.PortfolioValue) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return values, maxDrawdown, nil
}

// newRNG seeds a single RNG stream from the request's seed, or from
// wall-clock entropy when unset (spec.md §5: determinism is only
// promised when the caller supplies a seed).
func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
