package engine

import (
	"testing"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

func simTestParams(t *testing.T) simtypes.SimulationParams {
	t.Helper()
	params, err := simtypes.NewSimulationParams(
		[]string{"equity", "bond"},
		[]float64{0.6, 0.4},
		[]float64{0.08, 0.03},
		[]float64{0.18, 0.05},
		[][]float64{{1, 0.1}, {0.1, 1}},
		10000,
	)
	if err != nil {
		t.Fatalf("NewSimulationParams() error = %v", err)
	}
	return params
}

func seededRequest(t *testing.T, seed int64) simtypes.SimulationRequest {
	t.Helper()
	params := simTestParams(t)
	req := simtypes.DefaultSimulationRequest(params, 60, 500)
	req.Seed = &seed
	return req
}

func TestSimulatorRunIsReproducibleForFixedSeed(t *testing.T) {
	sim := NewSimulator(252)

	reqA := seededRequest(t, 42)
	reqB := seededRequest(t, 42)

	resultA, err := sim.Run(reqA)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	resultB, err := sim.Run(reqB)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if resultA.Metrics.TerminalWealthMean != resultB.Metrics.TerminalWealthMean {
		t.Errorf("TerminalWealthMean differs across identical seeds: %v != %v", resultA.Metrics.TerminalWealthMean, resultB.Metrics.TerminalWealthMean)
	}
	for i := range resultA.AllTerminalValues {
		if resultA.AllTerminalValues[i] != resultB.AllTerminalValues[i] {
			t.Fatalf("AllTerminalValues[%d] differs across identical seeds: %v != %v", i, resultA.AllTerminalValues[i], resultB.AllTerminalValues[i])
		}
	}
}

func TestSimulatorRunDifferentSeedsDiffer(t *testing.T) {
	sim := NewSimulator(252)

	resultA, err := sim.Run(seededRequest(t, 1))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	resultB, err := sim.Run(seededRequest(t, 2))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if resultA.Metrics.TerminalWealthMean == resultB.Metrics.TerminalWealthMean {
		t.Error("expected different seeds to produce different terminal wealth means")
	}
}

func TestSimulatorRunProducesRequestedShape(t *testing.T) {
	sim := NewSimulator(252)
	req := seededRequest(t, 7)
	req.NumPaths = 300
	req.SamplePathsCount = 15

	result, err := sim.Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.AllTerminalValues) != req.NumPaths {
		t.Errorf("len(AllTerminalValues) = %d, want %d", len(result.AllTerminalValues), req.NumPaths)
	}
	if len(result.SamplePaths) != req.SamplePathsCount {
		t.Errorf("len(SamplePaths) = %d, want %d", len(result.SamplePaths), req.SamplePathsCount)
	}
	for _, sp := range result.SamplePaths {
		if len(sp.Values) != req.Steps+1 {
			t.Errorf("sample path has %d values, want %d", len(sp.Values), req.Steps+1)
		}
	}
}

func TestSimulatorRunPercentilesAreOrdered(t *testing.T) {
	sim := NewSimulator(252)
	result, err := sim.Run(seededRequest(t, 99))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	p5 := result.Metrics.TerminalWealthPercentiles[5]
	p25 := result.Metrics.TerminalWealthPercentiles[25]
	p75 := result.Metrics.TerminalWealthPercentiles[75]
	p95 := result.Metrics.TerminalWealthPercentiles[95]

	if !(p5 <= p25 && p25 <= p75 && p75 <= p95) {
		t.Errorf("percentiles not ordered: p5=%v p25=%v p75=%v p95=%v", p5, p25, p75, p95)
	}
}

func TestSimulatorRunCVaRDominatedByMean(t *testing.T) {
	sim := NewSimulator(252)
	result, err := sim.Run(seededRequest(t, 11))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Metrics.CVaR95 > result.Metrics.TerminalWealthMean {
		t.Errorf("CVaR95 (%v) should not exceed terminal wealth mean (%v)", result.Metrics.CVaR95, result.Metrics.TerminalWealthMean)
	}
}

func TestSimulatorRunMaxDrawdownInUnitRange(t *testing.T) {
	sim := NewSimulator(252)
	result, err := sim.Run(seededRequest(t, 13))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Metrics.MaxDrawdownMean < 0 || result.Metrics.MaxDrawdownMean > 1 {
		t.Errorf("MaxDrawdownMean = %v, want in [0, 1]", result.Metrics.MaxDrawdownMean)
	}
}

func TestSimulatorRunWithScenarioAndRebalancing(t *testing.T) {
	sim := NewSimulator(252)
	req := seededRequest(t, 21)
	scenario := simtypes.ScenarioJapanLostDecade
	req.Scenario = &scenario
	freq := simtypes.RebalanceQuarterly
	req.RebalanceFrequency = &freq

	result, err := sim.Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.AllTerminalValues) != req.NumPaths {
		t.Errorf("len(AllTerminalValues) = %d, want %d", len(result.AllTerminalValues), req.NumPaths)
	}
}

func TestSimulatorRunWithRegimeSwitchingAndRuinThreshold(t *testing.T) {
	sim := NewSimulator(252)
	req := seededRequest(t, 33)
	req.ModelType = simtypes.ModelRegimeSwitching
	ruin := 0.5
	req.RuinThreshold = &ruin
	req.RuinThresholdType = simtypes.RuinThresholdPercentage

	result, err := sim.Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Metrics.ProbabilityOfRuin < 0 || result.Metrics.ProbabilityOfRuin > 1 {
		t.Errorf("ProbabilityOfRuin = %v, want in [0, 1]", result.Metrics.ProbabilityOfRuin)
	}
}

func TestSimulatorRunUnknownModelTypeSurfacesError(t *testing.T) {
	sim := NewSimulator(252)
	req := seededRequest(t, 1)
	req.ModelType = simtypes.ModelType("garch")

	_, err := sim.Run(req)
	if err == nil {
		t.Fatal("Run() error = nil, want an UnknownEnumError")
	}
}

func TestSimulatorRunUnknownScenarioSurfacesError(t *testing.T) {
	sim := NewSimulator(252)
	req := seededRequest(t, 1)
	scenario := simtypes.ScenarioType("global_financial_crisis")
	req.Scenario = &scenario

	_, err := sim.Run(req)
	if err == nil {
		t.Fatal("Run() error = nil, want an UnknownEnumError")
	}
}
