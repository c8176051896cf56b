package simtypes

import "testing"

func TestNewSimulationParams(t *testing.T) {
	tests := []struct {
		name        string
		tickers     []string
		weights     []float64
		mu          []float64
		volatility  []float64
		correlation [][]float64
		initial     float64
		wantErr     bool
	}{
		{
			name:        "valid two-asset portfolio",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.4},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 0.2}, {0.2, 1}},
			initial:     10000,
			wantErr:     false,
		},
		{
			name:        "weights don't sum to 1",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.5},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 0.2}, {0.2, 1}},
			initial:     10000,
			wantErr:     true,
		},
		{
			name:        "negative weight",
			tickers:     []string{"A", "B"},
			weights:     []float64{1.1, -0.1},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 0.2}, {0.2, 1}},
			initial:     10000,
			wantErr:     true,
		},
		{
			name:        "mismatched mu length",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.4},
			mu:          []float64{0.07},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 0.2}, {0.2, 1}},
			initial:     10000,
			wantErr:     true,
		},
		{
			name:        "non-positive volatility",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.4},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0},
			correlation: [][]float64{{1, 0.2}, {0.2, 1}},
			initial:     10000,
			wantErr:     true,
		},
		{
			name:        "correlation not symmetric",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.4},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 0.2}, {0.3, 1}},
			initial:     10000,
			wantErr:     true,
		},
		{
			name:        "correlation entry out of range",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.4},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 1.5}, {1.5, 1}},
			initial:     10000,
			wantErr:     true,
		},
		{
			name:        "non-positive initial value",
			tickers:     []string{"A", "B"},
			weights:     []float64{0.6, 0.4},
			mu:          []float64{0.07, 0.03},
			volatility:  []float64{0.15, 0.05},
			correlation: [][]float64{{1, 0.2}, {0.2, 1}},
			initial:     0,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimulationParams(tt.tickers, tt.weights, tt.mu, tt.volatility, tt.correlation, tt.initial)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSimulationParams() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSimulationParamsCovarianceMatrix(t *testing.T) {
	params, err := NewSimulationParams(
		[]string{"A", "B"},
		[]float64{0.5, 0.5},
		[]float64{0.07, 0.03},
		[]float64{0.2, 0.1},
		[][]float64{{1, 0.5}, {0.5, 1}},
		10000,
	)
	if err != nil {
		t.Fatalf("NewSimulationParams() error = %v", err)
	}

	// Typed float64 operands, so the expected values round the same way
	// as the runtime product (untyped constants would be folded exactly).
	volA, volB, rho, unit := 0.2, 0.1, 0.5, 1.0
	cov := params.CovarianceMatrix()
	want := volA * rho * volB
	if cov[0][1] != want {
		t.Errorf("cov[0][1] = %v, want %v", cov[0][1], want)
	}
	wantDiag := volA * unit * volA
	if cov[0][0] != wantDiag {
		t.Errorf("cov[0][0] = %v, want %v", cov[0][0], wantDiag)
	}
}

func TestSimulationParamsCloneIsIndependent(t *testing.T) {
	params, err := NewSimulationParams(
		[]string{"A", "B"},
		[]float64{0.5, 0.5},
		[]float64{0.07, 0.03},
		[]float64{0.2, 0.1},
		[][]float64{{1, 0.5}, {0.5, 1}},
		10000,
	)
	if err != nil {
		t.Fatalf("NewSimulationParams() error = %v", err)
	}

	clone := params.Clone()
	clone.Mu[0] = 999
	clone.CorrelationMatrix[0][1] = 999

	if params.Mu[0] == 999 {
		t.Error("mutating clone.Mu affected the original params")
	}
	if params.CorrelationMatrix[0][1] == 999 {
		t.Error("mutating clone.CorrelationMatrix affected the original params")
	}
}

func TestDefaultSimulationRequest(t *testing.T) {
	params, err := NewSimulationParams(
		[]string{"A"},
		[]float64{1},
		[]float64{0.05},
		[]float64{0.1},
		[][]float64{{1}},
		1000,
	)
	if err != nil {
		t.Fatalf("NewSimulationParams() error = %v", err)
	}

	req := DefaultSimulationRequest(params, 252, 1000)
	if req.ModelType != ModelGaussian {
		t.Errorf("ModelType = %v, want %v", req.ModelType, ModelGaussian)
	}
	if req.RebalanceThreshold != 0.05 {
		t.Errorf("RebalanceThreshold = %v, want 0.05", req.RebalanceThreshold)
	}
	if req.SamplePathsCount != 10 {
		t.Errorf("SamplePathsCount = %v, want 10", req.SamplePathsCount)
	}
	if req.RuinThresholdType != RuinThresholdPercentage {
		t.Errorf("RuinThresholdType = %v, want %v", req.RuinThresholdType, RuinThresholdPercentage)
	}
}
