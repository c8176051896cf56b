package simtypes

import "math"

const weightSumTolerance = 1e-6

// SimulationParams is the prepared, validated portfolio description the
// engine consumes. Callers build it once (fetching Mu/Volatility/
// CorrelationMatrix from wherever they like — a warehouse, a config
// file, a test fixture) and the engine never mutates it.
type SimulationParams struct {
	Tickers                []string
	Weights                []float64
	Mu                     []float64
	Volatility             []float64
	CorrelationMatrix      [][]float64
	InitialPortfolioValue  float64
}

// NAssets returns the number of assets in the portfolio.
func (p SimulationParams) NAssets() int {
	return len(p.Tickers)
}

// CovarianceMatrix computes diag(Volatility) . CorrelationMatrix . diag(Volatility),
// the annualised covariance matrix.
func (p SimulationParams) CovarianceMatrix() [][]float64 {
	n := p.NAssets()
	cov := make([][]float64, n)
	for i := range cov {
		cov[i] = make([]float64, n)
		for j := range cov[i] {
			cov[i][j] = p.Volatility[i] * p.CorrelationMatrix[i][j] * p.Volatility[j]
		}
	}
	return cov
}

// Clone returns a deep copy of p, used by scenarios to produce a
// modified-but-independent overlay of the same params.
func (p SimulationParams) Clone() SimulationParams {
	n := p.NAssets()
	tickers := make([]string, n)
	copy(tickers, p.Tickers)
	weights := make([]float64, n)
	copy(weights, p.Weights)
	mu := make([]float64, n)
	copy(mu, p.Mu)
	vol := make([]float64, n)
	copy(vol, p.Volatility)
	corr := make([][]float64, n)
	for i := range corr {
		corr[i] = make([]float64, n)
		copy(corr[i], p.CorrelationMatrix[i])
	}
	return SimulationParams{
		Tickers:               tickers,
		Weights:               weights,
		Mu:                    mu,
		Volatility:            vol,
		CorrelationMatrix:     corr,
		InitialPortfolioValue: p.InitialPortfolioValue,
	}
}

// NewSimulationParams validates and constructs a SimulationParams. All
// InvalidParameter conditions in spec.md §7 are checked here, at
// construction, never mid-loop.
func NewSimulationParams(tickers []string, weights, mu, volatility []float64, correlation [][]float64, initialValue float64) (SimulationParams, error) {
	n := len(tickers)
	if len(weights) != n {
		return SimulationParams{}, &InvalidParameterError{Field: "weights", Reason: "length must match tickers"}
	}
	if len(mu) != n {
		return SimulationParams{}, &InvalidParameterError{Field: "mu", Reason: "length must match tickers"}
	}
	if len(volatility) != n {
		return SimulationParams{}, &InvalidParameterError{Field: "volatility", Reason: "length must match tickers"}
	}
	if len(correlation) != n {
		return SimulationParams{}, &InvalidParameterError{Field: "correlation_matrix", Reason: "must be square of dimension len(tickers)"}
	}

	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return SimulationParams{}, &InvalidParameterError{Field: "weights", Reason: "weights must be nonnegative"}
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return SimulationParams{}, &InvalidParameterError{Field: "weights", Reason: "weights must sum to 1"}
	}

	for i, v := range volatility {
		if v <= 0 {
			return SimulationParams{}, &InvalidParameterError{Field: "volatility", Reason: "volatility must be strictly positive"}
		}
		_ = i
	}

	for i, row := range correlation {
		if len(row) != n {
			return SimulationParams{}, &InvalidParameterError{Field: "correlation_matrix", Reason: "matrix must be square"}
		}
		if math.Abs(row[i]-1) > weightSumTolerance {
			return SimulationParams{}, &InvalidParameterError{Field: "correlation_matrix", Reason: "diagonal must be 1"}
		}
		for j, v := range row {
			if v < -1 || v > 1 {
				return SimulationParams{}, &InvalidParameterError{Field: "correlation_matrix", Reason: "entries must be in [-1, 1]"}
			}
			if math.Abs(v-correlation[j][i]) > weightSumTolerance {
				return SimulationParams{}, &InvalidParameterError{Field: "correlation_matrix", Reason: "matrix must be symmetric"}
			}
		}
	}

	if initialValue <= 0 {
		return SimulationParams{}, &InvalidParameterError{Field: "initial_portfolio_value", Reason: "must be positive"}
	}

	return SimulationParams{
		Tickers:               append([]string(nil), tickers...),
		Weights:               append([]float64(nil), weights...),
		Mu:                    append([]float64(nil), mu...),
		Volatility:            append([]float64(nil), volatility...),
		CorrelationMatrix:     correlation,
		InitialPortfolioValue: initialValue,
	}, nil
}

// State is the mutable per-path record threaded through the simulator
// loop. It is created fresh for each path and discarded once the path
// terminal value and max drawdown are recorded.
type State struct {
	CurrentWeights  []float64
	PortfolioValue  float64
	CurrentRegime   Regime
	Step            int
}

// SimulationRequest bundles params with the run configuration.
type SimulationRequest struct {
	Params              SimulationParams
	Steps               int
	NumPaths            int
	ModelType           ModelType
	Scenario            *ScenarioType
	RebalanceFrequency  *RebalanceFrequency
	RebalanceThreshold  float64
	TransactionCostBps  float64
	SamplePathsCount    int
	RuinThreshold       *float64
	RuinThresholdType   RuinThresholdType
	Seed                *int64
}

// DefaultSimulationRequest returns a SimulationRequest with spec.md §3
// defaults applied, for callers building up a request incrementally.
func DefaultSimulationRequest(params SimulationParams, steps, numPaths int) SimulationRequest {
	return SimulationRequest{
		Params:             params,
		Steps:              steps,
		NumPaths:           numPaths,
		ModelType:          ModelGaussian,
		RebalanceThreshold: 0.05,
		TransactionCostBps: 10.0,
		SamplePathsCount:   10,
		RuinThresholdType:  RuinThresholdPercentage,
	}
}

// SamplePath is one representative simulated path selected at a given
// terminal-value percentile.
type SamplePath struct {
	Percentile    int
	Values        []float64
	TerminalValue float64
}

// MetricsSummary reduces the full set of simulated paths to the
// headline risk statistics.
type MetricsSummary struct {
	TerminalWealthMean        float64
	TerminalWealthMedian      float64
	TerminalWealthPercentiles map[int]float64
	MaxDrawdownMean           float64
	MaxDrawdownPercentiles    map[int]float64
	CVaR95                    float64
	ProbabilityOfRuin         float64
	RuinThreshold             *float64
	RuinThresholdType         RuinThresholdType
}

// SimulationResult is the complete output of Simulator.Run.
type SimulationResult struct {
	Metrics           MetricsSummary
	SamplePaths       []SamplePath
	AllTerminalValues []float64
}
