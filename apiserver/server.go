// Package apiserver exposes the simulation engine over HTTP, in the
// same net/http.HandleFunc-plus-corsMiddleware shape the teacher's
// main.go used for its account/positions/orders handlers: a plain
// mux, a CORS-header-setting wrapper, encoding/json for every
// request/response body, and http.Error for failure responses. This
// is the "outer surface layer" spec.md §1 scopes out of the engine
// itself but still names as a natural caller.
package apiserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/quantrisk/portfolio-stress/engine"
	"github.com/quantrisk/portfolio-stress/simtypes"
)

// Server wires an engine.Simulator to an HTTP mux.
type Server struct {
	sim    *engine.Simulator
	logger *log.Logger
}

// NewServer constructs a Server running simulations at stepsPerYear
// resolution.
func NewServer(stepsPerYear int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{sim: engine.NewSimulator(stepsPerYear), logger: logger}
}

// Routes registers the server's handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", s.corsMiddleware(s.handleHealth))
	mux.HandleFunc("/api/simulate", s.corsMiddleware(s.handleSimulate))
}

func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// simulateRequestBody is the JSON shape accepted by POST
// /api/simulate. Money-shaped fields (initial_portfolio_value) are
// parsed through decimal.Decimal so a client-supplied "10000.00" or
// "1e4" doesn't pick up binary float noise before it ever reaches the
// engine's float64 arithmetic (spec.md's engine works in float64
// throughout; the decimal boundary is purely a JSON-parsing nicety,
// mirroring the teacher's use of shopspring/decimal for order sizing).
type simulateRequestBody struct {
	Tickers               []string    `json:"tickers"`
	Weights               []float64   `json:"weights"`
	Mu                    []float64   `json:"mu"`
	Volatility            []float64   `json:"volatility"`
	CorrelationMatrix     [][]float64 `json:"correlation_matrix"`
	InitialPortfolioValue string      `json:"initial_portfolio_value"`

	Steps              int      `json:"steps"`
	NumPaths           int      `json:"num_paths"`
	ModelType          string   `json:"model_type"`
	Scenario           *string  `json:"scenario,omitempty"`
	RebalanceFrequency *string  `json:"rebalance_frequency,omitempty"`
	RebalanceThreshold float64  `json:"rebalance_threshold"`
	TransactionCostBps float64  `json:"transaction_cost_bps"`
	SamplePathsCount   int      `json:"sample_paths_count"`
	RuinThreshold      *float64 `json:"ruin_threshold,omitempty"`
	RuinThresholdType  string   `json:"ruin_threshold_type,omitempty"`
	Seed               *int64   `json:"seed,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body simulateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	request, err := body.toSimulationRequest()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := engine.ValidateRequest(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.sim.Run(request)
	if err != nil {
		s.writeSimulationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// writeSimulationError maps the engine's concrete error taxonomy to
// HTTP status codes (spec.md §7: InvalidParameterError/UnknownEnumError
// are caller mistakes, NumericalFailureError is a 500).
func (s *Server) writeSimulationError(w http.ResponseWriter, err error) {
	var invalidParam *simtypes.InvalidParameterError
	var unknownEnum *simtypes.UnknownEnumError
	var numericalFailure *simtypes.NumericalFailureError

	switch {
	case errors.As(err, &invalidParam), errors.As(err, &unknownEnum):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &numericalFailure):
		s.logger.Printf("simulation numerical failure: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		s.logger.Printf("simulation failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (b simulateRequestBody) toSimulationRequest() (simtypes.SimulationRequest, error) {
	initialValue, err := decimal.NewFromString(b.InitialPortfolioValue)
	if err != nil {
		return simtypes.SimulationRequest{}, fmt.Errorf("invalid initial_portfolio_value: %w", err)
	}

	params, err := simtypes.NewSimulationParams(b.Tickers, b.Weights, b.Mu, b.Volatility, b.CorrelationMatrix, initialValue.InexactFloat64())
	if err != nil {
		return simtypes.SimulationRequest{}, err
	}

	request := simtypes.DefaultSimulationRequest(params, b.Steps, b.NumPaths)
	if b.ModelType != "" {
		request.ModelType = simtypes.ModelType(b.ModelType)
	}
	if b.Scenario != nil {
		scenario := simtypes.ScenarioType(*b.Scenario)
		request.Scenario = &scenario
	}
	if b.RebalanceFrequency != nil {
		freq := simtypes.RebalanceFrequency(*b.RebalanceFrequency)
		request.RebalanceFrequency = &freq
	}
	if b.RebalanceThreshold != 0 {
		request.RebalanceThreshold = b.RebalanceThreshold
	}
	if b.TransactionCostBps != 0 {
		request.TransactionCostBps = b.TransactionCostBps
	}
	if b.SamplePathsCount != 0 {
		request.SamplePathsCount = b.SamplePathsCount
	}
	request.RuinThreshold = b.RuinThreshold
	if b.RuinThresholdType != "" {
		request.RuinThresholdType = simtypes.RuinThresholdType(b.RuinThresholdType)
	}
	request.Seed = b.Seed

	return request, nil
}
