package engine

import "github.com/quantrisk/portfolio-stress/simtypes"

// ValidateRequest enforces the numeric ranges spec.md §6 attributes to
// "the outer surface layer" rather than the engine itself. The engine's
// own Run trusts its caller (spec.md §7); this is a separate,
// opt-in check for callers — such as apiserver — that sit in front of
// untrusted input.
func ValidateRequest(req simtypes.SimulationRequest) error {
	if req.Steps < 1 {
		return &simtypes.InvalidParameterError{Field: "steps", Reason: "must be >= 1"}
	}
	if req.NumPaths < 100 || req.NumPaths > 10000 {
		return &simtypes.InvalidParameterError{Field: "num_paths", Reason: "must be in [100, 10000]"}
	}
	if req.SamplePathsCount < 1 || req.SamplePathsCount > 50 {
		return &simtypes.InvalidParameterError{Field: "sample_paths_count", Reason: "must be in [1, 50]"}
	}
	if req.RebalanceThreshold < 0 || req.RebalanceThreshold > 1 {
		return &simtypes.InvalidParameterError{Field: "rebalance_threshold", Reason: "must be in [0, 1]"}
	}
	if req.TransactionCostBps < 0 {
		return &simtypes.InvalidParameterError{Field: "transaction_cost_bps", Reason: "must be >= 0"}
	}
	return nil
}
