// Package simtypes holds the immutable value objects shared across the
// simulation engine: request/parameter records, per-path state, and the
// enumerations that drive factory dispatch in models and scenarios.
package simtypes

// ModelType selects which return model a Simulator uses to draw per-step
// returns.
type ModelType string

const (
	ModelGaussian        ModelType = "gaussian"
	ModelStudentT        ModelType = "student_t"
	ModelRegimeSwitching ModelType = "regime_switching"
)

// MuType records how the caller derived SimulationParams.Mu. The engine
// never reads it, and neither SimulationParams nor SimulationRequest has a
// field for it; it exists purely for the benefit of callers assembling
// requests from historical vs. forward-looking data.
type MuType string

const (
	MuHistorical MuType = "historical"
	MuForward    MuType = "forward"
)

// ScenarioType selects an optional stress-test overlay.
type ScenarioType string

const (
	ScenarioJapanLostDecade ScenarioType = "japan_lost_decade"
	ScenarioStagflation     ScenarioType = "stagflation"
)

// RebalanceFrequency selects how often drift-based rebalancing is
// additionally gated by a step interval, on top of the drift-threshold
// check that always applies. See the engine section of DESIGN.md: this
// implementation resolves spec.md's open question by having frequency
// gate the check rather than being cosmetic.
type RebalanceFrequency string

const (
	RebalanceQuarterly RebalanceFrequency = "quarterly"
	RebalanceMonthly   RebalanceFrequency = "monthly"
)

// RuinThresholdType selects how RuinThreshold is interpreted.
type RuinThresholdType string

const (
	RuinThresholdPercentage RuinThresholdType = "percentage"
	RuinThresholdAbsolute   RuinThresholdType = "absolute"
)

// Regime is the hidden Markov state driving the regime-switching model.
type Regime string

const (
	RegimeCalm   Regime = "calm"
	RegimeCrisis Regime = "crisis"
)
