package scenarios

import "github.com/quantrisk/portfolio-stress/simtypes"

// New constructs the Scenario registered for scenarioType, mirroring
// models.New's factory dispatch (spec.md §6: "Public API... factory
// dispatch on enums").
func New(scenarioType simtypes.ScenarioType) (Scenario, error) {
	switch scenarioType {
	case simtypes.ScenarioJapanLostDecade:
		return NewJapanLostDecade(), nil
	case simtypes.ScenarioStagflation:
		return NewStagflation(), nil
	default:
		return nil, &simtypes.UnknownEnumError{Kind: "scenario", Value: string(scenarioType)}
	}
}
