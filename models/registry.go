package models

import "github.com/quantrisk/portfolio-stress/simtypes"

// studentTDefaultDF is the degrees of freedom used when the factory
// constructs a Student-t model without an explicit override
// (spec.md §4.1.2 default of v = 5).
const studentTDefaultDF = 5.0

// New constructs the ReturnModel registered for modelType, scaled to
// stepsPerYear. This mirrors the teacher's algo.Create factory
// dispatch, generalised from a map-based registry of zero-arg
// constructors to a switch, since every model here needs
// stepsPerYear threaded through its constructor rather than a
// later Configure call.
func New(modelType simtypes.ModelType, stepsPerYear int) (ReturnModel, error) {
	switch modelType {
	case simtypes.ModelGaussian:
		return NewGaussianModel(stepsPerYear), nil
	case simtypes.ModelStudentT:
		return NewStudentTModel(studentTDefaultDF, stepsPerYear)
	case simtypes.ModelRegimeSwitching:
		return NewRegimeSwitchingModel(stepsPerYear), nil
	default:
		return nil, &simtypes.UnknownEnumError{Kind: "model_type", Value: string(modelType)}
	}
}
