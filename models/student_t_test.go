package models

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewStudentTModelRejectsLowDF(t *testing.T) {
	tests := []struct {
		name    string
		df      float64
		wantErr bool
	}{
		{name: "df of 2 is rejected", df: 2, wantErr: true},
		{name: "df below 2 is rejected", df: 1.5, wantErr: true},
		{name: "df above 2 is accepted", df: 5, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudentTModel(tt.df, 252)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStudentTModel() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStudentTHasFatterTailsThanGaussian(t *testing.T) {
	params := testParams(t)
	gaussian := NewGaussianModel(252)
	studentT, err := NewStudentTModel(4, 252)
	if err != nil {
		t.Fatalf("NewStudentTModel() error = %v", err)
	}

	state := testState(params)

	extreme := func(model ReturnModel, seed int64) int {
		rng := rand.New(rand.NewSource(seed))
		count := 0
		const trials = 5000
		for i := 0; i < trials; i++ {
			returns, err := model.SampleReturns(state, params, 0, rng)
			if err != nil {
				t.Fatalf("SampleReturns() error = %v", err)
			}
			if math.Abs(returns[0]) > 0.05 {
				count++
			}
		}
		return count
	}

	gaussianExtremes := extreme(gaussian, 99)
	studentTExtremes := extreme(studentT, 99)

	if studentTExtremes <= gaussianExtremes {
		t.Errorf("expected student-t to produce more extreme draws than gaussian, got studentT=%d gaussian=%d", studentTExtremes, gaussianExtremes)
	}
}
