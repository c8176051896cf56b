package scenarios

import (
	"testing"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

func TestNewDispatchesKnownTypes(t *testing.T) {
	tests := []struct {
		name         string
		scenarioType simtypes.ScenarioType
		wantErr      bool
	}{
		{name: "japan_lost_decade", scenarioType: simtypes.ScenarioJapanLostDecade, wantErr: false},
		{name: "stagflation", scenarioType: simtypes.ScenarioStagflation, wantErr: false},
		{name: "unknown", scenarioType: simtypes.ScenarioType("global_financial_crisis"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario, err := New(tt.scenarioType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if _, ok := err.(*simtypes.UnknownEnumError); !ok {
					t.Errorf("expected *simtypes.UnknownEnumError, got %T", err)
				}
				return
			}
			if scenario == nil {
				t.Error("New() returned nil scenario with no error")
			}
		})
	}
}
