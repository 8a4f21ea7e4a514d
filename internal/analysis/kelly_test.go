package analysis

import (
	"math"
	"testing"
)

func TestCalculateKellyStake(t *testing.T) {
	tests := []struct {
		name          string
		bankroll      float64
		probability   float64
		odds          int
		fraction      float64
		expectedStake float64
		expectedEdge  float64
		hasValue      bool
		delta         float64
	}{
		{
			name:        "Positive edge at -110",
			bankroll:    1000,
			probability: 55.0,
			odds:        -110,
			fraction:    1.0,
			// b = 0.9091, f* = (0.9091*0.55 - 0.45) / 0.9091 = 0.055
			expectedStake: 55.0,
			expectedEdge:  55.0 - 52.38,
			hasValue:      true,
			delta:         0.01,
		},
		{
			name:        "Quarter Kelly scales the stake",
			bankroll:    1000,
			probability: 55.0,
			odds:        -110,
			fraction:    0.25,
			expectedStake: 13.75,
			expectedEdge:  55.0 - 52.38,
			hasValue:      true,
			delta:         0.01,
		},
		{
			name:        "No edge at fair odds",
			bankroll:    1000,
			probability: 50.0,
			odds:        100,
			fraction:    1.0,
			expectedStake: 0,
			expectedEdge:  0,
			hasValue:      false,
			delta:         0.001,
		},
		{
			name:        "Negative edge never stakes",
			bankroll:    1000,
			probability: 45.0,
			odds:        -110,
			fraction:    1.0,
			expectedStake: 0,
			expectedEdge:  45.0 - 52.38,
			hasValue:      false,
			delta:         0.01,
		},
		{
			name:        "Underdog with an edge",
			bankroll:    500,
			probability: 45.0,
			odds:        150,
			fraction:    1.0,
			// b = 1.5, f* = (1.5*0.45 - 0.55) / 1.5 = 0.0833
			expectedStake: 41.67,
			expectedEdge:  45.0 - 40.0,
			hasValue:      true,
			delta:         0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateKellyStake(tt.bankroll, tt.probability, tt.odds, tt.fraction)
			if err != nil {
				t.Fatalf("CalculateKellyStake unexpected error: %v", err)
			}
			if math.Abs(result.RecommendedStake-tt.expectedStake) > tt.delta {
				t.Errorf("RecommendedStake = %v, want %v", result.RecommendedStake, tt.expectedStake)
			}
			if math.Abs(result.Edge-tt.expectedEdge) > tt.delta {
				t.Errorf("Edge = %v, want %v", result.Edge, tt.expectedEdge)
			}
			if result.HasValue != tt.hasValue {
				t.Errorf("HasValue = %v, want %v", result.HasValue, tt.hasValue)
			}
			if result.KellyFraction < 0 {
				t.Errorf("KellyFraction = %v, must never be negative", result.KellyFraction)
			}
			if !result.HasValue && result.RecommendedStake != 0 {
				t.Errorf("stake %v recommended without value", result.RecommendedStake)
			}
		})
	}
}

func TestCalculateKellyStakeInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		bankroll    float64
		probability float64
		odds        int
		fraction    float64
	}{
		{name: "Zero bankroll", bankroll: 0, probability: 55, odds: -110, fraction: 0.25},
		{name: "Negative bankroll", bankroll: -100, probability: 55, odds: -110, fraction: 0.25},
		{name: "Probability at zero", bankroll: 1000, probability: 0, odds: -110, fraction: 0.25},
		{name: "Probability at hundred", bankroll: 1000, probability: 100, odds: -110, fraction: 0.25},
		{name: "Zero fraction", bankroll: 1000, probability: 55, odds: -110, fraction: 0},
		{name: "Invalid odds", bankroll: 1000, probability: 55, odds: 50, fraction: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculateKellyStake(tt.bankroll, tt.probability, tt.odds, tt.fraction); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
