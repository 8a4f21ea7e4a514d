package analysis

import (
	"math"
	"testing"
)

func TestExpectedValue(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		odds        int
		expected    float64
	}{
		// 0.55 * 0.90909 - 0.45 = 0.05
		{name: "Positive edge at -110", probability: 55, odds: -110, expected: 0.05},
		// Fair coin at even money.
		{name: "Fair price is zero EV", probability: 50, odds: 100, expected: 0},
		// 0.45 * 1.5 - 0.55 = 0.125
		{name: "Underdog value at +150", probability: 45, odds: 150, expected: 0.125},
		// 0.50 * 0.90909 - 0.50 = -0.0455
		{name: "Paying the vig", probability: 50, odds: -110, expected: -0.0455},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ExpectedValue(tt.probability, tt.odds)
			if err != nil {
				t.Fatalf("ExpectedValue(%v, %d) error: %v", tt.probability, tt.odds, err)
			}
			if math.Abs(ev-tt.expected) > 0.0001 {
				t.Errorf("ExpectedValue(%v, %d) = %v, want %v", tt.probability, tt.odds, ev, tt.expected)
			}
		})
	}
}

func TestExpectedValueInvalidInput(t *testing.T) {
	if _, err := ExpectedValue(0, -110); err == nil {
		t.Error("expected error for probability 0")
	}
	if _, err := ExpectedValue(100, -110); err == nil {
		t.Error("expected error for probability 100")
	}
	if _, err := ExpectedValue(55, 50); err == nil {
		t.Error("expected error for invalid odds 50")
	}
}
