package utils

import "testing"

func TestEstimateCaloriesBurned(t *testing.T) {
	tests := []struct {
		name     string
		exercise string
		minutes  float64
		want     float64
	}{
		{"known exercise", "Morning Running", 60, 11.5 * 70},
		{"case insensitive", "BOXING session", 30, 12.0 * 70 * 0.5},
		{"unknown falls back to default MET", "quidditch", 60, 5.0 * 70},
		{"zero duration", "Running", 0, 0},
		{"multi-match resolves to first table entry", "Stair Climbing", 60, 8.0 * 70},
		{"running wins over treadmill", "Running on Treadmill", 60, 11.5 * 70},
		{"jogging wins over walking", "Walking and Jogging", 60, 7.0 * 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCaloriesBurned(tt.exercise, tt.minutes)
			if got != tt.want {
				t.Errorf("EstimateCaloriesBurned(%q, %v) = %v, want %v", tt.exercise, tt.minutes, got, tt.want)
			}
		})
	}
}

// Names that hit several MET table entries must produce the same estimate on
// every call.
func TestEstimateCaloriesBurnedIsDeterministic(t *testing.T) {
	names := []string{"Stair Climbing", "Running on Treadmill", "Walking and Jogging", "Weight Lifting"}
	for _, name := range names {
		first := EstimateCaloriesBurned(name, 45)
		for i := 0; i < 200; i++ {
			if got := EstimateCaloriesBurned(name, 45); got != first {
				t.Fatalf("%q: estimate changed between calls: %v then %v", name, first, got)
			}
		}
	}
}

func TestEstimateCaloriesBurnedRoundsToOneDecimal(t *testing.T) {
	// 3.5 MET * 70 kg * 7/60 h = 28.583...
	got := EstimateCaloriesBurned("walking", 7)
	if got != 28.6 {
		t.Errorf("got %v, want 28.6", got)
	}
}
