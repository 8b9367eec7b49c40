package services

import (
	"errors"
	"math"
	"testing"

	"github.com/YDahdah/NutriLens/models"
)

func TestMultiplier_PlainGrams(t *testing.T) {
	n := NewUnitNormalizer()

	cases := []struct {
		name     string
		quantity float64
		serving  float64
		want     float64
	}{
		{"equal to serving", 182, 182, 1.0},
		{"half serving", 50, 100, 0.5},
		{"double serving", 200, 100, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.Multiplier(tc.quantity, "g", 0, "100 g", tc.serving)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Multiplier(%v g / %v) = %v, want %v", tc.quantity, tc.serving, got, tc.want)
			}
		})
	}
}

func TestMultiplier_VolumeContainer(t *testing.T) {
	n := NewUnitNormalizer()

	// One 330 ml can must scale by exactly the serving, regardless of the
	// stored serving weight.
	got, err := n.Multiplier(330, "can", 1, "330 ml", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("can multiplier = %v, want 1.0", got)
	}

	// No ml in the serving text falls back to the serving weight.
	got, err = n.Multiplier(250, "ml", 0, "1 glass", 250)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ml fallback multiplier = %v, want 1.0", got)
	}
}

func TestMultiplier_PieceUnits(t *testing.T) {
	n := NewUnitNormalizer()

	// Egg heuristic: 2 eggs at 50 g each over a 100 g serving basis.
	got, err := n.Multiplier(100, "egg", 2, "1 large egg", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("egg multiplier = %v, want 1.0", got)
	}

	// Explicit gram weight in the serving text wins over the heuristic.
	got, err = n.Multiplier(60, "slice", 2, "1 slice (30 g)", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("slice multiplier = %v, want 0.6", got)
	}
}

func TestMultiplier_PieceScalesLinearly(t *testing.T) {
	n := NewUnitNormalizer()
	one, err := n.Multiplier(50, "egg", 1, "1 egg", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	two, err := n.Multiplier(100, "egg", 2, "1 egg", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(two-2*one) > 1e-9 {
		t.Errorf("doubling originalAmount should double the multiplier: got %v and %v", one, two)
	}
}

func TestMultiplier_PieceFallbacks(t *testing.T) {
	n := NewUnitNormalizer()

	// Unknown piece food with a small serving weight uses the serving weight.
	got, err := n.Multiplier(120, "piece", 1, "1 piece", 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("small serving fallback = %v, want 1.0", got)
	}

	// Serving weights of 200 g or more fall back to 100 g per piece.
	got, err = n.Multiplier(100, "piece", 1, "1 piece", 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.25) > 1e-9 {
		t.Errorf("large serving fallback = %v, want 0.25", got)
	}
}

func TestMultiplier_ZeroServingWeight(t *testing.T) {
	n := NewUnitNormalizer()
	got, err := n.Multiplier(50, "g", 0, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("zero serving weight should divide by 100: got %v, want 0.5", got)
	}
}

func TestMultiplier_InvalidQuantity(t *testing.T) {
	n := NewUnitNormalizer()
	for _, q := range []float64{0, -1} {
		if _, err := n.Multiplier(q, "g", 0, "100 g", 100); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %v: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
}

func TestMultiplier_ConfigurableWeights(t *testing.T) {
	n := NewUnitNormalizerWith(
		map[string]bool{"pretzel": true},
		map[string]float64{"pretzel": 10},
	)
	got, err := n.Multiplier(30, "pretzel", 3, "1 pretzel", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("custom piece weight multiplier = %v, want 0.3", got)
	}
}

func TestScaleNutrition_Rounding(t *testing.T) {
	food := &models.Food{
		Calories: 95,
		Protein:  0.47,
		Carbs:    25.13,
		Fat:      0.31,
		Fiber:    4.4,
		Sugar:    18.9,
		Sodium:   1.8,
	}

	got := ScaleNutrition(food, 1.0)
	if got.Calories != 95 {
		t.Errorf("calories = %v, want 95", got.Calories)
	}
	if got.Protein != 0.5 {
		t.Errorf("protein = %v, want 0.5", got.Protein)
	}
	if got.Carbs != 25.1 {
		t.Errorf("carbs = %v, want 25.1", got.Carbs)
	}

	// Calories always round to a whole number.
	got = ScaleNutrition(food, 0.33)
	if got.Calories != math.Round(95*0.33) {
		t.Errorf("calories = %v, want %v", got.Calories, math.Round(95*0.33))
	}
}

func TestScaleNutrition_NeverNegative(t *testing.T) {
	food := &models.Food{Calories: 95, Protein: 0.5}
	for _, m := range []float64{0, 0.1, 1, 10} {
		got := ScaleNutrition(food, m)
		if got.Calories < 0 || got.Protein < 0 {
			t.Errorf("multiplier %v produced negative values: %+v", m, got)
		}
	}
}

func TestScaleNutrition_AppleExample(t *testing.T) {
	// 182 g logged against a 95 kcal food whose serving basis is 182 g.
	n := NewUnitNormalizer()
	food := &models.Food{Calories: 95, ServingWeightGrams: 182}
	mult, err := n.Multiplier(182, "g", 0, "1 medium apple", food.ServingWeightGrams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ScaleNutrition(food, mult)
	if got.Calories != 95 {
		t.Errorf("calories = %v, want 95", got.Calories)
	}
}
