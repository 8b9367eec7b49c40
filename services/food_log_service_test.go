package services

import (
	"testing"

	"github.com/YDahdah/NutriLens/models"
)

func str(s string) *string   { return &s }
func f64(v float64) *float64 { return &v }

// A stored snapshot must not move when the source food record is edited
// afterwards.
func TestNutritionSnapshotIsFrozen(t *testing.T) {
	food := &models.Food{
		Name:               "Oatmeal",
		Calories:           150,
		Protein:            5,
		Carbs:              27,
		Fat:                3,
		ServingSize:        "40 g",
		ServingWeightGrams: 40,
	}
	snapshot := ScaleNutrition(food, 2)
	if snapshot.Calories != 300 {
		t.Fatalf("snapshot calories = %v, want 300", snapshot.Calories)
	}

	food.Calories = 999
	food.Protein = 0

	if snapshot.Calories != 300 || snapshot.Protein != 10 {
		t.Errorf("snapshot changed after food edit: %+v", snapshot)
	}
}

func TestApplyLogUpdateMealTypeOnly(t *testing.T) {
	log := models.FoodLog{Quantity: 100, Unit: "g", MealType: "lunch"}
	set, amountChanged := applyLogUpdate(&log, UpdateLogRequest{MealType: str("dinner")})

	if amountChanged {
		t.Error("meal-type change must not trigger a nutrition re-derive")
	}
	if set["meal_type"] != "dinner" {
		t.Errorf("meal_type = %v, want dinner", set["meal_type"])
	}
	if _, ok := set["nutrition"]; ok {
		t.Error("nutrition must stay out of the update for a meal-type change")
	}
	if _, ok := set["quantity"]; ok {
		t.Error("quantity must stay out of the update when not requested")
	}
}

func TestApplyLogUpdateAmountFields(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateLogRequest
	}{
		{"quantity", UpdateLogRequest{Quantity: f64(250)}},
		{"unit", UpdateLogRequest{Unit: str("ml")}},
		{"original amount", UpdateLogRequest{OriginalAmount: f64(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := models.FoodLog{Quantity: 100, Unit: "g"}
			_, amountChanged := applyLogUpdate(&log, tt.req)
			if !amountChanged {
				t.Errorf("%s change must trigger a nutrition re-derive", tt.name)
			}
		})
	}
}

func TestApplyLogUpdateMergesIntoLog(t *testing.T) {
	log := models.FoodLog{Quantity: 100, Unit: "g", OriginalAmount: 1}
	set, _ := applyLogUpdate(&log, UpdateLogRequest{Quantity: f64(330), Unit: str("ml"), OriginalAmount: f64(1)})

	if log.Quantity != 330 || log.Unit != "ml" {
		t.Errorf("log not updated in place: %+v", log)
	}
	if set["quantity"] != 330.0 || set["unit"] != "ml" || set["original_amount"] != 1.0 {
		t.Errorf("unexpected $set contents: %v", set)
	}
}
