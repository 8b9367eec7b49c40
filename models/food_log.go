package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nutrition is the snapshot stored on a food log entry. It is computed once
// at log time and never recomputed from the live food record, so later
// catalog edits do not change history.
type Nutrition struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
	Fiber    float64 `bson:"fiber" json:"fiber"`
	Sugar    float64 `bson:"sugar" json:"sugar"`
	Sodium   float64 `bson:"sodium" json:"sodium"`
}

// FoodLog is a document in the user_food_logs collection.
type FoodLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	FoodID         string             `bson:"food_id"`
	FoodName       string             `bson:"food_name"`
	Quantity       float64            `bson:"quantity"`
	Unit           string             `bson:"unit,omitempty"`
	OriginalAmount float64            `bson:"original_amount,omitempty"`
	MealType       string             `bson:"meal_type"`
	LoggedAt       time.Time          `bson:"logged_at"`
	Nutrition      Nutrition          `bson:"nutrition"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at,omitempty"`
}

// FoodLogEntry is the client-facing shape of a single log.
type FoodLogEntry struct {
	ID        string    `json:"id"`
	FoodName  string    `json:"foodName"`
	Quantity  float64   `json:"quantity"`
	MealType  string    `json:"mealType"`
	LoggedAt  string    `json:"loggedAt"`
	Nutrition Nutrition `json:"nutrition"`
}
