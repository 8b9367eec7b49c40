package models

import "time"

// Meal is one embedded entry in a daily_meals document.
type Meal struct {
	Name          string  `bson:"name,omitempty" json:"name,omitempty"`
	MealType      string  `bson:"mealType,omitempty" json:"mealType,omitempty"`
	TotalCalories float64 `bson:"totalCalories,omitempty" json:"totalCalories,omitempty"`
	TotalProtein  float64 `bson:"totalProtein,omitempty" json:"totalProtein,omitempty"`
	TotalCarbs    float64 `bson:"totalCarbs,omitempty" json:"totalCarbs,omitempty"`
	TotalFat      float64 `bson:"totalFat,omitempty" json:"totalFat,omitempty"`
	LoggedAt      string  `bson:"loggedAt,omitempty" json:"loggedAt,omitempty"`
	Items         []any   `bson:"items,omitempty" json:"items,omitempty"`
}

// DailyMeals holds all meals a user saved for one calendar day. The date is
// the document key, formatted YYYY-MM-DD.
type DailyMeals struct {
	UserID    string    `bson:"userId"`
	Date      string    `bson:"date"`
	Meals     []Meal    `bson:"meals"`
	CreatedAt time.Time `bson:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty"`
}

// Exercise is one embedded entry in a daily_activity document.
type Exercise struct {
	Name           string  `bson:"name" json:"name"`
	Duration       float64 `bson:"duration" json:"duration"`
	CaloriesBurned float64 `bson:"caloriesBurned" json:"caloriesBurned"`
	Type           string  `bson:"type" json:"type"`
	Notes          string  `bson:"notes,omitempty" json:"notes"`
	Timestamp      string  `bson:"timestamp" json:"timestamp"`
}

type Activity struct {
	Exercises   []Exercise `bson:"exercises" json:"exercises"`
	WaterIntake float64    `bson:"waterIntake" json:"waterIntake"`
}

// DailyActivity is one document per user per day in daily_activity.
type DailyActivity struct {
	UserID    string    `bson:"userId"`
	Date      string    `bson:"date"`
	Activity  Activity  `bson:"activity"`
	CreatedAt time.Time `bson:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty"`
}

// UserProfile is the single per-user document in user_profiles. Profile is
// free-form client state; ProfilePhoto holds the uploaded photo URL.
type UserProfile struct {
	UserID       string         `bson:"userId"`
	Profile      map[string]any `bson:"profile,omitempty"`
	ProfilePhoto string         `bson:"profilePhoto,omitempty"`
	CreatedAt    time.Time      `bson:"created_at,omitempty"`
	UpdatedAt    time.Time      `bson:"updated_at,omitempty"`
}

// UserGoals persists a user's nutrition goals until changed.
type UserGoals struct {
	UserID    string         `bson:"userId"`
	Goals     map[string]any `bson:"goals,omitempty"`
	CreatedAt time.Time      `bson:"created_at,omitempty"`
	UpdatedAt time.Time      `bson:"updated_at,omitempty"`
}
