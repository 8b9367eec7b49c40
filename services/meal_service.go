package services

import (
	"context"
	"errors"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNoMealsForDate = errors.New("no meals found for this date")
	ErrNotToday       = errors.New("you can only delete meals for today")
)

// MealService manages the per-day meal documents saved by the dashboard,
// one document per user per calendar day keyed by YYYY-MM-DD.
type MealService struct {
	coll *mongo.Collection
}

func NewMealService() *MealService {
	return &MealService{coll: config.MongoDB.Collection("daily_meals")}
}

func Today() string { return time.Now().UTC().Format("2006-01-02") }

func (s *MealService) MealsForDate(ctx context.Context, userID, date string) ([]models.Meal, error) {
	var doc models.DailyMeals
	err := s.coll.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.Meal{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Meals == nil {
		return []models.Meal{}, nil
	}
	return doc.Meals, nil
}

// SaveMeals replaces today's meal list, creating the day document if needed.
func (s *MealService) SaveMeals(ctx context.Context, userID string, meals []models.Meal) error {
	now := time.Now().UTC()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": Today()},
		bson.M{
			"$set":         bson.M{"meals": meals, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// AddMeal appends one meal entry to the given day's history.
func (s *MealService) AddMeal(ctx context.Context, userID, date string, meal models.Meal) error {
	if meal.LoggedAt == "" {
		meal.LoggedAt = time.Now().UTC().Format(time.RFC3339)
	}
	now := time.Now().UTC()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": date},
		bson.M{
			"$push":        bson.M{"meals": meal},
			"$set":         bson.M{"updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

type MealHistoryDay struct {
	Date          string  `json:"date"`
	MealsCount    int     `json:"mealsCount"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

func (s *MealService) History(ctx context.Context, userID string, limit int) ([]MealHistoryDay, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": -1}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	var docs []models.DailyMeals
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	history := make([]MealHistoryDay, 0, len(docs))
	for _, doc := range docs {
		day := MealHistoryDay{Date: doc.Date, MealsCount: len(doc.Meals)}
		for _, m := range doc.Meals {
			day.TotalCalories += m.TotalCalories
			day.TotalProtein += m.TotalProtein
			day.TotalCarbs += m.TotalCarbs
			day.TotalFat += m.TotalFat
		}
		day.TotalProtein = round1(day.TotalProtein)
		day.TotalCarbs = round1(day.TotalCarbs)
		day.TotalFat = round1(day.TotalFat)
		if !doc.CreatedAt.IsZero() {
			day.CreatedAt = doc.CreatedAt.Format(time.RFC3339)
		}
		if !doc.UpdatedAt.IsZero() {
			day.UpdatedAt = doc.UpdatedAt.Format(time.RFC3339)
		}
		history = append(history, day)
	}
	return history, nil
}

// DeleteDay removes one day's meal document. Only today's can be deleted.
func (s *MealService) DeleteDay(ctx context.Context, userID, date string) error {
	if date != Today() {
		return ErrNotToday
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoMealsForDate
	}
	return nil
}
