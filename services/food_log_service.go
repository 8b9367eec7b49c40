package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidLogID = errors.New("invalid log id")
	ErrLogNotFound  = errors.New("food log not found")
)

type FoodLogService struct {
	logs       *mongo.Collection
	foods      *FoodService
	normalizer *UnitNormalizer
}

func NewFoodLogService(foods *FoodService) *FoodLogService {
	return &FoodLogService{
		logs:       config.MongoDB.Collection("user_food_logs"),
		foods:      foods,
		normalizer: NewUnitNormalizer(),
	}
}

type LogFoodRequest struct {
	FoodID         string  `json:"foodId"`
	Quantity       float64 `json:"quantity"`
	MealType       string  `json:"mealType"`
	Unit           string  `json:"unit"`
	OriginalAmount float64 `json:"originalAmount"`
	LoggedAt       string  `json:"loggedAt"`
}

type LogFoodResult struct {
	LogID     string           `json:"logId"`
	FoodName  string           `json:"foodName"`
	Quantity  float64          `json:"quantity"`
	MealType  string           `json:"mealType"`
	LoggedAt  string           `json:"loggedAt"`
	Nutrition models.Nutrition `json:"nutrition"`
}

// LogFood normalizes the logged quantity, scales the food's nutrition into a
// frozen snapshot and stores the entry.
func (s *FoodLogService) LogFood(ctx context.Context, userID string, req LogFoodRequest) (*LogFoodResult, error) {
	food, err := s.foods.ByID(ctx, req.FoodID)
	if err != nil {
		return nil, err
	}

	multiplier, err := s.normalizer.Multiplier(req.Quantity, req.Unit, req.OriginalAmount, food.ServingSize, food.ServingWeightGrams)
	if err != nil {
		return nil, err
	}
	nutrition := ScaleNutrition(food, multiplier)

	loggedAt := parseLoggedAt(req.LoggedAt)
	entry := models.FoodLog{
		UserID:         userID,
		FoodID:         req.FoodID,
		FoodName:       food.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		OriginalAmount: req.OriginalAmount,
		MealType:       req.MealType,
		LoggedAt:       loggedAt,
		Nutrition:      nutrition,
		CreatedAt:      time.Now().UTC(),
	}
	res, err := s.logs.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}

	return &LogFoodResult{
		LogID:     res.InsertedID.(primitive.ObjectID).Hex(),
		FoodName:  food.Name,
		Quantity:  req.Quantity,
		MealType:  req.MealType,
		LoggedAt:  loggedAt.Format(time.RFC3339),
		Nutrition: nutrition,
	}, nil
}

// DayLogs is one day's entries grouped by meal type, with running totals.
type DayLogs struct {
	Date           string                           `json:"date"`
	Meals          map[string][]models.FoodLogEntry `json:"meals"`
	TotalNutrition models.Nutrition                 `json:"totalNutrition"`
	TotalLogs      int                              `json:"totalLogs"`
}

func (s *FoodLogService) LogsForDate(ctx context.Context, userID string, day time.Time) (*DayLogs, error) {
	logs, err := s.findForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	groups := map[string][]models.FoodLogEntry{
		"breakfast": {}, "lunch": {}, "dinner": {}, "snack": {},
	}
	var totals models.Nutrition
	for _, log := range logs {
		mealType := log.MealType
		if mealType == "" {
			mealType = "snack"
		}
		groups[mealType] = append(groups[mealType], models.FoodLogEntry{
			ID:        log.ID.Hex(),
			FoodName:  log.FoodName,
			Quantity:  log.Quantity,
			MealType:  mealType,
			LoggedAt:  log.LoggedAt.Format(time.RFC3339),
			Nutrition: log.Nutrition,
		})
		addNutrition(&totals, log.Nutrition)
	}

	return &DayLogs{
		Date:           day.Format("2006-01-02"),
		Meals:          groups,
		TotalNutrition: totals,
		TotalLogs:      len(logs),
	}, nil
}

type UpdateLogRequest struct {
	Quantity       *float64 `json:"quantity"`
	MealType       *string  `json:"mealType"`
	Unit           *string  `json:"unit"`
	OriginalAmount *float64 `json:"originalAmount"`
}

// applyLogUpdate merges the requested changes into the log and builds the
// $set document. The second return reports whether the consumed amount
// changed, which is the only case that re-derives the nutrition snapshot.
func applyLogUpdate(log *models.FoodLog, req UpdateLogRequest) (bson.M, bool) {
	set := bson.M{"updated_at": time.Now().UTC()}
	amountChanged := false
	if req.Quantity != nil {
		log.Quantity = *req.Quantity
		set["quantity"] = log.Quantity
		amountChanged = true
	}
	if req.Unit != nil {
		log.Unit = *req.Unit
		set["unit"] = log.Unit
		amountChanged = true
	}
	if req.OriginalAmount != nil {
		log.OriginalAmount = *req.OriginalAmount
		set["original_amount"] = log.OriginalAmount
		amountChanged = true
	}
	if req.MealType != nil {
		set["meal_type"] = *req.MealType
	}
	return set, amountChanged
}

// UpdateLog applies the requested changes. Any change to the consumed amount
// re-derives the nutrition snapshot from the food's current facts; a pure
// meal-type change leaves the snapshot untouched.
func (s *FoodLogService) UpdateLog(ctx context.Context, userID, logID string, req UpdateLogRequest) error {
	oid, err := primitive.ObjectIDFromHex(logID)
	if err != nil {
		return ErrInvalidLogID
	}

	var log models.FoodLog
	err = s.logs.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&log)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrLogNotFound
	}
	if err != nil {
		return err
	}

	set, amountChanged := applyLogUpdate(&log, req)

	if amountChanged {
		food, err := s.foods.ByID(ctx, log.FoodID)
		if err != nil {
			return err
		}
		multiplier, err := s.normalizer.Multiplier(log.Quantity, log.Unit, log.OriginalAmount, food.ServingSize, food.ServingWeightGrams)
		if err != nil {
			return err
		}
		set["nutrition"] = ScaleNutrition(food, multiplier)
	}

	_, err = s.logs.UpdateOne(ctx, bson.M{"_id": oid, "user_id": userID}, bson.M{"$set": set})
	return err
}

func (s *FoodLogService) DeleteLog(ctx context.Context, userID, logID string) error {
	oid, err := primitive.ObjectIDFromHex(logID)
	if err != nil {
		return ErrInvalidLogID
	}
	res, err := s.logs.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrLogNotFound
	}
	return nil
}

type DaySummary struct {
	Date           string           `json:"date"`
	TotalNutrition models.Nutrition `json:"totalNutrition"`
	TotalLogs      int              `json:"totalLogs"`
}

func (s *FoodLogService) Summary(ctx context.Context, userID string, day time.Time) (*DaySummary, error) {
	logs, err := s.findForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	var totals models.Nutrition
	for _, log := range logs {
		addNutrition(&totals, log.Nutrition)
	}
	totals.Calories = math.Round(totals.Calories)
	totals.Protein = round1(totals.Protein)
	totals.Carbs = round1(totals.Carbs)
	totals.Fat = round1(totals.Fat)
	totals.Fiber = round1(totals.Fiber)
	totals.Sugar = round1(totals.Sugar)
	totals.Sodium = round1(totals.Sodium)

	return &DaySummary{
		Date:           day.Format("2006-01-02"),
		TotalNutrition: totals,
		TotalLogs:      len(logs),
	}, nil
}

func (s *FoodLogService) findForDay(ctx context.Context, userID string, day time.Time) ([]models.FoodLog, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	cur, err := s.logs.Find(ctx, bson.M{
		"user_id":   userID,
		"logged_at": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}
	var logs []models.FoodLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func addNutrition(dst *models.Nutrition, src models.Nutrition) {
	dst.Calories += src.Calories
	dst.Protein += src.Protein
	dst.Carbs += src.Carbs
	dst.Fat += src.Fat
	dst.Fiber += src.Fiber
	dst.Sugar += src.Sugar
	dst.Sodium += src.Sodium
}

// parseLoggedAt accepts RFC 3339 with or without timezone and falls back to
// the current time on anything unparseable. Naive timestamps carry no zone,
// so their wall time is taken as UTC.
func parseLoggedAt(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
