package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrExerciseNameRequired = errors.New("exercise name is required")
	ErrNoActivityToday      = errors.New("no activity found for today")
	ErrInvalidExerciseIndex = errors.New("invalid exercise index")
)

var commonExercises = []string{
	"Running", "Jogging", "Walking", "Cycling", "Swimming", "Rowing",
	"Weight Lifting", "Bench Press", "Squats", "Deadlifts", "Pull-ups",
	"Push-ups", "Sit-ups", "Crunches", "Plank", "Burpees", "Jumping Jacks",
	"Yoga", "Pilates", "Stretching", "Dancing", "Zumba", "Aerobics",
	"HIIT", "CrossFit", "Boxing", "Martial Arts", "Tennis", "Basketball",
	"Soccer", "Football", "Volleyball", "Badminton", "Table Tennis",
	"Hiking", "Climbing", "Skating", "Skiing", "Snowboarding",
	"Elliptical", "Treadmill", "Stair Climbing", "Rowing Machine",
	"Kettlebell", "Dumbbells", "Resistance Training", "Circuit Training",
}

// ActivityService tracks exercises and water intake, one daily_activity
// document per user per day.
type ActivityService struct {
	coll *mongo.Collection
}

func NewActivityService() *ActivityService {
	return &ActivityService{coll: config.MongoDB.Collection("daily_activity")}
}

// TodayActivity returns today's exercises and water intake. Exercise entries
// saved with zero calories get their burn estimated and persisted on read, so
// older entries heal themselves.
func (s *ActivityService) TodayActivity(ctx context.Context, userID string) (models.Activity, error) {
	var doc models.DailyActivity
	err := s.coll.FindOne(ctx, bson.M{"userId": userID, "date": Today()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Activity{Exercises: []models.Exercise{}}, nil
	}
	if err != nil {
		return models.Activity{}, err
	}

	activity := doc.Activity
	needsUpdate := false
	for i, ex := range activity.Exercises {
		if ex.CaloriesBurned <= 0 && strings.TrimSpace(ex.Name) != "" && ex.Duration > 0 {
			activity.Exercises[i].CaloriesBurned = utils.EstimateCaloriesBurned(ex.Name, ex.Duration)
			needsUpdate = true
		}
	}
	if needsUpdate {
		_, err = s.coll.UpdateOne(ctx,
			bson.M{"userId": userID, "date": Today()},
			bson.M{"$set": bson.M{
				"activity.exercises": activity.Exercises,
				"updated_at":         time.Now().UTC(),
			}},
		)
		if err != nil {
			return models.Activity{}, err
		}
	}
	if activity.Exercises == nil {
		activity.Exercises = []models.Exercise{}
	}
	return activity, nil
}

// SaveTodayActivity replaces today's activity wholesale.
func (s *ActivityService) SaveTodayActivity(ctx context.Context, userID string, activity models.Activity) error {
	if activity.Exercises == nil {
		activity.Exercises = []models.Exercise{}
	}
	now := time.Now().UTC()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": Today()},
		bson.M{
			"$set":         bson.M{"activity": activity, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// AddExercise appends one exercise to today's activity, estimating calories
// when the client did not supply them.
func (s *ActivityService) AddExercise(ctx context.Context, userID string, exercise models.Exercise) (models.Exercise, error) {
	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		return models.Exercise{}, ErrExerciseNameRequired
	}
	if exercise.CaloriesBurned <= 0 && exercise.Duration > 0 {
		exercise.CaloriesBurned = utils.EstimateCaloriesBurned(exercise.Name, exercise.Duration)
	}
	if exercise.Type == "" {
		exercise.Type = "other"
	}
	exercise.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if err := s.ensureTodayDoc(ctx, userID); err != nil {
		return models.Exercise{}, err
	}
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": Today()},
		bson.M{
			"$push": bson.M{"activity.exercises": exercise},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return exercise, err
}

// UpdateWaterIntake sets today's water intake in ml.
func (s *ActivityService) UpdateWaterIntake(ctx context.Context, userID string, waterIntake float64) error {
	if err := s.ensureTodayDoc(ctx, userID); err != nil {
		return err
	}
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": Today()},
		bson.M{"$set": bson.M{
			"activity.waterIntake": waterIntake,
			"updated_at":           time.Now().UTC(),
		}},
	)
	return err
}

// DeleteExercise removes the exercise at the given index from today's list.
func (s *ActivityService) DeleteExercise(ctx context.Context, userID string, index int) error {
	var doc models.DailyActivity
	err := s.coll.FindOne(ctx, bson.M{"userId": userID, "date": Today()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoActivityToday
	}
	if err != nil {
		return err
	}
	exercises := doc.Activity.Exercises
	if index < 0 || index >= len(exercises) {
		return ErrInvalidExerciseIndex
	}
	exercises = append(exercises[:index], exercises[index+1:]...)
	_, err = s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": Today()},
		bson.M{"$set": bson.M{
			"activity.exercises": exercises,
			"updated_at":         time.Now().UTC(),
		}},
	)
	return err
}

type ActivityHistoryDay struct {
	Date                string  `json:"date"`
	ExercisesCount      int     `json:"exercisesCount"`
	TotalCaloriesBurned float64 `json:"totalCaloriesBurned"`
	TotalDuration       float64 `json:"totalDuration"`
	WaterIntake         float64 `json:"waterIntake"`
	CreatedAt           string  `json:"created_at,omitempty"`
	UpdatedAt           string  `json:"updated_at,omitempty"`
}

func (s *ActivityService) History(ctx context.Context, userID string, limit int) ([]ActivityHistoryDay, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": -1}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	var docs []models.DailyActivity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	history := make([]ActivityHistoryDay, 0, len(docs))
	for _, doc := range docs {
		var burned, duration float64
		for _, ex := range doc.Activity.Exercises {
			burned += ex.CaloriesBurned
			duration += ex.Duration
		}
		day := ActivityHistoryDay{
			Date:                doc.Date,
			ExercisesCount:      len(doc.Activity.Exercises),
			TotalCaloriesBurned: round1(burned),
			TotalDuration:       round1(duration),
			WaterIntake:         round1(doc.Activity.WaterIntake),
		}
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

// ExerciseSuggestions returns up to 10 known exercise names matching the
// query. Queries shorter than two characters return nothing.
func ExerciseSuggestions(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	suggestions := []string{}
	if len(query) < 2 {
		return suggestions
	}
	for _, name := range commonExercises {
		if strings.Contains(strings.ToLower(name), query) {
			suggestions = append(suggestions, name)
			if len(suggestions) == 10 {
				break
			}
		}
	}
	return suggestions
}

func (s *ActivityService) ensureTodayDoc(ctx context.Context, userID string) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "date": Today()},
		bson.M{"$setOnInsert": bson.M{
			"created_at": time.Now().UTC(),
			"activity":   bson.M{"exercises": bson.A{}, "waterIntake": 0},
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
