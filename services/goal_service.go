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

// GoalService keeps one user_goals document per user. Goals persist across
// days until the client replaces them.
type GoalService struct {
	coll *mongo.Collection
}

func NewGoalService() *GoalService {
	return &GoalService{coll: config.MongoDB.Collection("user_goals")}
}

func (s *GoalService) Goals(ctx context.Context, userID string) (map[string]any, error) {
	var doc models.UserGoals
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Goals, nil
}

func (s *GoalService) SaveGoals(ctx context.Context, userID string, goals map[string]any) error {
	now := time.Now().UTC()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         bson.M{"goals": goals, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
