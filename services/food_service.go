package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidFoodID = errors.New("invalid food id")
	ErrFoodNotFound  = errors.New("food not found")
)

// categoryCache holds the distinct category list, which changes rarely but
// is requested on every food-picker load.
var categoryCache = utils.NewCache()

type FoodService struct {
	coll *mongo.Collection
}

func NewFoodService() *FoodService {
	return &FoodService{coll: config.MongoDB.Collection("foods")}
}

// Search matches the query case-insensitively against name, tags and
// category.
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]models.Food, error) {
	re := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"tags": re},
		bson.M{"category": re},
	}}
	cur, err := s.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) ByCategory(ctx context.Context, category string, limit int) ([]models.Food, error) {
	filter := bson.M{"category": primitive.Regex{Pattern: "^" + category + "$", Options: "i"}}
	cur, err := s.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) Categories(ctx context.Context) ([]string, error) {
	if cached, ok := categoryCache.Get("categories"); ok {
		return cached.([]string), nil
	}
	raw, err := s.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	var cats []string
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			cats = append(cats, s)
		}
	}
	sort.Strings(cats)
	categoryCache.Set("categories", cats, 5*time.Minute)
	return cats, nil
}

func (s *FoodService) Random(ctx context.Context, limit int) ([]models.Food, error) {
	if limit < 1 {
		limit = 1
	}
	cur, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": limit}}},
	})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Add inserts a catalog entry and returns its id. New categories invalidate
// the cached category list.
func (s *FoodService) Add(ctx context.Context, food *models.Food) (string, error) {
	if food.Category == "" {
		food.Category = "misc"
	}
	if food.ServingSize == "" {
		food.ServingSize = "100 g"
	}
	if food.ServingWeightGrams == 0 {
		food.ServingWeightGrams = 100
	}
	res, err := s.coll.InsertOne(ctx, food)
	if err != nil {
		return "", err
	}
	categoryCache.Delete("categories")
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *FoodService) ByID(ctx context.Context, id string) (*models.Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidFoodID
	}
	var food models.Food
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}
