package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Food is a reference catalog entry in the foods collection. Nutrition
// values are stated for one serving basis: ServingSize is free text like
// "1 medium apple" or "330 ml" and ServingWeightGrams is the reference
// weight the values apply to.
type Food struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"food_id"`
	Name               string             `bson:"name" json:"name"`
	Category           string             `bson:"category" json:"category"`
	Brand              string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Calories           float64            `bson:"calories" json:"calories"`
	Protein            float64            `bson:"protein" json:"protein"`
	Carbs              float64            `bson:"carbs" json:"carbs"`
	Fat                float64            `bson:"fat" json:"fat"`
	Fiber              float64            `bson:"fiber" json:"fiber"`
	Sugar              float64            `bson:"sugar" json:"sugar"`
	Sodium             float64            `bson:"sodium" json:"sodium"`
	ServingSize        string             `bson:"serving_size" json:"serving_size"`
	ServingWeightGrams float64            `bson:"serving_weight_grams" json:"serving_weight_grams"`
	ImageURL           string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Barcode            string             `bson:"barcode,omitempty" json:"barcode,omitempty"`
	Allergens          []string           `bson:"allergens,omitempty" json:"allergens,omitempty"`
	Tags               []string           `bson:"tags,omitempty" json:"tags,omitempty"`
}
