package services

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/YDahdah/NutriLens/models"
)

var (
	mlPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*ml`)
	gramPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*g`)
)

// defaultPieceUnits is the vocabulary of unit tokens treated as piece-based.
var defaultPieceUnits = map[string]bool{
	"piece": true, "pieces": true, "slice": true, "slices": true,
	"egg": true, "eggs": true, "apple": true, "banana": true,
	"orange": true, "cookie": true, "muffin": true, "bagel": true,
	"donut": true, "bun": true, "roll": true, "pancake": true,
	"waffle": true, "bar": true, "cracker": true,
}

// defaultPieceWeights maps unit tokens to an assumed gram weight per piece,
// used when the serving text carries no explicit weight.
var defaultPieceWeights = map[string]float64{
	"egg":    50,
	"eggs":   50,
	"apple":  182,
	"banana": 118,
}

// UnitNormalizer converts a logged quantity plus its unit into a multiplier
// against a food's serving basis. Volume containers resolve through the
// milliliter amount in the serving text, piece units through a per-piece
// gram weight, and plain gram quantities divide directly by the serving
// weight.
type UnitNormalizer struct {
	pieceUnits   map[string]bool
	pieceWeights map[string]float64
}

func NewUnitNormalizer() *UnitNormalizer {
	return &UnitNormalizer{
		pieceUnits:   defaultPieceUnits,
		pieceWeights: defaultPieceWeights,
	}
}

// NewUnitNormalizerWith overrides the piece vocabulary and weights, merging
// on top of the defaults.
func NewUnitNormalizerWith(units map[string]bool, weights map[string]float64) *UnitNormalizer {
	n := NewUnitNormalizer()
	merged := make(map[string]bool, len(n.pieceUnits)+len(units))
	for k, v := range n.pieceUnits {
		merged[k] = v
	}
	for k, v := range units {
		merged[k] = v
	}
	mergedW := make(map[string]float64, len(n.pieceWeights)+len(weights))
	for k, v := range n.pieceWeights {
		mergedW[k] = v
	}
	for k, v := range weights {
		mergedW[k] = v
	}
	n.pieceUnits = merged
	n.pieceWeights = mergedW
	return n
}

var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// Multiplier computes consumed_amount / serving basis. quantity is the
// client-converted amount in grams or milliliters; originalAmount is the
// user-entered count for piece-based units.
func (n *UnitNormalizer) Multiplier(quantity float64, unit string, originalAmount float64, servingSize string, servingWeightGrams float64) (float64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if servingWeightGrams <= 0 {
		servingWeightGrams = 100
	}

	unit = strings.ToLower(strings.TrimSpace(unit))

	if unit == "can" || unit == "bottle" || strings.Contains(unit, "ml") {
		servingML := parseNumber(mlPattern, servingSize)
		if servingML <= 0 {
			servingML = servingWeightGrams
		}
		return quantity / servingML, nil
	}

	if n.pieceUnits[unit] {
		count := originalAmount
		if count <= 0 {
			count = 1
		}
		weight := parseNumber(gramPattern, servingSize)
		if weight <= 0 {
			weight = n.pieceWeights[unit]
		}
		if weight <= 0 {
			if servingWeightGrams < 200 {
				weight = servingWeightGrams
			} else {
				weight = 100
			}
		}
		return count * weight / servingWeightGrams, nil
	}

	return quantity / servingWeightGrams, nil
}

func parseNumber(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(strings.ToLower(s))
	if len(m) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// ScaleNutrition applies a multiplier to a food's stored serving values and
// rounds the result: calories to the nearest integer, everything else to
// 1 decimal.
func ScaleNutrition(food *models.Food, multiplier float64) models.Nutrition {
	return models.Nutrition{
		Calories: math.Round(food.Calories * multiplier),
		Protein:  round1(food.Protein * multiplier),
		Carbs:    round1(food.Carbs * multiplier),
		Fat:      round1(food.Fat * multiplier),
		Fiber:    round1(food.Fiber * multiplier),
		Sugar:    round1(food.Sugar * multiplier),
		Sodium:   round1(food.Sodium * multiplier),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
