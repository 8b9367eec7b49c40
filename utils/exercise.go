package utils

import (
	"math"
	"strings"
)

// Approximate MET values for a 70 kg person, matched by substring against
// the exercise name. Ordered: the first match wins, so names hitting several
// keys always resolve the same way.
var metValues = []struct {
	key string
	met float64
}{
	{"running", 11.5}, {"jogging", 7.0}, {"walking", 3.5}, {"cycling", 8.0},
	{"swimming", 8.0}, {"rowing", 7.0}, {"weight", 6.0}, {"lifting", 6.0},
	{"bench", 6.0}, {"squats", 5.5}, {"deadlift", 6.0}, {"pull", 8.0},
	{"push", 8.0}, {"sit", 3.0}, {"crunch", 3.0}, {"plank", 3.5},
	{"burpee", 10.0}, {"jumping", 8.0}, {"yoga", 3.0}, {"pilates", 3.0},
	{"stretching", 2.5}, {"dancing", 6.0}, {"zumba", 7.0}, {"aerobics", 7.0},
	{"hiit", 10.0}, {"crossfit", 10.0}, {"boxing", 12.0}, {"martial", 10.0},
	{"tennis", 8.0}, {"basketball", 8.0}, {"soccer", 10.0}, {"football", 8.0},
	{"volleyball", 3.0}, {"badminton", 5.5}, {"hiking", 6.0}, {"climbing", 8.0},
	{"skating", 7.0}, {"skiing", 7.0}, {"elliptical", 7.0}, {"treadmill", 7.0},
	{"stair", 9.0}, {"kettlebell", 8.0}, {"dumbbell", 6.0}, {"resistance", 6.0},
	{"circuit", 8.0},
}

// EstimateCaloriesBurned gives a MET-based estimate for a 70 kg body weight,
// used when the LLM estimate is unavailable or an exercise was saved with
// zero calories.
func EstimateCaloriesBurned(exerciseName string, durationMinutes float64) float64 {
	lower := strings.ToLower(exerciseName)
	met := 5.0
	for _, entry := range metValues {
		if strings.Contains(lower, entry.key) {
			met = entry.met
			break
		}
	}
	calories := met * 70 * (durationMinutes / 60)
	return math.Round(calories*10) / 10
}
