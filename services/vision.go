package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// VisionItem is one detected food component in a meal photo.
type VisionItem struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Calories   float64 `json:"calories"`
}

type VisionResult struct {
	DishName *string        `json:"dish_name"`
	Items    []VisionItem   `json:"items"`
	Recipe   map[string]any `json:"recipe"`
	Summary  string         `json:"summary"`
}

// NotFoodError is returned when the model decides the image is not a meal.
type NotFoodError struct{ Reason string }

func (e *NotFoodError) Error() string { return e.Reason }

type visionPayload struct {
	IsFoodImage *bool          `json:"is_food_image"`
	Reason      string         `json:"reason"`
	DishName    *string        `json:"dish_name"`
	Items       []VisionItem   `json:"items"`
	Recipe      map[string]any `json:"recipe"`
	Summary     string         `json:"summary"`
}

const visionPrompt = "Analyze the following meal photo. You MUST identify EACH DISTINCT FOOD ITEM visible in the image separately. " +
	"DO NOT combine multiple food items into one entry. Each visible food component must be listed separately.\n\n" +
	"REQUIREMENTS:\n" +
	"1. Look at the image carefully and identify EVERY distinct food item you can see\n" +
	"2. Create a separate entry in the 'items' array for EACH food item\n" +
	"3. Each item must have: name (specific food name), confidence (0-1), and calories (estimated for the portion shown)\n\n" +
	"Use the JSON schema: {is_food_image: boolean, reason: string, items: [{name: string, confidence: number, calories: number}], recipe: {...}, summary: string}\n" +
	"Set is_food_image to false if the image is not primarily food-related."

const visionSystemPrompt = "You are NutriVision, a food analysis expert. Respond ONLY with valid JSON as specified."

// Fallback models tried in order when the configured vision model fails.
var visionFallbackModels = []string{"openai/gpt-4o", "google/gemini-2.0-flash-exp:free"}

// AnalyzeMealPhoto sends a data-URL encoded photo through the vision model
// chain and returns the structured breakdown. Rate limits and provider
// failures on one model fall through to the next.
func (s *OpenRouterService) AnalyzeMealPhoto(imageDataURL string) (*VisionResult, error) {
	modelsToTry := append([]string{s.visionModel}, visionFallbackModels...)

	var lastErr error
	for mi, model := range modelsToTry {
		payload, err := json.Marshal(map[string]any{
			"model": model,
			"messages": []ChatMessage{
				{Role: "system", Content: visionSystemPrompt},
				{Role: "user", Content: []map[string]any{
					{"type": "text", "text": visionPrompt},
					{"type": "image_url", "image_url": map[string]string{"url": imageDataURL}},
				}},
			},
			"temperature": 0.2,
			"max_tokens":  1000,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
		}

		for ki, key := range s.keys() {
			if mi > 0 || ki > 0 {
				time.Sleep(500 * time.Millisecond)
			}
			cr, err := s.post(s.visionClient, key, "NutriLens Meal Analyzer", payload)
			if err != nil {
				lastErr = err
				var ue *UpstreamError
				if errors.As(err, &ue) {
					// 401/429 go to the backup key first; any exhausted
					// upstream failure moves on to the next model.
					continue
				}
				return nil, err
			}

			text := firstChoiceText(cr)
			if text == "" {
				lastErr = &UpstreamError{Status: http.StatusBadGateway, Message: "Vision model returned empty content."}
				continue
			}
			return parseVisionOutput(text)
		}
	}
	return nil, lastErr
}

var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

// extractJSONText pulls the JSON object out of model output that may be
// wrapped in markdown fences or prose, and strips trailing commas.
func extractJSONText(output string) string {
	text := output
	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+7:]
		if j := strings.Index(rest, "```"); j >= 0 {
			text = rest[:j]
		}
	} else if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+3:]
		if j := strings.Index(rest, "```"); j >= 0 {
			text = rest[:j]
		}
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return trailingCommaRe.ReplaceAllString(strings.TrimSpace(text), "$1")
}

func parseVisionOutput(output string) (*VisionResult, error) {
	jsonText := extractJSONText(output)

	var parsed visionPayload
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("Vision model returned invalid JSON. Please try again or use a different model. Error: %v", err),
		}
	}

	if parsed.IsFoodImage == nil {
		return nil, &UpstreamError{Status: http.StatusBadGateway, Message: "Vision model response missing is_food_image flag."}
	}
	if !*parsed.IsFoodImage {
		reason := strings.TrimSpace(parsed.Reason)
		if reason == "" {
			reason = "The uploaded image does not appear to contain food."
		}
		return nil, &NotFoodError{Reason: reason}
	}

	items := parsed.Items
	if items == nil {
		items = []VisionItem{}
	}
	return &VisionResult{
		DishName: parsed.DishName,
		Items:    items,
		Recipe:   parsed.Recipe,
		Summary:  parsed.Summary,
	}, nil
}
