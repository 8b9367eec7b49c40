package services

import (
	"errors"
	"testing"
)

func TestParseVisionOutput_Plain(t *testing.T) {
	out, err := parseVisionOutput(`{"is_food_image": true, "items": [{"name": "rice", "confidence": 0.9, "calories": 200}], "summary": "A bowl of rice."}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Name != "rice" {
		t.Errorf("items = %+v, want one rice item", out.Items)
	}
	if out.Summary != "A bowl of rice." {
		t.Errorf("summary = %q", out.Summary)
	}
}

func TestParseVisionOutput_MarkdownFence(t *testing.T) {
	raw := "Here is the analysis:\n```json\n{\"is_food_image\": true, \"items\": [{\"name\": \"salad\", \"confidence\": 0.8, \"calories\": 120},], \"summary\": \"ok\"}\n```"
	out, err := parseVisionOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Name != "salad" {
		t.Errorf("items = %+v, want one salad item", out.Items)
	}
}

func TestParseVisionOutput_NotFood(t *testing.T) {
	_, err := parseVisionOutput(`{"is_food_image": false, "reason": "This is a photo of a car."}`)
	var nf *NotFoodError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoodError, got %v", err)
	}
	if nf.Reason != "This is a photo of a car." {
		t.Errorf("reason = %q", nf.Reason)
	}
}

func TestParseVisionOutput_NotFoodDefaultReason(t *testing.T) {
	_, err := parseVisionOutput(`{"is_food_image": false}`)
	var nf *NotFoodError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoodError, got %v", err)
	}
	if nf.Reason == "" {
		t.Error("expected a default reason")
	}
}

func TestParseVisionOutput_MissingFlag(t *testing.T) {
	_, err := parseVisionOutput(`{"items": []}`)
	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Status != 502 {
		t.Fatalf("expected 502 UpstreamError, got %v", err)
	}
}

func TestExtractJSONText_SurroundingProse(t *testing.T) {
	got := extractJSONText("Sure! {\"a\": 1} Hope that helps.")
	if got != `{"a": 1}` {
		t.Errorf("extractJSONText = %q", got)
	}
}
