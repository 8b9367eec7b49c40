package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/YDahdah/NutriLens/config"
)

// OpenRouterService talks to the OpenRouter chat-completions API for the
// chatbot, meal photo analysis and exercise calorie estimates. A backup API
// key is tried when the primary is rejected or rate limited, and vision
// requests fall through a chain of models.
type OpenRouterService struct {
	apiKey       string
	apiKeyBackup string
	chatModel    string
	visionModel  string
	apiURL       string
	referer      string
	chatClient   *http.Client
	visionClient *http.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.App
	return &OpenRouterService{
		apiKey:       cfg.ChatAPIKey,
		apiKeyBackup: cfg.ChatAPIKeyBackup,
		chatModel:    cfg.ChatModel,
		visionModel:  cfg.VisionModel,
		apiURL:       cfg.LLMAPIURL,
		referer:      cfg.FrontendURL,
		chatClient:   &http.Client{Timeout: 30 * time.Second},
		// Vision answers on large images can take minutes.
		visionClient: &http.Client{Timeout: 180 * time.Second},
	}
}

func (s *OpenRouterService) Configured() bool { return s.apiKey != "" }

type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// UpstreamError carries the upstream HTTP status so handlers can map rate
// limits and auth failures to distinct responses.
type UpstreamError struct {
	Status     int
	Message    string
	RetryAfter time.Duration
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openrouter error %d: %s", e.Status, e.Message)
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (s *OpenRouterService) keys() []string {
	out := []string{s.apiKey}
	if s.apiKeyBackup != "" {
		out = append(out, s.apiKeyBackup)
	}
	return out
}

// post sends one chat-completions request with the given key and decodes the
// response. Upstream failures come back as *UpstreamError.
func (s *OpenRouterService) post(client *http.Client, apiKey, title string, payload []byte) (*completionResponse, error) {
	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenRouter request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", s.referer)
	req.Header.Set("X-Title", title)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenRouter: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenRouter response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		_ = json.Unmarshal(body, &ae)
		msg := ae.Error.Message
		if msg == "" {
			msg = ae.Message
		}
		if msg == "" {
			msg = string(body)
		}
		ue := &UpstreamError{Status: resp.StatusCode, Message: msg}
		if resp.StatusCode == http.StatusTooManyRequests {
			if ra, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil && ra > 0 {
				ue.RetryAfter = time.Duration(ra * float64(time.Second))
			}
		}
		return nil, ue
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter JSON: %w", err)
	}
	return &cr, nil
}

// ChatCompletion runs the conversation through the chat model and returns
// the assistant text. The backup key is tried on auth, rate-limit and server
// errors from the primary.
func (s *OpenRouterService) ChatCompletion(messages []ChatMessage) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"model":       s.chatModel,
		"messages":    messages,
		"temperature": 0.7,
		"max_tokens":  1000,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	var lastErr error
	for i, key := range s.keys() {
		if i > 0 {
			time.Sleep(500 * time.Millisecond)
		}
		cr, err := s.post(s.chatClient, key, "NutriLens Chat", payload)
		if err != nil {
			lastErr = err
			var ue *UpstreamError
			// Auth failures, rate limits and 5xx are worth retrying on the
			// backup key; anything else ends the chase.
			if errors.As(err, &ue) && (ue.Status == 401 || ue.Status == 429 || ue.Status >= 500) {
				continue
			}
			return "", err
		}
		text := firstChoiceText(cr)
		if text == "" {
			return "", &UpstreamError{Status: http.StatusBadGateway, Message: "OpenRouter API returned no content."}
		}
		return text, nil
	}
	return "", lastErr
}

// EstimateCalories asks the chat model for a calorie estimate of one
// exercise, clamped to a plausible range. The caller falls back to the MET
// table when this errors.
func (s *OpenRouterService) EstimateCalories(exerciseName string, durationMinutes float64) (float64, error) {
	prompt := fmt.Sprintf(
		"Estimate the calories burned for the following exercise:\n\nExercise: %s\nDuration: %g minutes\n\n"+
			"Please provide ONLY a single number representing the estimated calories burned. "+
			"Base your estimate on standard MET (Metabolic Equivalent of Task) values and average body weight (70kg/154lbs). "+
			"Consider the intensity level of the exercise.\n\nRespond with ONLY the number, no explanation or units.",
		exerciseName, durationMinutes,
	)

	payload, err := json.Marshal(map[string]any{
		"model":       s.chatModel,
		"messages":    []ChatMessage{{Role: "user", Content: prompt}},
		"temperature": 0.3,
		"max_tokens":  50,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal estimate payload: %w", err)
	}

	cr, err := s.post(s.chatClient, s.apiKey, "NutriLens Activity", payload)
	if err != nil {
		return 0, err
	}
	text := firstChoiceText(cr)
	m := numberPattern.FindString(text)
	if m == "" {
		return 0, fmt.Errorf("no number in model response: %q", text)
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0
	}
	if v > 2000 {
		v = 2000
	}
	return v, nil
}

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// firstChoiceText pulls the assistant text out of the first choice. The
// content field is either a plain string or a list of typed blocks.
func firstChoiceText(cr *completionResponse) string {
	if len(cr.Choices) == 0 {
		return ""
	}
	raw := cr.Choices[0].Message.Content

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &blocks); err == nil {
		var out bytes.Buffer
		for _, b := range blocks {
			if b.Type == "text" || b.Type == "output_text" || b.Type == "message" {
				out.WriteString(b.Text)
			}
		}
		return out.String()
	}
	return ""
}
