package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

// rateLimitWaitMessage rounds the remaining wait up to whole seconds so the
// user is never told to wait zero.
func rateLimitWaitMessage(wait time.Duration) string {
	seconds := int(math.Ceil(wait.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	plural := ""
	if seconds > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Rate limit: Please wait %d second%s before sending another message.", seconds, plural)
}

type chatHistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatInput struct {
	Message string             `json:"message"`
	History []chatHistoryEntry `json:"history"`
}

func ChatMessage(c *gin.Context) {
	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No message provided"})
		return
	}

	svc := chatService()
	if !svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Chat API key not configured"})
		return
	}

	if ok, wait := chatLimiter().Allow(); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"message": rateLimitWaitMessage(wait),
		})
		return
	}

	var messages []services.ChatMessage
	if prompt := config.App.ChatSystemPrompt; prompt != "" {
		messages = append(messages, services.ChatMessage{Role: "system", Content: prompt})
	}
	for _, entry := range input.History {
		if (entry.Role == "user" || entry.Role == "assistant" || entry.Role == "system") && entry.Content != "" {
			messages = append(messages, services.ChatMessage{Role: entry.Role, Content: entry.Content})
		}
	}
	messages = append(messages, services.ChatMessage{Role: "user", Content: input.Message})

	reply, err := svc.ChatCompletion(messages)
	if err != nil {
		var ue *services.UpstreamError
		if !errors.As(err, &ue) {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "OpenRouter API request failed: " + err.Error()})
			return
		}
		switch ue.Status {
		case http.StatusUnauthorized:
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"message": "Chat service rejected the provided API key. Please update CHAT_API_KEY and restart the backend.",
			})
		case http.StatusNotFound:
			lower := strings.ToLower(ue.Message)
			if strings.Contains(lower, "data policy") || strings.Contains(lower, "privacy") {
				c.JSON(http.StatusBadGateway, gin.H{
					"success": false,
					"message": "Model requires OpenRouter privacy settings to be configured. Please visit https://openrouter.ai/settings/privacy and enable \"Free model publication\" or use a different model.",
				})
			} else {
				c.JSON(http.StatusBadGateway, gin.H{
					"success": false,
					"message": fmt.Sprintf("Model not found or unavailable: %s", ue.Message),
				})
			}
		case http.StatusTooManyRequests:
			wait := ue.RetryAfter
			if wait <= 0 {
				wait = max(config.App.ChatMinInterval, 60*time.Second)
			}
			chatLimiter().Penalize(wait)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": fmt.Sprintf("OpenRouter rate limit reached. Please wait about %d seconds before trying again.", int(wait.Seconds())),
			})
		case http.StatusBadGateway:
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": ue.Message})
		default:
			c.JSON(ue.Status, gin.H{"success": false, "message": "OpenRouter API request failed: " + ue.Message})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"message": reply, "model": config.App.ChatModel},
	})
}
