package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds everything that isn't a datastore handle: LLM, SMTP and
// frontend settings, read from the environment once at boot.
type Settings struct {
	Port        string
	FrontendURL string
	AdminEmail  string

	// OpenRouter
	ChatAPIKey       string
	ChatAPIKeyBackup string
	ChatModel        string
	VisionModel      string
	LLMAPIURL        string
	ChatMinInterval  time.Duration
	ChatSystemPrompt string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
}

var App Settings

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	App = Settings{
		Port:        getenv("PORT", "3001"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
		AdminEmail:  os.Getenv("ADMIN_EMAIL"),

		ChatAPIKey:       os.Getenv("CHAT_API_KEY"),
		ChatAPIKeyBackup: os.Getenv("CHAT_API_KEY_BACKUP"),
		ChatModel:        getenv("CHAT_MODEL", "deepseek/deepseek-chat"),
		VisionModel:      getenv("VISION_MODEL", "openai/gpt-4o"),
		LLMAPIURL:        getenv("LLM_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		ChatMinInterval:  time.Duration(getenvFloat("CHAT_MIN_INTERVAL", 2) * float64(time.Second)),
		ChatSystemPrompt: getenv("CHAT_SYSTEM_PROMPT", defaultChatSystemPrompt),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    getenv("EMAIL_FROM", "NutriLens"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

const defaultChatSystemPrompt = "You are NutriBot, an advanced AI nutritionist assistant and certified diet advisor. " +
	"You only answer questions related to food, diet, nutrition, or cooking. " +
	"If a user asks about anything unrelated, politely refuse and redirect them back to food-related subjects. " +
	"You can calculate caloric values of meals, recommend daily intake and macronutrient distribution, " +
	"create meal plans, suggest recipes, and explain the health effects of specific foods. " +
	"Never provide medical diagnoses or recommend unsafe diets. " +
	"Tone: friendly, empathetic, professional. Use clear structure, bullet points or tables when appropriate."
