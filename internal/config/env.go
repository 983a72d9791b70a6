package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Port           string
	DatasetSource  string
	DatasetPath    string
	SessionTTL     time.Duration
	HistoryLimit   int
	RateLimitRPS   float64
	RateLimitBurst int

	OpenAIAPIKey      string
	STTLanguage       string
	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:              getEnv("APP_PORT", "3000"),
		DatasetSource:     getEnv("DATASET_SOURCE", "embedded"),
		DatasetPath:       getEnv("DATASET_PATH", ""),
		SessionTTL:        getDuration("CHAT_SESSION_TTL", 24*time.Hour),
		HistoryLimit:      getInt("CHAT_HISTORY_LIMIT", 100),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getInt("RATE_LIMIT_BURST", 10),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		STTLanguage:       getEnv("STT_LANGUAGE", "en"),
		ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsVoiceID: getEnv("ELEVENLABS_VOICE_ID", ""),
	}

	if getEnv("JWT_ACCESS_TOKEN_SECRET", "") == "" {
		return nil, fmt.Errorf("JWT_ACCESS_TOKEN_SECRET is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("CHAT_SESSION_TTL must be positive")
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("CHAT_HISTORY_LIMIT must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
