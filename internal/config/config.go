package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-builder/pkg/ai"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when OPENAI_API_KEY is unset.
var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY environment variable")

// Config holds application configuration.
type Config struct {
	Port         string
	DatabaseURL  string
	RedisURL     string
	DraftTTL     time.Duration
	ChromePath   string
	PDFPaper     string
	TemplatesDir string
	AI           ai.Config
}

// LoadDotEnv loads a .env file when one exists. Variables already set in
// the environment win.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	temp, err := getFloat("OPENAI_TEMPERATURE", ai.DefaultTemperature)
	if err != nil {
		return Config{}, err
	}
	maxTokens, err := getInt("OPENAI_MAX_TOKENS", ai.DefaultMaxTokens)
	if err != nil {
		return Config{}, err
	}
	timeout, err := getInt("OPENAI_TIMEOUT_SECONDS", 120)
	if err != nil {
		return Config{}, err
	}
	ttlHours, err := getInt("DRAFT_TTL_HOURS", 24*30)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		DraftTTL:     time.Duration(ttlHours) * time.Hour,
		ChromePath:   os.Getenv("CHROME_PATH"),
		PDFPaper:     getEnv("PDF_PAPER", "A4"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		AI: ai.Config{
			APIKey:      apiKey,
			BaseURL:     getEnv("OPENAI_BASE_URL", ai.DefaultBaseURL),
			Model:       getEnv("OPENAI_MODEL", ai.DefaultModel),
			Temperature: &temp,
			MaxTokens:   maxTokens,
			Timeout:     time.Duration(timeout) * time.Second,
		},
	}, nil
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func getFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 2 {
		return 0, fmt.Errorf("%s must be a number between 0 and 2, got %q", key, raw)
	}
	return v, nil
}
