// README: Config loader with env defaults for HTTP, AI provider, history, quota, maps and identity.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
	ProviderOpenAI    = "openai"
)

var ErrMissing = errors.New("config: required variable not set")

type AIConfig struct {
	Provider  string
	Model     string
	BaseURL   string
	GeminiKey string
	OpenAIKey string
	// Timeout bounds one suggestion request; zero means no deadline.
	Timeout time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level string
	}
	AI      AIConfig
	History struct {
		RedisAddr string
		Limit     int
	}
	Quota struct {
		DSN     string
		Monthly int
	}
	Maps struct {
		APIKey string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
}

// Load reads a .env file when present, then the environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("PAYANA_HTTP_ADDR", ":8080")
	cfg.Log.Level = envOrDefault("PAYANA_LOG_LEVEL", "info")

	cfg.AI.Provider = strings.ToLower(envOrDefault("PAYANA_AI_PROVIDER", ProviderGemini))
	cfg.AI.Model = os.Getenv("PAYANA_AI_MODEL")
	cfg.AI.BaseURL = os.Getenv("PAYANA_AI_BASE_URL")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	timeout, err := envOrDefaultDuration("PAYANA_AI_TIMEOUT", 0)
	if err != nil {
		return cfg, err
	}
	cfg.AI.Timeout = timeout

	cfg.History.RedisAddr = os.Getenv("PAYANA_REDIS_ADDR")
	cfg.History.Limit = envOrDefaultInt("PAYANA_HISTORY_LIMIT", 20)

	cfg.Quota.DSN = os.Getenv("PAYANA_DB_DSN")
	cfg.Quota.Monthly = envOrDefaultInt("PAYANA_QUOTA_MONTHLY", 100)

	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	cfg.Firebase.ProjectID = os.Getenv("PAYANA_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("PAYANA_FIREBASE_CREDENTIALS")

	switch cfg.AI.Provider {
	case ProviderGemini, ProviderGeminiSDK:
		if cfg.AI.GeminiKey == "" {
			return cfg, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissing)
		}
	case ProviderOpenAI:
		if cfg.AI.OpenAIKey == "" {
			return cfg, fmt.Errorf("%w: OPENAI_API_KEY", ErrMissing)
		}
	default:
		return cfg, fmt.Errorf("config: unknown PAYANA_AI_PROVIDER %q", cfg.AI.Provider)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
