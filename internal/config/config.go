package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the EquipScan server.
type Config struct {
	Server ServerConfig
	Vision VisionConfig
	AI     AIConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

// VisionConfig configures the OCR text-extraction backend.
type VisionConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type AIConfig struct {
	Provider         string
	InferenceTimeout time.Duration
	Gemini           GeminiConfig
	OpenAI           OpenAIConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// AuthConfig configures the optional API-key gate. An empty hash disables
// authentication; RateLimitPerMin <= 0 disables rate limiting.
type AuthConfig struct {
	APIKeyHash      string
	RateLimitPerMin int
}

var validProviders = map[string]bool{
	"gemini": true,
	"openai": true,
}

// Load reads configuration from the environment (and a .env file when
// present) and returns a validated Config. Returns an error with a
// descriptive message if any required value is missing or invalid.
func Load() (*Config, error) {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("EQUIPSCAN_PORT", 8080),
			Env:  envString("EQUIPSCAN_ENV", "development"),
		},
		Vision: VisionConfig{
			APIKey:  os.Getenv("VISION_API_KEY"),
			BaseURL: envString("VISION_BASE_URL", "https://vision.googleapis.com"),
			Timeout: envDuration("VISION_TIMEOUT", 30*time.Second),
		},
		AI: AIConfig{
			Provider:         os.Getenv("AI_PROVIDER"),
			InferenceTimeout: envDurationSecs("AI_INFERENCE_TIMEOUT_SECS", 60*time.Second),
			Gemini: GeminiConfig{
				APIKey:  os.Getenv("GEMINI_API_KEY"),
				Model:   envString("GEMINI_MODEL", "gemini-2.5-flash"),
				BaseURL: envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
				Timeout: envDuration("GEMINI_TIMEOUT", 60*time.Second),
			},
			OpenAI: OpenAIConfig{
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				Model:   envString("OPENAI_MODEL", "gpt-4o"),
				BaseURL: envString("OPENAI_BASE_URL", "https://api.openai.com"),
				Timeout: envDuration("OPENAI_TIMEOUT", 60*time.Second),
			},
		},
		Auth: AuthConfig{
			APIKeyHash:      os.Getenv("EQUIPSCAN_API_KEY_HASH"),
			RateLimitPerMin: envInt("RATE_LIMIT_PER_MIN", 60),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Vision.APIKey == "" {
		return fmt.Errorf("VISION_API_KEY is required")
	}
	if !strings.HasPrefix(c.Vision.BaseURL, "http://") && !strings.HasPrefix(c.Vision.BaseURL, "https://") {
		return fmt.Errorf("VISION_BASE_URL must start with http:// or https://, got %q", c.Vision.BaseURL)
	}

	if c.AI.Provider == "" {
		return fmt.Errorf("AI_PROVIDER is required")
	}
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of gemini, openai; got %q", c.AI.Provider)
	}

	if c.AI.Provider == "gemini" && c.AI.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER is gemini")
	}
	if c.AI.Provider == "openai" && c.AI.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
