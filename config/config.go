package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Critique policies. Static always asks for more detail; generative lets the
// model decide whether the idea needs improvement at all.
const (
	PolicyStatic     = "static"
	PolicyGenerative = "generative"
)

type Config struct {
	AhaBaseURL      string
	AhaToken        string
	SlackWebhookURL string
	OpenAIKey       string
	OpenAIModel     string
	OpenAIBaseURL   string
	CritiquePolicy  string
	Port            string
}

// LoadConfig loads configuration from environment variables
// It first tries to load from .env file, then falls back to system environment variables
func LoadConfig() *Config {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
	}

	cfg := &Config{
		AhaBaseURL:      strings.TrimRight(getEnv("AHA_BASE_URL", ""), "/"),
		AhaToken:        getEnv("AHA_API_TOKEN", ""),
		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		CritiquePolicy:  getEnv("CRITIQUE_POLICY", ""),
		Port:            getEnv("PORT", "8080"),
	}

	// Default policy depends on whether a model key is available.
	if cfg.CritiquePolicy == "" {
		if cfg.OpenAIKey != "" {
			cfg.CritiquePolicy = PolicyGenerative
		} else {
			cfg.CritiquePolicy = PolicyStatic
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.AhaBaseURL == "" {
		return fmt.Errorf("AHA_BASE_URL is required")
	}
	if c.AhaToken == "" {
		return fmt.Errorf("AHA_API_TOKEN is required")
	}
	if c.CritiquePolicy != PolicyStatic && c.CritiquePolicy != PolicyGenerative {
		return fmt.Errorf("CRITIQUE_POLICY must be %q or %q, got %q", PolicyStatic, PolicyGenerative, c.CritiquePolicy)
	}
	if c.CritiquePolicy == PolicyGenerative && c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the generative critique policy")
	}
	return nil
}
