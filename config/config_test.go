package config

import "testing"

func validConfig() *Config {
	return &Config{
		AhaBaseURL:     "https://example.aha.io",
		AhaToken:       "token",
		CritiquePolicy: PolicyStatic,
		Port:           "8080",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateMissingPlatform(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.AhaToken = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing token")
	}

	cfg = validConfig()
	cfg.AhaBaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing base URL")
	}
}

func TestValidatePolicy(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.CritiquePolicy = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown policy")
	}

	cfg = validConfig()
	cfg.CritiquePolicy = PolicyGenerative
	if err := cfg.Validate(); err == nil {
		t.Fatalf("generative policy without an API key must be rejected")
	}

	cfg.OpenAIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("generative policy with key rejected: %v", err)
	}
}
