package testutils

import (
	"testing"
	"time"

	"github.com/nfrund/sellerprofile/internal/config"
)

// TestSessionSecret signs session cookies in tests.
const TestSessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests returns a valid configuration with test defaults. Options
// adjust individual fields.
func ConfigForTests(t *testing.T, opts ...func(*config.Config)) *config.Config {
	t.Helper()

	cfg := &config.Config{
		ServerAddr:         ":0",
		AppBaseURL:         "http://localhost:8080",
		SessionSecret:      TestSessionSecret,
		ProfileAPITimeout:  2 * time.Second,
		AuthLoginURL:       "https://auth.example.com/login",
		LogFormat:          "text",
		LogLevel:           "error",
		RateLimitPerMinute: 1000,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithProfileAPI points the configuration at a profile API.
func WithProfileAPI(url string) func(*config.Config) {
	return func(c *config.Config) {
		c.ProfileAPIURL = url
	}
}
