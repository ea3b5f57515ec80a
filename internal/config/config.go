package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration that handlers and
// modules depend on. Tests substitute their own implementation.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetProfileAPIURL() string
	GetProfileAPITimeout() time.Duration
	GetAuthLoginURL() string
	GetLogFormat() string
	GetLogLevel() string
	GetRateLimitPerMinute() int
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr         string        `env:"SERVER_ADDR" envDefault:":8080"`
	AppBaseURL         string        `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret      string        `env:"SESSION_SECRET"`
	ProfileAPIURL      string        `env:"PROFILE_API_URL"`
	ProfileAPITimeout  time.Duration `env:"PROFILE_API_TIMEOUT" envDefault:"10s"`
	AuthLoginURL       string        `env:"AUTH_LOGIN_URL"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"debug"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// ErrMissingSessionSecret is returned when SESSION_SECRET is unset.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is not set")

// New loads configuration from the environment, reading a .env file first if
// one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionSecret == "" {
		return nil, ErrMissingSessionSecret
	}
	if cfg.ProfileAPITimeout <= 0 {
		return nil, fmt.Errorf("PROFILE_API_TIMEOUT must be positive, got %s", cfg.ProfileAPITimeout)
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimitPerMinute)
	}
	return cfg, nil
}

func (c *Config) GetServerAddr() string               { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string               { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string            { return c.SessionSecret }
func (c *Config) GetProfileAPIURL() string            { return c.ProfileAPIURL }
func (c *Config) GetProfileAPITimeout() time.Duration { return c.ProfileAPITimeout }
func (c *Config) GetAuthLoginURL() string             { return c.AuthLoginURL }
func (c *Config) GetLogFormat() string                { return c.LogFormat }
func (c *Config) GetLogLevel() string                 { return c.LogLevel }
func (c *Config) GetRateLimitPerMinute() int          { return c.RateLimitPerMinute }
