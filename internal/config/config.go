package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ClientConfig is the part of the configuration needed to talk to the COLI
// API. The sign-up CLI loads only this.
type ClientConfig struct {
	// APIBaseURL is the origin of the COLI REST API.
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:5050"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`
}

// Config holds all configuration for the web server.
type Config struct {
	ClientConfig

	Addr string `env:"APP_ADDR" envDefault:":8080"`

	// AssetBaseURL is the origin profile images are served from.
	AssetBaseURL string `env:"ASSET_BASE_URL" envDefault:"http://localhost:5050"`

	SessionSecret string `env:"SESSION_SECRET,required"`

	// SignUpRate is the sustained sign-up attempts per second per client IP;
	// SignUpBurst is how many may arrive at once.
	SignUpRate  float64 `env:"SIGNUP_RATE" envDefault:"0.2"`
	SignUpBurst int     `env:"SIGNUP_BURST" envDefault:"10"`
}

// New loads configuration from the environment, reading a .env file first if
// one is present.
func New() (*Config, error) {
	loadDotEnv()
	return Parse(env.Options{})
}

// NewClient loads only the API client configuration.
func NewClient() (*ClientConfig, error) {
	loadDotEnv()
	return ParseClient(env.Options{})
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
}

// Parse builds a Config with the given env options. Tests pass an explicit
// Environment map.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseClient builds a ClientConfig with the given env options.
func ParseClient(opts env.Options) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < 16 {
		return errors.New("SESSION_SECRET must be at least 16 characters")
	}
	if c.SignUpRate <= 0 || c.SignUpBurst <= 0 {
		return fmt.Errorf("invalid sign-up rate limit %v/%d: must be positive", c.SignUpRate, c.SignUpBurst)
	}
	return c.ClientConfig.Validate()
}

// Validate checks the client settings.
func (c *ClientConfig) Validate() error {
	if c.APITimeout <= 0 {
		return fmt.Errorf("invalid API_TIMEOUT %s: must be positive", c.APITimeout)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid MAX_UPLOAD_BYTES %d: must be positive", c.MaxUploadBytes)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q (must be: text, json)", c.LogFormat)
	}
	return nil
}
