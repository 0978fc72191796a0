// Package config loads configuration for the brand voice service from
// YAML files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"
)

// Default configuration values.
const (
	defaultServiceName       = "brand-voice"
	defaultServiceVersion    = "1.0.0"
	defaultServicePort       = 8085
	defaultScrapeTimeoutSec  = 60
	defaultScrapeRPS         = 5
	defaultScrapeBurst       = 5
	defaultTranscriptTimeout = 30 * time.Second
	defaultLogLevel          = "info"
)

// Config holds all configuration for the brand voice service.
type Config struct {
	Service    ServiceConfig      `yaml:"service"`
	Scrape     CollaboratorConfig `yaml:"scrape"`
	Transcript CollaboratorConfig `yaml:"transcript"`
	Logging    LoggingConfig      `yaml:"logging"`
	Auth       AuthConfig         `yaml:"auth"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"BRANDVOICE_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"       yaml:"debug"`
}

// CollaboratorConfig holds settings for one external collaborator.
type CollaboratorConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// RPS and Burst bound outbound calls; zero disables rate limiting.
	RPS   int `yaml:"rps"`
	Burst int `yaml:"burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" yaml:"level"`
	Development bool   `yaml:"development"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" yaml:"jwt_secret"`
}

// Load reads configuration from path (optional), .env files, and
// environment variables, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	var cfg Config
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}

	setDefaults(&cfg)
	// Env always wins, including over file values and defaults.
	applyEnvOverrides(&cfg)
	// The two collaborators share a config shape, so their base URLs are
	// overridden explicitly rather than via struct tags.
	if v := os.Getenv("SCRAPE_SERVICE_URL"); v != "" {
		cfg.Scrape.BaseURL = v
	}
	if v := os.Getenv("TRANSCRIPT_SERVICE_URL"); v != "" {
		cfg.Transcript.BaseURL = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.Scrape.BaseURL == "" {
		return fmt.Errorf("scrape collaborator base_url is required")
	}
	if c.Transcript.BaseURL == "" {
		return fmt.Errorf("transcript collaborator base_url is required")
	}
	if c.Scrape.Timeout <= 0 {
		return fmt.Errorf("scrape timeout must be positive, got %s", c.Scrape.Timeout)
	}
	if c.Transcript.Timeout <= 0 {
		return fmt.Errorf("transcript timeout must be positive, got %s", c.Transcript.Timeout)
	}
	if c.Service.Port <= 0 {
		return fmt.Errorf("service port must be positive, got %d", c.Service.Port)
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Scrape.Timeout == 0 {
		cfg.Scrape.Timeout = defaultScrapeTimeoutSec * time.Second
	}
	if cfg.Scrape.RPS == 0 {
		cfg.Scrape.RPS = defaultScrapeRPS
	}
	if cfg.Scrape.Burst == 0 {
		cfg.Scrape.Burst = defaultScrapeBurst
	}
	if cfg.Transcript.Timeout == 0 {
		cfg.Transcript.Timeout = defaultTranscriptTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}
