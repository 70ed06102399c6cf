// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Sanity content store
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityReadToken  string // optional; needed only for private datasets

	// Valkey (Redis-compatible page cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Story/contact form relay
	ContactEndpointURL string

	// Site
	SiteBaseURL string

	// RevalidateTTL is how long a rendered page may be served from cache
	// before the next request refetches from the CMS.
	RevalidateTTL time.Duration
}

// Load reads configuration from environment variables. The Sanity project,
// dataset, and contact endpoint are required in every environment: querying
// a defaulted dataset would silently serve the wrong content, so startup
// fails instead.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SanityProjectID:  os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:    os.Getenv("SANITY_DATASET"),
		SanityAPIVersion: envOrDefault("SANITY_API_VERSION", "2024-01-01"),
		SanityReadToken:  os.Getenv("SANITY_READ_TOKEN"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		ContactEndpointURL: os.Getenv("CONTACT_ENDPOINT_URL"),

		SiteBaseURL: envOrDefault("SITE_BASE_URL", "http://localhost:8080"),
	}

	if cfg.SanityProjectID == "" {
		return nil, fmt.Errorf("SANITY_PROJECT_ID must be set")
	}
	if cfg.SanityDataset == "" {
		return nil, fmt.Errorf("SANITY_DATASET must be set")
	}
	if cfg.ContactEndpointURL == "" {
		return nil, fmt.Errorf("CONTACT_ENDPOINT_URL must be set")
	}

	seconds, err := strconv.Atoi(envOrDefault("REVALIDATE_SECONDS", "300"))
	if err != nil || seconds <= 0 {
		return nil, fmt.Errorf("REVALIDATE_SECONDS must be a positive integer")
	}
	cfg.RevalidateTTL = time.Duration(seconds) * time.Second

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
