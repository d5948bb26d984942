package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Addr       string
	SessionTTL time.Duration
	ResetTTL   time.Duration
	Database   DatabaseConfig
	OpenRouter OpenRouterConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// OpenRouterConfig holds translation backend settings
type OpenRouterConfig struct {
	BaseURL string
	// FallbackKey is used when a user has no active key of their own.
	// Optional; with no fallback and no user key, adding words fails
	// until the user configures a key.
	FallbackKey  string
	DefaultModel string
	Timeout      time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Addr:       getEnv("HTTP_ADDR", ":8080"),
		SessionTTL: getDuration("SESSION_TTL", 24*time.Hour),
		ResetTTL:   getDuration("RESET_TOKEN_TTL", time.Hour),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordvault"),
			User:     getEnv("DB_USER", "wordvault"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		OpenRouter: OpenRouterConfig{
			BaseURL:      getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			FallbackKey:  os.Getenv("OPENROUTER_API_KEY"),
			DefaultModel: getEnv("OPENROUTER_DEFAULT_MODEL", "google/gemma-3-27b-it:free"),
			Timeout:      getDuration("OPENROUTER_TIMEOUT", 30*time.Second),
		},
	}

	// Validate required fields
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Plain numbers are treated as seconds
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second
	}
	return defaultValue
}
