package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Search   SearchConfig
	Scorer   ScorerConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timeout  time.Duration
}

type RedisConfig struct {
	URL string
}

type SearchConfig struct {
	Host    string
	APIKey  string
	Index   string
	Timeout time.Duration
}

type ScorerConfig struct {
	BaseURL string
	Timeout time.Duration
}

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

type AuthConfig struct {
	// ServiceTokenSecret enables the HS256 service-token guard on the
	// v1 API group when non-empty.
	ServiceTokenSecret string
}

func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnvRequired("DB_HOST"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvRequired("DB_NAME"),
			User:     getEnvRequired("FEED_COMPOSER_DB_USER"),
			Password: getEnvRequired("FEED_COMPOSER_DB_PASSWORD"),
			SSLMode:  getEnvOrDefault("DB_SSL_MODE", "prefer"),
			Timeout:  10 * time.Second,
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379"),
		},
		Search: SearchConfig{
			Host:    getEnvRequired("MEILISEARCH_HOST"),
			APIKey:  getEnvOrDefault("MEILISEARCH_API_KEY", ""),
			Index:   getEnvOrDefault("MEILISEARCH_INDEX", "library_items"),
			Timeout: 15 * time.Second,
		},
		Scorer: ScorerConfig{
			BaseURL: getEnvRequired("SCORER_URL"),
			Timeout: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":9400"),
			ReadHeaderTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			ServiceTokenSecret: getEnvOrDefault("SERVICE_TOKEN_SECRET", ""),
		},
	}

	slog.Info("Configuration loaded",
		"db_host", cfg.Database.Host,
		"meilisearch_host", cfg.Search.Host,
		"scorer_url", cfg.Scorer.BaseURL,
		"http_addr", cfg.HTTP.Addr,
	)

	return cfg, nil
}

func (c *DatabaseConfig) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func getEnvRequired(key string) string {
	// Check for _FILE suffix (Docker Secrets)
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
