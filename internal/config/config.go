package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	OpenAI      OpenAIConfig
	TMDB        TMDBConfig
	GoogleBooks GoogleBooksConfig
	Postgres    PostgresConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Port int
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type TMDBConfig struct {
	APIKey string
}

type GoogleBooksConfig struct {
	APIKey string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8001),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o"),
		},
		TMDB: TMDBConfig{
			APIKey: getEnv("TMDB_API_KEY", "demo_key"),
		},
		GoogleBooks: GoogleBooksConfig{
			APIKey: getEnv("GOOGLE_BOOKS_API_KEY", "demo_key"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "moods"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "moods_db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Every provider credential is optional: a missing or demo value switches the
// matching component into its degraded mode instead of failing startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be in range 1-65535, got %d", c.Server.Port)
	}
	if c.Postgres.Host != "" && (c.Postgres.Port <= 0 || c.Postgres.Port > 65535) {
		return fmt.Errorf("POSTGRES_PORT must be in range 1-65535, got %d", c.Postgres.Port)
	}
	return nil
}

// LLMAvailable reports whether a model credential is configured.
func (c *Config) LLMAvailable() bool {
	return c.OpenAI.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
