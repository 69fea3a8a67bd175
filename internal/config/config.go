package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Advisor  AdvisorConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path string
}

type AdvisorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	// Missing .env is fine, the environment wins either way.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "wealthway.db"),
		},
		Advisor: AdvisorConfig{
			APIKey:  getEnv("ADVISOR_API_KEY", ""),
			BaseURL: getEnv("ADVISOR_BASE_URL", ""),
			Model:   getEnv("ADVISOR_MODEL", "gpt-4o-mini"),
			Timeout: getDurationEnv("ADVISOR_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
	}
}

// DSN returns the SQLite connection string. Foreign keys are on even though
// the schema is a single table, so future tables inherit the right pragma.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", c.Path)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
