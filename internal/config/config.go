package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Records RecordsConfig
	CORS    CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// RecordsConfig holds the upstream records API configuration
type RecordsConfig struct {
	BaseURL      string
	AccessToken  string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Records API configuration
	fetchTimeout, err := time.ParseDuration(getEnv("RECORDS_FETCH_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECORDS_FETCH_TIMEOUT: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("RECORDS_MAX_RETRIES", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECORDS_MAX_RETRIES: %w", err)
	}

	retryBackoff, err := time.ParseDuration(getEnv("RECORDS_RETRY_BACKOFF", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECORDS_RETRY_BACKOFF: %w", err)
	}

	config.Records = RecordsConfig{
		BaseURL:      getEnv("RECORDS_API_URL", "https://monitoramento.wylken.com.br"),
		AccessToken:  getEnv("RECORDS_ACCESS_TOKEN", ""),
		Timeout:      fetchTimeout,
		MaxRetries:   maxRetries,
		RetryBackoff: retryBackoff,
	}

	// CORS configuration
	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Records.BaseURL == "" {
		return fmt.Errorf("RECORDS_API_URL is required")
	}
	if c.Records.MaxRetries < 0 {
		return fmt.Errorf("RECORDS_MAX_RETRIES must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
