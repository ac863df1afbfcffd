package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API   APIConfig
	Cache CacheConfig
	Mock  MockConfig
	App   AppConfig
}

type APIConfig struct {
	// BaseURL is the single configuration value all resource paths
	// hang off.
	BaseURL string
	// Prefix is the optional path prefix ("api/v1") used by hosted
	// deployments; the mock backend serves unprefixed routes.
	Prefix  string
	Timeout time.Duration
	// RateLimit caps outgoing requests per second; 0 disables it.
	RateLimit float64
	RateBurst int
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type MockConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:   getEnv("PROPGMS_API_URL", "http://localhost:3000"),
			Prefix:    getEnv("PROPGMS_API_PREFIX", ""),
			Timeout:   time.Duration(getEnvAsInt("PROPGMS_API_TIMEOUT_SECONDS", 30)) * time.Second,
			RateLimit: float64(getEnvAsInt("PROPGMS_API_RATE_LIMIT", 0)),
			RateBurst: getEnvAsInt("PROPGMS_API_RATE_BURST", 1),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			TTL:           time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Mock: MockConfig{
			Port: getEnv("MOCK_PORT", "3000"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("PROPGMS_API_URL is required")
	}

	if c.Mock.Port == "" {
		return fmt.Errorf("MOCK_PORT is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
