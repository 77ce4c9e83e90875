// Package config loads engine configuration from environment variables: a
// .env file loaded best-effort, then one getEnv* helper per field, never a
// failing Load.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the engine and its ambient stack.
type Config struct {
	Port int `env:"PORT"`

	RefreshIntervalMinutes int  `env:"REFRESH_INTERVAL"`
	RunAnalysis            bool `env:"RUN_ANALYSIS"`

	ScrapeBaseURL    string `env:"SCRAPE_BASE_URL"`
	ScrapeAPIKey     string `env:"SCRAPE_API_KEY"`
	ScrapeTimeoutSec int    `env:"SCRAPE_TIMEOUT_SEC"`
	ScrapeRPS        int    `env:"SCRAPE_RPS"`

	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSSLMode string `env:"DB_SSLMODE"`

	PredictionCacheTTLMinutes int `env:"PREDICTION_CACHE_TTL_MIN"`
	DrawCacheTTLMinutes       int `env:"DRAW_CACHE_TTL_MIN"`
	VerifyMinIntervalSeconds int `env:"VERIFY_MIN_INTERVAL_SEC"`

	MLFeatureURL        string `env:"ML_FEATURE_URL"`
	MLFeatureTimeoutSec int    `env:"ML_FEATURE_TIMEOUT_SEC"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"`

	LogLevel string `env:"LOG_LEVEL"`
}

// Load reads Config from the environment, falling back to a `.env` file
// when present. It never fails: every field has a default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		Port: getEnvIntWithDefault("PORT", 8080),

		RefreshIntervalMinutes: getEnvIntWithDefault("REFRESH_INTERVAL", 60),
		RunAnalysis:            getEnvBoolWithDefault("RUN_ANALYSIS", true),

		ScrapeBaseURL:    getEnvWithDefault("SCRAPE_BASE_URL", "https://api.example-lottery.test"),
		ScrapeAPIKey:     os.Getenv("SCRAPE_API_KEY"),
		ScrapeTimeoutSec: getEnvIntWithDefault("SCRAPE_TIMEOUT_SEC", 30),
		ScrapeRPS:        getEnvIntWithDefault("SCRAPE_RPS", 5),

		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvWithDefault("DB_PORT", "5432"),
		DBUser:     getEnvWithDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvWithDefault("DB_NAME", "tirage"),
		DBSSLMode:  getEnvWithDefault("DB_SSLMODE", "disable"),

		PredictionCacheTTLMinutes: getEnvIntWithDefault("PREDICTION_CACHE_TTL_MIN", 10),
		DrawCacheTTLMinutes:       getEnvIntWithDefault("DRAW_CACHE_TTL_MIN", 60),
		VerifyMinIntervalSeconds:  getEnvIntWithDefault("VERIFY_MIN_INTERVAL_SEC", 60),

		MLFeatureURL:        os.Getenv("ML_FEATURE_URL"),
		MLFeatureTimeoutSec: getEnvIntWithDefault("ML_FEATURE_TIMEOUT_SEC", 10),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvWithDefault("OPENAI_MODEL", "gpt-4"),

		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
