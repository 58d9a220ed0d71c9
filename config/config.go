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
	Server   ServerConfig
	App      AppConfig
	Projects ProjectsConfig
	Identity IdentityConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	// RateLimit is the sustained number of API requests per second.
	RateLimit float64
	RateBurst int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogPretty   bool
	Version     string
}

// ProjectsConfig drives the simulated projects API.
type ProjectsConfig struct {
	FetchDelay time.Duration
	ForceError bool
	DateLayout string
}

// IdentityConfig is the mock signed-in user shown in the navbar.
type IdentityConfig struct {
	UserID    string
	UserName  string
	UserEmail string
}

type RedisConfig struct {
	URL        string
	CatalogKey string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:   getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			AllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			RateLimit:      getEnvAsFloat("API_RATE_LIMIT", 20),
			RateBurst:      getEnvAsInt("API_RATE_BURST", 40),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogPretty:   getEnvAsBool("LOG_PRETTY", false),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Projects: ProjectsConfig{
			FetchDelay: getEnvAsDuration("PROJECTS_FETCH_DELAY", 900*time.Millisecond),
			ForceError: getEnvAsBool("PROJECTS_FORCE_ERROR", false),
			DateLayout: getEnv("DATE_LAYOUT", "Jan 2, 2006"),
		},
		Identity: IdentityConfig{
			UserID:    getEnv("MOCK_USER_ID", "user-123"),
			UserName:  getEnv("MOCK_USER_NAME", "Avery Stone"),
			UserEmail: getEnv("MOCK_USER_EMAIL", "avery.stone@example.com"),
		},
		Redis: RedisConfig{
			URL:        getEnv("REDIS_URL", ""),
			CatalogKey: getEnv("REDIS_CATALOG_KEY", "projects:catalog"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Projects.FetchDelay < 0 {
		return fmt.Errorf("PROJECTS_FETCH_DELAY must not be negative")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst <= 0 {
		return fmt.Errorf("API_RATE_LIMIT and API_RATE_BURST must be positive")
	}

	if c.Redis.URL != "" && c.Redis.CatalogKey == "" {
		return fmt.Errorf("REDIS_CATALOG_KEY is required when REDIS_URL is set")
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
