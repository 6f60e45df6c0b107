package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"recipe-site-backend/internal/infrastructure/database"
	"recipe-site-backend/internal/store"
)

// Store drivers
const (
	DriverCosmic   = "cosmic"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Cosmic   CosmicConfig
	Database *database.DBConfig
	Redis    RedisConfig
	Limits   LimitsConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	LogLevel       string
	AllowedOrigins []string
}

type StoreConfig struct {
	Driver string // cosmic, postgres, memory
}

// =====================================================
// COSMIC CONFIGURATION
// =====================================================

type CosmicConfig struct {
	BucketSlug     string
	ReadKey        string
	WriteKey       string // optional; without it every write fails closed
	APIURL         string
	APIEnvironment string // production, staging
	Timeout        time.Duration
}

type RedisConfig struct {
	Host     string // empty disables the rating upsert lock
	Password string
	DB       int
	LockTTL  time.Duration
	LockWait time.Duration
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type LimitsConfig struct {
	RatingFetch    int
	CommentFetch   int
	ContentDefault int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cosmicTimeout, err := getEnvDuration("COSMIC_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	lockTTL, err := getEnvDuration("RATING_LOCK_TTL", 5*time.Second)
	if err != nil {
		return nil, err
	}
	lockWait, err := getEnvDuration("RATING_LOCK_WAIT", 2*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Recipe Site API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", DriverCosmic)),
		},
		Cosmic: CosmicConfig{
			BucketSlug:     getEnv("COSMIC_BUCKET_SLUG", ""),
			ReadKey:        getEnv("COSMIC_READ_KEY", ""),
			WriteKey:       getEnv("COSMIC_WRITE_KEY", ""),
			APIURL:         getEnv("COSMIC_API_URL", ""),
			APIEnvironment: getEnv("COSMIC_API_ENVIRONMENT", "production"),
			Timeout:        cosmicTimeout,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			LockTTL:  lockTTL,
			LockWait: lockWait,
		},
		Limits: LimitsConfig{
			RatingFetch:    getEnvInt("RATING_FETCH_LIMIT", 1000),
			CommentFetch:   getEnvInt("COMMENT_FETCH_LIMIT", 50),
			ContentDefault: getEnvInt("CONTENT_DEFAULT_LIMIT", 20),
		},
	}

	if cfg.Store.Driver == DriverPostgres {
		dbConfig, err := LoadDatabaseConfig()
		if err != nil {
			return nil, err
		}
		cfg.Database = dbConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the selected driver depends on.
// A missing Cosmic write key is allowed: the store is built read-only.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverCosmic:
		if c.Cosmic.BucketSlug == "" {
			return fmt.Errorf("COSMIC_BUCKET_SLUG must be set for the cosmic store driver")
		}
		if c.Cosmic.ReadKey == "" {
			return fmt.Errorf("COSMIC_READ_KEY must be set for the cosmic store driver")
		}
	case DriverPostgres:
		if c.Database == nil {
			return fmt.Errorf("database config is required for the postgres store driver")
		}
		if c.App.Environment == "production" && c.Database.Password == "" && c.Database.URL == "" {
			return fmt.Errorf("DB_PASSWORD or DATABASE_URL must be set in production")
		}
	case DriverMemory:
		if c.App.Environment == "production" {
			return fmt.Errorf("memory store driver is not allowed in production")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Limits.RatingFetch < 1 || c.Limits.RatingFetch > store.MaxQueryLimit {
		return fmt.Errorf("RATING_FETCH_LIMIT must be between 1 and %d", store.MaxQueryLimit)
	}
	if c.Limits.CommentFetch < 1 || c.Limits.CommentFetch > store.MaxQueryLimit {
		return fmt.Errorf("COMMENT_FETCH_LIMIT must be between 1 and %d", store.MaxQueryLimit)
	}
	if c.Limits.ContentDefault < 1 {
		return fmt.Errorf("CONTENT_DEFAULT_LIMIT must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
