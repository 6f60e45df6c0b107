package config

import (
	"fmt"
	"os"
	"strconv"

	"recipe-site-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the PostgreSQL settings used by STORE_DRIVER=postgres.
// DATABASE_URL, when set, replaces the individual DB_* connection fields.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := getEnvIntStrict("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvIntStrict("DB_MAX_CONNECTIONS", 10)
	if err != nil {
		return nil, err
	}
	maxRetries, err := getEnvIntStrict("DB_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}
	connectTimeout, err := getEnvDuration("DB_CONNECT_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	return &database.DBConfig{
		URL:            getEnv("DATABASE_URL", ""),
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           port,
		Username:       getEnv("DB_USER", "recipes"),
		Password:       getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "recipes_dev"),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		MaxConns:       int32(maxConns),
		MaxRetries:     maxRetries,
		ConnectTimeout: connectTimeout,
	}, nil
}

// getEnvIntStrict is getEnvInt for settings where a typo must fail startup.
func getEnvIntStrict(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
