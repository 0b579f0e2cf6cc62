package cmd

import (
	"fmt"
	"os"
	"time"

	"dispatch/internal/pkg/errs"
)

// Config holds every runtime setting, read from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AuthSecret   string
	AuthTokenTTL time.Duration

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	OrderStatsSchedule string
}

// LoadConfig reads the configuration from environment variables. Optional
// settings fall back to defaults; the rest are required.
func LoadConfig() (Config, error) {
	config := Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		AuthSecret:         os.Getenv("AUTH_SECRET"),
		StorageEndpoint:    os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey:   os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:   os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:      envOrDefault("STORAGE_BUCKET", "courier-documents"),
		StorageUseSSL:      os.Getenv("STORAGE_USE_SSL") == "true",
		OrderStatsSchedule: envOrDefault("ORDER_STATS_SCHEDULE", "*/5 * * * *"),
	}

	ttl, err := time.ParseDuration(envOrDefault("AUTH_TOKEN_TTL", "24h"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("AUTH_TOKEN_TTL", err)
	}
	config.AuthTokenTTL = ttl

	required := map[string]string{
		"DB_HOST":            config.DBHost,
		"DB_USER":            config.DBUser,
		"DB_PASSWORD":        config.DBPassword,
		"DB_NAME":            config.DBName,
		"AUTH_SECRET":        config.AuthSecret,
		"STORAGE_ENDPOINT":   config.StorageEndpoint,
		"STORAGE_ACCESS_KEY": config.StorageAccessKey,
		"STORAGE_SECRET_KEY": config.StorageSecretKey,
	}
	for name, value := range required {
		if value == "" {
			return Config{}, errs.NewValueIsRequiredError(name)
		}
	}

	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
