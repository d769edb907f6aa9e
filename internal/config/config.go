package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Punch    PunchConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PunchConfig holds the time-clock settings: the civil calendar used to
// group punches into days, the pairing strictness of the worked-minutes
// aggregation, and the export pagination size.
type PunchConfig struct {
	Timezone       string
	PairingMode    string // "lenient" or "strict"
	ExportPageRows int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pontoflow"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

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

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Punch/timesheet configuration
	exportPageRows, err := strconv.Atoi(getEnv("EXPORT_PAGE_ROWS", "40"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_PAGE_ROWS: %w", err)
	}

	config.Punch = PunchConfig{
		Timezone:       getEnv("PUNCH_TIMEZONE", "America/Sao_Paulo"),
		PairingMode:    getEnv("PUNCH_PAIRING_MODE", "lenient"),
		ExportPageRows: exportPageRows,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Punch.PairingMode != "lenient" && c.Punch.PairingMode != "strict" {
		return fmt.Errorf("PUNCH_PAIRING_MODE must be lenient or strict")
	}
	if _, err := time.LoadLocation(c.Punch.Timezone); err != nil {
		return fmt.Errorf("invalid PUNCH_TIMEZONE: %w", err)
	}
	if c.Punch.ExportPageRows < 1 {
		return fmt.Errorf("EXPORT_PAGE_ROWS must be positive")
	}
	return nil
}

// Location returns the civil calendar location for punch grouping.
// Validate guarantees the name loads.
func (c *Config) Location() *time.Location {
	loc, _ := time.LoadLocation(c.Punch.Timezone)
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
