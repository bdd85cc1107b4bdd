package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the relief hub service
type Config struct {
	// Server
	Port     string `yaml:"port" env:"PORT" default:"9600"`
	Host     string `yaml:"host" env:"HOST" default:"0.0.0.0"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `yaml:"database_url" env:"DATABASE_URL"`
	DatabaseHost     string `yaml:"db_host" env:"DB_HOST" default:"127.0.0.1"`
	DatabasePort     string `yaml:"db_port" env:"DB_PORT" default:"5432"`
	DatabaseName     string `yaml:"db_name" env:"DB_NAME" default:"relief_hub"`
	DatabaseUser     string `yaml:"db_user" env:"DB_USER" default:"relief"`
	DatabasePassword string `yaml:"db_password" env:"DB_PASSWORD"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode" env:"DB_SSL_MODE" default:"prefer"`

	// Reporting
	ReportWindowDays int `yaml:"report_window_days" env:"REPORT_WINDOW_DAYS" default:"14"`

	// Features
	EnableRateLimit bool `yaml:"enable_rate_limit" env:"ENABLE_RATE_LIMIT" default:"true"`
}

// Load reads configuration from environment variables, applying an optional
// YAML overlay file named by CONFIG_FILE before the env values.
func Load() (*Config, error) {
	// Boolean defaults must be set before the overlay so a file value of
	// false is distinguishable from an absent key
	config := &Config{
		EnableRateLimit: true,
	}

	// YAML overlay first; explicit env vars win over file values
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", withDefault(config.Port, "9600"))
	config.Host = getEnvOrDefault("HOST", withDefault(config.Host, "0.0.0.0"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", withDefault(config.LogLevel, "info"))

	// Database configuration; every key has a documented default so a bare
	// environment still produces a usable local config
	config.DatabaseURL = getEnvOrDefault("DATABASE_URL", config.DatabaseURL)
	config.DatabaseHost = getEnvOrDefault("DB_HOST", withDefault(config.DatabaseHost, "127.0.0.1"))
	config.DatabasePort = getEnvOrDefault("DB_PORT", withDefault(config.DatabasePort, "5432"))
	config.DatabaseName = getEnvOrDefault("DB_NAME", withDefault(config.DatabaseName, "relief_hub"))
	config.DatabaseUser = getEnvOrDefault("DB_USER", withDefault(config.DatabaseUser, "relief"))
	config.DatabasePassword = getEnvOrDefault("DB_PASSWORD", config.DatabasePassword)
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", withDefault(config.DatabaseSSLMode, "prefer"))

	// Reporting window
	windowStr := getEnvOrDefault("REPORT_WINDOW_DAYS", "")
	if windowStr != "" {
		window, err := strconv.Atoi(windowStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REPORT_WINDOW_DAYS: %w", err)
		}
		config.ReportWindowDays = window
	}
	if config.ReportWindowDays == 0 {
		config.ReportWindowDays = 14
	}

	// Feature flags
	config.EnableRateLimit = getBoolEnv("ENABLE_RATE_LIMIT", config.EnableRateLimit)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate reporting window
	if c.ReportWindowDays < 1 || c.ReportWindowDays > 366 {
		return fmt.Errorf("report window must be between 1 and 366 days, got: %d", c.ReportWindowDays)
	}

	return nil
}

// DatabaseDSN builds the connection string for the configured database.
// DATABASE_URL takes precedence over the individual settings.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Helper functions

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func withDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
