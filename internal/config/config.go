package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cesargomez89/audiovault/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port        string
	DataDir     string
	DBPath      string // empty means the in-memory store
	MaxUploadMB int
	LogLevel    string
	LogFormat   string
	Username    string
}

// Load loads configuration from environment variables with defaults.
// A .env file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", constants.DefaultPort),
		DataDir:     getEnv("DATA_DIR", constants.DefaultDataDir),
		DBPath:      getEnv("DB_PATH", ""),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", constants.DefaultUploadMB),
		LogLevel:    getEnv("LOG_LEVEL", constants.DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", constants.DefaultLogFormat),
		Username:    getEnv("VAULT_USERNAME", constants.DefaultUsername),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate DataDir
	if c.DataDir == "" {
		errors = append(errors, "DATA_DIR cannot be empty")
	}

	// Validate MaxUploadMB
	if c.MaxUploadMB < 1 {
		errors = append(errors, fmt.Sprintf("MAX_UPLOAD_MB must be at least 1, got: %d", c.MaxUploadMB))
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	// Validate Username
	if c.Username == "" {
		errors = append(errors, "VAULT_USERNAME cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
