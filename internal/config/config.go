// Package config reads server settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Addr    string
	GinMode string
}

// UploadConfig holds upload handling settings.
type UploadConfig struct {
	// MaxUploadBytes caps the multipart upload size.
	MaxUploadBytes int64
}

// Load reads configuration from environment variables, applying
// defaults for anything unset.
func Load() *Config {
	maxMB := getEnvIntOrDefault("SHEETVIEW_MAX_UPLOAD_MB", 50)
	if maxMB < 1 {
		maxMB = 50
	}

	return &Config{
		Server: ServerConfig{
			Addr:    getEnvOrDefault("SHEETVIEW_ADDR", ":8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxUploadBytes: int64(maxMB) * 1024 * 1024,
		},
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
