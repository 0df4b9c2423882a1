package config

import (
	"os"
	"strconv"

	"paypulse/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Report ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// StoreConfig selects and configures the persistence backend
type StoreConfig struct {
	// Driver is one of "memory", "file", "postgres"
	Driver string
	// DataFile is the JSON file backing the "file" driver
	DataFile string
	// DatabaseURL is required by the "postgres" driver
	DatabaseURL string
}

// ReportConfig holds report generation settings
type ReportConfig struct {
	OutputDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Store: StoreConfig{
			Driver:      getEnvOrDefault("STORE_DRIVER", "file"),
			DataFile:    getEnvOrDefault("DATA_FILE", "paypulse_data.json"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Report: ReportConfig{
			OutputDir: getEnvOrDefault("REPORT_DIR", "reports"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Store.Driver {
	case "memory":
	case "file":
		if config.Store.DataFile == "" {
			return errors.ConfigInvalid("DATA_FILE is required for the file store driver")
		}
	case "postgres":
		if config.Store.DatabaseURL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres store driver")
		}
	default:
		return errors.ConfigInvalid("STORE_DRIVER must be one of memory, file, postgres")
	}

	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
