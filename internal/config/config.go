package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Application identity, fixed at build time.
const (
	AppTitle       = "Dish Management API"
	AppDescription = "An API for managing restaurant dishes"
	AppVersion     = "0.1.0"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment
// variables; a local .env file may seed them before Load runs.
type Config struct {
	Server ServerConfig
	Debug  bool
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("APP_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("APP_PORT", 8000),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Debug: getEnvAsBool("APP_DEBUG", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("APP_HOST is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogLevel maps the debug flag to a logger level.
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return "info"
}

// Helper functions for reading environment variables

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
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.ToLower(valueStr) == "true"
}
