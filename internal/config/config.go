package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Seed     SeedConfig     `toml:"seed"`
	Tunnel   TunnelConfig   `toml:"tunnel"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port        string `toml:"port"`
	Host        string `toml:"host"`
	StaticDir   string `toml:"static_dir"`
	EnableCORS  bool   `toml:"enable_cors"`
	ReadTimeout int    `toml:"read_timeout_seconds"`
}

// DatabaseConfig contains database-related configuration
type DatabaseConfig struct {
	Path           string `toml:"path"`
	MaxConnections int    `toml:"max_connections"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level          string `toml:"level"`
	Format         string `toml:"format"`
	RequestLogging bool   `toml:"request_logging"`
}

// SeedConfig controls the demo dataset generator. RandomSeed fixes the
// pseudo-random source so repeated seeding from an empty database is
// byte-for-byte reproducible.
type SeedConfig struct {
	Demo       bool  `toml:"demo"`
	RandomSeed int64 `toml:"random_seed"`
}

// TunnelConfig contains ngrok tunnel configuration
type TunnelConfig struct {
	Enabled   bool   `toml:"enabled"`
	AuthToken string `toml:"auth_token"`
	Domain    string `toml:"domain"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8508",
			Host:        "0.0.0.0",
			StaticDir:   "./static",
			EnableCORS:  true,
			ReadTimeout: 30,
		},
		Database: DatabaseConfig{
			Path:           "./fermata.db",
			MaxConnections: 5,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "text",
			RequestLogging: true,
		},
		Seed: SeedConfig{
			Demo:       true,
			RandomSeed: 42,
		},
		Tunnel: TunnelConfig{
			Enabled:   false,
			AuthToken: "",
			Domain:    "",
		},
	}
}

// LoadConfig loads configuration from a TOML file. If the file does not
// exist it is created with defaults.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.SaveToFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config file: %w", err)
		}
		return cfg, nil
	}

	// Load from file
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves the configuration to a TOML file
func (c *Config) SaveToFile(configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	header := `# Fermata Music Catalog Configuration
# This file contains all configuration options for the Fermata catalog server.
# Edit the values below to customize your server settings.

`
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}

	return nil
}

// GetAddress returns the full server address
func (c *Config) GetAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
