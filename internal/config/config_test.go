package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Seed.Demo)
	assert.Equal(t, int64(42), cfg.Seed.RandomSeed)
	assert.False(t, cfg.Tunnel.Enabled)
}

func TestLoadConfigCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	// Second load reads the created file back
	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = "9000"

[database]
path = "/tmp/other.db"

[logging]
level = "debug"

[seed]
demo = false
random_seed = 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Seed.Demo)
	assert.Equal(t, int64(7), cfg.Seed.RandomSeed)
	// Unset sections keep defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"empty host", func(c *Config) { c.Server.Host = "" }},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -1 }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"zero max connections", func(c *Config) { c.Database.MaxConnections = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoggingApply(t *testing.T) {
	logger := logrus.New()

	cfg := LoggingConfig{Level: "debug", Format: "json"}
	require.NoError(t, cfg.Apply(logger))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	bad := LoggingConfig{Level: "nope", Format: "text"}
	assert.Error(t, bad.Apply(logger))
}
