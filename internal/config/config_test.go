package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"ctws/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "secret")
	t.Setenv("DATABASE_DRIVER", "SQLite")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, "ctws.events", cfg.RabbitMQExchange)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ctws.yaml")
	content := []byte("AUTH_TOKEN: from-file\nAPP_PORT: \":9090\"\nLOG_FORMAT: json\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AuthToken)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_DRIVER", "postgres")
	v.Set("DATABASE_DSN", "host=localhost")
	v.Set("AUTH_TOKEN", "secret")
	v.Set("API_PREFIX", "/api")

	cfg := config.FromViper(v)
	assert.NoError(t, cfg.Validate())

	cfg.AuthToken = ""
	assert.ErrorContains(t, cfg.Validate(), "AUTH_TOKEN")

	cfg.AuthTokenHash = "$2a$10$abc"
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseDriver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "unsupported DATABASE_DRIVER")

	cfg.DatabaseDriver = config.DriverPostgres
	cfg.APIPrefix = "api"
	assert.ErrorContains(t, cfg.Validate(), "API_PREFIX")
}
