package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the process-wide configuration. It is loaded once at startup and
// handed to the components that need it; nothing mutates it afterwards.
type Config struct {
	AppPort   string
	APIPrefix string

	DatabaseDriver string
	DatabaseDSN    string

	// AuthToken is the shared bearer secret. AuthTokenHash, when set, is a
	// bcrypt hash of the same secret and takes precedence.
	AuthToken     string
	AuthTokenHash string

	RabbitMQURL      string
	RabbitMQExchange string

	LogLevel  string
	LogFormat string

	MetricsEnabled bool
}

// Load reads configuration from an optional .env file, an optional config file
// and the environment, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:ctws.db?_foreign_keys=on")
	v.SetDefault("AUTH_TOKEN", "")
	v.SetDefault("AUTH_TOKEN_HASH", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "ctws.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("METRICS_ENABLED", true)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:          v.GetString("APP_PORT"),
		APIPrefix:        v.GetString("API_PREFIX"),
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		AuthToken:        v.GetString("AUTH_TOKEN"),
		AuthTokenHash:    v.GetString("AUTH_TOKEN_HASH"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		MetricsEnabled:   v.GetBool("METRICS_ENABLED"),
	}
}

// Validate reports configuration that the service cannot start with.
func (c *Config) Validate() error {
	if c.AuthToken == "" && c.AuthTokenHash == "" {
		return errors.New("AUTH_TOKEN or AUTH_TOKEN_HASH must be set")
	}
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must be set")
	}
	if c.APIPrefix != "" && !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with '/', got %q", c.APIPrefix)
	}
	return nil
}
