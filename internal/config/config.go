// Package config loads the service configuration from TOML files and
// FREIGHTDESK_ environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/freightdesk/pkg/database"
	"github.com/JaimeStill/freightdesk/pkg/gateway"
	"github.com/JaimeStill/freightdesk/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvFreightdeskEnv             = "FREIGHTDESK_ENV"
	EnvFreightdeskShutdownTimeout = "FREIGHTDESK_SHUTDOWN_TIMEOUT"
	EnvFreightdeskVersion         = "FREIGHTDESK_VERSION"
)

const submissionModelCalls = 2

var databaseEnv = &database.Env{
	ConnURL:         "DATABASE_URL",
	Host:            "FREIGHTDESK_DB_HOST",
	Port:            "FREIGHTDESK_DB_PORT",
	Name:            "FREIGHTDESK_DB_NAME",
	User:            "FREIGHTDESK_DB_USER",
	Password:        "FREIGHTDESK_DB_PASSWORD",
	SSLMode:         "FREIGHTDESK_DB_SSL_MODE",
	MaxOpenConns:    "FREIGHTDESK_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "FREIGHTDESK_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "FREIGHTDESK_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "FREIGHTDESK_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "FREIGHTDESK_STORAGE_CONTAINER_NAME",
	ConnectionString: "FREIGHTDESK_STORAGE_CONNECTION_STRING",
}

// Config is the root configuration for the service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	Gateway         gateway.Config  `toml:"gateway"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the FREIGHTDESK_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvFreightdeskEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return mustDuration(c.ShutdownTimeout)
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Gateway.Merge(&overlay.Gateway)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Gateway.Finalize(gatewayEnv); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}

	// A submission blocks on a classification call and then a handler call.
	if budget := submissionModelCalls * c.Gateway.TimeoutDuration(); c.Server.WriteTimeoutDuration() < budget {
		return fmt.Errorf("server: write_timeout %s is shorter than a submission's model budget %s", c.Server.WriteTimeout, budget)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvFreightdeskShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvFreightdeskVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvFreightdeskEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
