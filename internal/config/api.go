package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/freightdesk/pkg/formatting"
	"github.com/JaimeStill/freightdesk/pkg/middleware"
	"github.com/JaimeStill/freightdesk/pkg/pagination"
)

const defaultMaxBodySize = 1024 * 1024

var corsEnv = &middleware.CORSEnv{
	Enabled:          "FREIGHTDESK_CORS_ENABLED",
	Origins:          "FREIGHTDESK_CORS_ORIGINS",
	AllowedMethods:   "FREIGHTDESK_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "FREIGHTDESK_CORS_ALLOWED_HEADERS",
	AllowCredentials: "FREIGHTDESK_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "FREIGHTDESK_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultLimit: "FREIGHTDESK_PAGINATION_DEFAULT_LIMIT",
	MaxLimit:     "FREIGHTDESK_PAGINATION_MAX_LIMIT",
}

// APIConfig holds API routing, CORS, and pagination settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
}

// MaxBodySizeBytes returns the email submission size limit, falling back
// to 1MB when MaxBodySize does not parse.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return defaultMaxBodySize
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("FREIGHTDESK_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("FREIGHTDESK_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
