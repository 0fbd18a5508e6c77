// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every domain system shares: logging, database,
// blob storage, and the model gateway.
package infrastructure

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/freightdesk/internal/config"
	"github.com/JaimeStill/freightdesk/pkg/database"
	"github.com/JaimeStill/freightdesk/pkg/gateway"
	"github.com/JaimeStill/freightdesk/pkg/lifecycle"
	"github.com/JaimeStill/freightdesk/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Gateway   gateway.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
//
// Missing provider credentials do not stop the service: the gateway is
// replaced by one that always fails, so every email classifies as the
// default category.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	gw, err := gateway.New(&cfg.Gateway, logger)
	if err != nil {
		if !errors.Is(err, gateway.ErrProvider) {
			return nil, fmt.Errorf("gateway init failed: %w", err)
		}
		logger.Warn("model gateway disabled", "error", err)
		gw = gateway.Disabled(err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Gateway:   gw,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	i.Lifecycle.Track("database", i.Database)
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
