// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/freightdesk/internal/config"
	"github.com/JaimeStill/freightdesk/internal/infrastructure"
	"github.com/JaimeStill/freightdesk/pkg/middleware"
	"github.com/JaimeStill/freightdesk/pkg/module"
	"github.com/JaimeStill/freightdesk/pkg/routes"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(
		middleware.CORS(&cfg.API.CORS),
		middleware.Logger(runtime.Logger),
	)

	return m, nil
}

// Patterns lists every route the API module serves, relative to its base path.
func Patterns(cfg *config.Config, infra *infrastructure.Infrastructure) []string {
	runtime := NewRuntime(cfg, infra)
	return routes.Patterns(groups(NewDomain(runtime), runtime)...)
}
