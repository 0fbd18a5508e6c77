package main

import (
	"time"

	"github.com/JaimeStill/freightdesk/internal/api"
	"github.com/JaimeStill/freightdesk/internal/config"
	"github.com/JaimeStill/freightdesk/internal/infrastructure"
)

// Server owns the shared infrastructure and the HTTP listener that fronts
// the email intake API.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	s := &Server{
		infra: infra,
		http:  newHTTPServer(&cfg.Server, router, infra.Logger),
	}
	s.logConfiguration(cfg)
	return s, nil
}

func (s *Server) logConfiguration(cfg *config.Config) {
	log := s.infra.Logger

	log.Info(
		"freightdesk initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"routes", len(api.Patterns(cfg, s.infra)),
	)

	if provider := s.infra.Gateway.Provider(); provider != "" {
		log.Info("model gateway ready", "provider", provider, "timeout", cfg.Gateway.TimeoutDuration())
	} else {
		log.Warn("model gateway disabled, submissions will classify as customer")
	}

	if s.infra.Storage.Enabled() {
		log.Info("submission archive enabled", "container", cfg.Storage.ContainerName)
	}
}

// Start brings up the database and storage subsystems, then begins serving.
func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("accepting submissions")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("draining in-flight submissions", "timeout", timeout)
	return s.infra.Lifecycle.Shutdown(timeout)
}
