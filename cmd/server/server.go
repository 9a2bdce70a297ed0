package main

import (
	"time"

	"github.com/JaimeStill/admin-shell/internal/api"
	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/internal/infrastructure"
	"github.com/JaimeStill/admin-shell/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	runtime := api.NewRuntime(infra, cfg.Pagination)
	domain := api.NewDomain(runtime)

	shell, err := NewShell(cfg, infra)
	if err != nil {
		return nil, err
	}

	modules := NewModules(runtime, domain, shell)

	router := buildRouter(runtime, domain)
	modules.Mount(router, infra.Logger)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"remote", cfg.Remote.BaseURL,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    server.New(&cfg.Server, buildHandler(infra, router), infra.Logger),
	}, nil
}

// Start begins all subsystems and returns once the listener is bound.
// Dynamic routes for a restored session load after startup completes.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")

		if err := s.modules.Shell.Restore(s.infra.Lifecycle.Context()); err != nil {
			s.infra.Logger.Warn("restored session kept constant routes only", "error", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within the timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
