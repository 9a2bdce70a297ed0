// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (logging, database, storage, metrics)
// that the async route backend and the shell require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/pkg/database"
	"github.com/JaimeStill/admin-shell/pkg/lifecycle"
	"github.com/JaimeStill/admin-shell/pkg/logging"
	"github.com/JaimeStill/admin-shell/pkg/middleware"
	"github.com/JaimeStill/admin-shell/pkg/storage"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "admin_shell"

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Local     *utils.Storage
	Metrics   *middleware.Metrics
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Local:     utils.StorageLocal(store, cfg.ResponsiveStorageNameSpace()),
		Metrics:   middleware.NewMetrics(registry, MetricsNamespace),
	}, nil
}

// Start registers the database and storage systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
