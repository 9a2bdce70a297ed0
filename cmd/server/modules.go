package main

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-shell/internal/api"
	"github.com/JaimeStill/admin-shell/internal/asyncroutes"
	"github.com/JaimeStill/admin-shell/internal/infrastructure"
	"github.com/JaimeStill/admin-shell/internal/remote"
	"github.com/JaimeStill/admin-shell/pkg/middleware"
	"github.com/JaimeStill/admin-shell/pkg/module"
)

// Modules holds the mounted modules and the shell fallback.
type Modules struct {
	API   *module.Module
	Shell *Shell
}

func NewModules(runtime *api.Runtime, domain *api.Domain, shell *Shell) *Modules {
	return &Modules{
		API:   api.NewModule(runtime, domain),
		Shell: shell,
	}
}

func (m *Modules) Mount(router *module.Router, logger *slog.Logger) {
	router.Mount(m.API)
	router.SetFallback(middleware.Logger(logger)(m.Shell.App.Handler()))
}

func buildRouter(runtime *api.Runtime, domain *api.Domain) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /metrics", runtime.Metrics.Handler().ServeHTTP)

	asyncRoutes := asyncroutes.NewHandler(domain.AsyncRoutes, runtime.Logger, runtime.Pagination)
	router.HandleNative("GET "+remote.Endpoint, asyncRoutes.GetAsyncRoutes)

	return router
}

func buildHandler(infra *infrastructure.Infrastructure, router *module.Router) http.Handler {
	return infra.Metrics.Middleware()(router)
}
