package api

import (
	"net/http"

	"github.com/JaimeStill/admin-shell/internal/asyncroutes"
	"github.com/JaimeStill/admin-shell/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, runtime *Runtime, domain *Domain) {
	asyncRoutesHandler := asyncroutes.NewHandler(domain.AsyncRoutes, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		asyncRoutesHandler.Routes(),
	)
}
