// Package api assembles the admin API module mounted under BasePath.
package api

import (
	"net/http"

	"github.com/JaimeStill/admin-shell/pkg/middleware"
	"github.com/JaimeStill/admin-shell/pkg/module"
)

// BasePath is the API module prefix.
const BasePath = "/api"

// NewModule creates the API module over the given domain systems.
func NewModule(runtime *Runtime, domain *Domain) *module.Module {
	mux := http.NewServeMux()
	registerRoutes(mux, runtime, domain)

	m := module.New(BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.Logger(runtime.Logger))

	return m
}
