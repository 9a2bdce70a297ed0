package api

import (
	"github.com/JaimeStill/admin-shell/internal/infrastructure"
	"github.com/JaimeStill/admin-shell/pkg/pagination"
)

// Runtime extends Infrastructure with an API-scoped logger and the list
// paging limits.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(infra *infrastructure.Infrastructure, paging pagination.Config) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")
	return &Runtime{
		Infrastructure: &scoped,
		Pagination:     paging,
	}
}
