package api

import (
	"github.com/JaimeStill/admin-shell/internal/asyncroutes"
)

// Domain holds the domain systems that comprise the API.
type Domain struct {
	AsyncRoutes asyncroutes.System
}

// NewDomain creates the domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		AsyncRoutes: asyncroutes.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
