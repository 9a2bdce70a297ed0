package asyncroutes

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-shell/pkg/pagination"
	"github.com/JaimeStill/admin-shell/pkg/route"
)

// System defines the interface for async route management.
type System interface {
	// Tree returns every record assembled into a route tree, siblings
	// ordered by rank.
	Tree(ctx context.Context) ([]route.Route, error)

	// List returns every record, ordered by rank.
	List(ctx context.Context) ([]Record, error)

	// Search returns one page of records matching the request's search
	// term against path, name and component.
	Search(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Record], error)

	// Find returns a single record.
	Find(ctx context.Context, id uuid.UUID) (*Record, error)

	// Create validates and stores a new record.
	Create(ctx context.Context, cmd CreateCommand) (*Record, error)

	// Delete removes a record and its descendants.
	Delete(ctx context.Context, id uuid.UUID) error
}
