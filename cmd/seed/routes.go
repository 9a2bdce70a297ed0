package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-shell/internal/asyncroutes"
	"github.com/JaimeStill/admin-shell/pkg/route"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&AsyncRouteSeeder{})
}

// AsyncRouteSeedData is the JSON structure of async route seed files.
type AsyncRouteSeedData struct {
	Routes []route.Route `json:"routes"`
}

// AsyncRouteSeeder saves a route tree into async_routes.
// It loads seed data from an embedded file or an external file path.
type AsyncRouteSeeder struct {
	file string
}

func (s *AsyncRouteSeeder) Name() string {
	return "routes"
}

func (s *AsyncRouteSeeder) Description() string {
	return "Seeds the async route tree served by /get-async-routes"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *AsyncRouteSeeder) SetFile(path string) {
	s.file = path
}

// Seed validates the whole tree before writing, then saves each route under
// its parent. Existing rows with the same parent and path are updated.
func (s *AsyncRouteSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	if err := validateSeed(data.Routes); err != nil {
		return err
	}

	for _, r := range data.Routes {
		if err := s.saveTree(ctx, tx, nil, r); err != nil {
			return err
		}
	}

	return nil
}

func (s *AsyncRouteSeeder) loadSeedData() (*AsyncRouteSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/async_routes.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data AsyncRouteSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

// validateSeed checks the tree as a whole and every route against the
// paths and names held by constant routes.
func validateSeed(routes []route.Route) error {
	if err := route.Validate(routes); err != nil {
		return err
	}

	var err error
	route.Walk(routes, func(r route.Route, ancestors []route.Route) {
		if err != nil {
			return
		}

		parent := ""
		for _, a := range ancestors {
			parent = route.FullPath(parent, a.Path)
		}

		cmd := asyncroutes.CreateCommand{Path: r.Path, Name: r.Name}
		if len(ancestors) > 0 {
			placeholder := uuid.Nil
			cmd.ParentID = &placeholder
		}
		if verr := cmd.Validate(parent); verr != nil {
			err = fmt.Errorf("route %s: %w", route.FullPath(parent, r.Path), verr)
		}
	})
	return err
}

func (s *AsyncRouteSeeder) saveTree(ctx context.Context, tx *sql.Tx, parentID *uuid.UUID, r route.Route) error {
	id, err := s.saveRoute(ctx, tx, parentID, r)
	if err != nil {
		return fmt.Errorf("save route %s: %w", r.Path, err)
	}

	for _, child := range r.Children {
		if err := s.saveTree(ctx, tx, &id, child); err != nil {
			return err
		}
	}
	return nil
}

func (s *AsyncRouteSeeder) saveRoute(ctx context.Context, tx *sql.Tx, parentID *uuid.UUID, r route.Route) (uuid.UUID, error) {
	const query = `
		INSERT INTO async_routes (parent_id, path, name, component, redirect, meta, rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ((COALESCE(parent_id, '00000000-0000-0000-0000-000000000000'::uuid)), path) DO UPDATE SET
			name = EXCLUDED.name,
			component = EXCLUDED.component,
			redirect = EXCLUDED.redirect,
			meta = EXCLUDED.meta,
			rank = EXCLUDED.rank
		RETURNING id`

	meta, err := json.Marshal(r.Meta)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode meta: %w", err)
	}

	var parent uuid.NullUUID
	if parentID != nil {
		parent = uuid.NullUUID{UUID: *parentID, Valid: true}
	}

	var id uuid.UUID
	err = tx.QueryRowContext(ctx, query, parent, r.Path, r.Name, string(r.Component), r.Redirect, meta, r.Meta.Rank).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
