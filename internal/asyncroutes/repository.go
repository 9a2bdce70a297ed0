package asyncroutes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-shell/pkg/pagination"
	"github.com/JaimeStill/admin-shell/pkg/query"
	"github.com/JaimeStill/admin-shell/pkg/repository"
	"github.com/JaimeStill/admin-shell/pkg/route"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a System backed by the async_routes table.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "async-routes"),
		pagination: pagination,
	}
}

func (r *repo) Tree(ctx context.Context) ([]route.Route, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(records), nil
}

func (r *repo) List(ctx context.Context) ([]Record, error) {
	q := `SELECT ` + recordColumns + ` FROM async_routes ORDER BY rank, created_at`

	records, err := repository.QueryMany(ctx, r.db, q, nil, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query async routes: %w", err)
	}
	return records, nil
}

func (r *repo) Search(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Path", "Name", "Component")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count async routes: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query async routes: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q := `SELECT ` + recordColumns + ` FROM async_routes WHERE id = $1`

	record, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &record, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Record, error) {
	meta, err := json.Marshal(cmd.Meta)
	if err != nil {
		return nil, fmt.Errorf("encode meta: %w", err)
	}

	q := `
		INSERT INTO async_routes(parent_id, path, name, component, redirect, meta, rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + recordColumns

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		parentPath := ""
		if cmd.ParentID != nil {
			p, err := parentFullPath(ctx, tx, *cmd.ParentID)
			if err != nil {
				return Record{}, err
			}
			parentPath = p
		}

		if err := cmd.Validate(parentPath); err != nil {
			return Record{}, err
		}

		existing, err := repository.QueryMany(ctx, tx, `SELECT `+recordColumns+` FROM async_routes ORDER BY rank, created_at`, nil, scanRecord)
		if err != nil {
			return Record{}, fmt.Errorf("query async routes: %w", err)
		}
		if err := cmd.Conflicts(existing, parentPath); err != nil {
			return Record{}, err
		}

		args := []any{
			nullableID(cmd.ParentID),
			cmd.Path,
			cmd.Name,
			cmd.Component,
			cmd.Redirect,
			meta,
			cmd.Meta.Rank,
		}
		return repository.QueryOne(ctx, tx, q, args, scanRecord)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("async route created", "id", record.ID, "path", record.Path, "name", record.Name)
	return &record, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM async_routes WHERE id = $1`, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("async route deleted", "id", id)
	return nil
}

// parentFullPath joins the paths of id and its ancestors, root first.
func parentFullPath(ctx context.Context, q repository.Querier, id uuid.UUID) (string, error) {
	query := `
		WITH RECURSIVE chain AS (
			SELECT id, parent_id, path, 0 AS depth FROM async_routes WHERE id = $1
			UNION ALL
			SELECT a.id, a.parent_id, a.path, c.depth + 1
			FROM async_routes a JOIN chain c ON a.id = c.parent_id
		)
		SELECT path FROM chain ORDER BY depth DESC`

	paths, err := repository.QueryMany(ctx, q, query, []any{id}, func(s repository.Scanner) (string, error) {
		var p string
		err := s.Scan(&p)
		return p, err
	})
	if err != nil {
		return "", fmt.Errorf("query parent chain: %w", err)
	}
	if len(paths) == 0 {
		return "", ErrParentNotFound
	}

	full := ""
	for _, p := range paths {
		full = route.FullPath(full, p)
	}
	return full, nil
}
