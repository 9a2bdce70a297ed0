package asyncroutes

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-shell/pkg/query"
	"github.com/JaimeStill/admin-shell/pkg/repository"
)

const recordColumns = `id, parent_id, path, name, component, redirect, meta, created_at`

// projection selects the same columns as recordColumns, in the same order,
// so scanRecord serves both.
var projection = query.NewProjectionMap("public", "async_routes", "r").
	Project("id", "ID").
	Project("parent_id", "ParentID").
	Project("path", "Path").
	Project("name", "Name").
	Project("component", "Component").
	Project("redirect", "Redirect").
	Project("meta", "Meta").
	Project("created_at", "CreatedAt")

const defaultSort = "Path"

func scanRecord(s repository.Scanner) (Record, error) {
	var (
		r        Record
		parentID uuid.NullUUID
		meta     []byte
	)

	err := s.Scan(&r.ID, &parentID, &r.Path, &r.Name, &r.Component, &r.Redirect, &meta, &r.CreatedAt)
	if err != nil {
		return r, err
	}

	if parentID.Valid {
		id := parentID.UUID
		r.ParentID = &id
	}

	if err := json.Unmarshal(meta, &r.Meta); err != nil {
		return r, fmt.Errorf("decode meta for %s: %w", r.ID, err)
	}

	return r, nil
}

func nullableID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
