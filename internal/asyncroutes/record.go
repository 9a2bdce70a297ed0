// Package asyncroutes stores the dynamic route records served to the shell
// and assembles them into the route tree returned by /get-async-routes.
package asyncroutes

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-shell/pkg/route"
)

// Record is a stored route. Records with a ParentID are children of that
// record.
type Record struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Path      string     `json:"path"`
	Name      string     `json:"name,omitempty"`
	Component string     `json:"component,omitempty"`
	Redirect  string     `json:"redirect,omitempty"`
	Meta      route.Meta `json:"meta"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateCommand describes a new record.
type CreateCommand struct {
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Path      string     `json:"path"`
	Name      string     `json:"name,omitempty"`
	Component string     `json:"component,omitempty"`
	Redirect  string     `json:"redirect,omitempty"`
	Meta      route.Meta `json:"meta"`
}

// Route converts the record to a route without children.
func (r Record) Route() route.Route {
	return route.Route{
		Path:      r.Path,
		Name:      r.Name,
		Redirect:  r.Redirect,
		Component: route.Component(r.Component),
		Meta:      r.Meta,
	}
}

// BuildTree assembles records into a route tree. Input order is kept among
// siblings. Records whose parent is absent are dropped.
func BuildTree(records []Record) []route.Route {
	children := make(map[uuid.UUID][]Record)
	var roots []Record

	for _, r := range records {
		if r.ParentID == nil {
			roots = append(roots, r)
			continue
		}
		children[*r.ParentID] = append(children[*r.ParentID], r)
	}

	var build func([]Record) []route.Route
	build = func(level []Record) []route.Route {
		out := make([]route.Route, 0, len(level))
		for _, r := range level {
			rt := r.Route()
			if kids := children[r.ID]; len(kids) > 0 {
				rt.Children = build(kids)
			}
			out = append(out, rt)
		}
		return out
	}

	return build(roots)
}
