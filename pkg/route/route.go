// Package route defines route descriptors for the admin shell along with
// the tree utilities used to compose menus from constant and dynamic routes.
package route

import (
	"encoding/json"
	"fmt"
)

// Component is a lazy reference to a view. It is resolved against a view
// registry only when navigation reaches the route that carries it.
type Component string

// Well-known components shared by the constant route modules.
const (
	Layout   Component = "layout/index"
	Redirect Component = "layout/redirect"
)

// Route describes a mapping from a URL path pattern to a view and its
// metadata. Children are owned values; the tree carries no shared references.
type Route struct {
	Path      string    `json:"path"`
	Name      string    `json:"name,omitempty"`
	Redirect  string    `json:"redirect,omitempty"`
	Component Component `json:"component,omitempty"`
	Meta      Meta      `json:"meta"`
	Children  []Route   `json:"children,omitempty"`
}

// Meta holds the navigation metadata of a route.
type Meta struct {
	Title      string   `json:"title"`
	Icon       string   `json:"icon,omitempty"`
	ShowLink   bool     `json:"showLink"`
	ShowParent bool     `json:"showParent,omitempty"`
	Rank       int      `json:"rank,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	Auths      []string `json:"auths,omitempty"`
	KeepAlive  bool     `json:"keepAlive,omitempty"`
	FrameSrc   string   `json:"frameSrc,omitempty"`
	HiddenTag  bool     `json:"hiddenTag,omitempty"`
}

// UnmarshalJSON decodes Meta, treating an absent showLink as true.
func (m *Meta) UnmarshalJSON(data []byte) error {
	type alias Meta
	a := alias{ShowLink: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = Meta(a)
	return nil
}

// Clone returns a deep copy of the route.
func (r Route) Clone() Route {
	c := r
	c.Meta.Roles = cloneStrings(r.Meta.Roles)
	c.Meta.Auths = cloneStrings(r.Meta.Auths)
	if r.Children != nil {
		c.Children = CloneAll(r.Children)
	}
	return c
}

// CloneAll deep copies a slice of routes.
func CloneAll(routes []Route) []Route {
	if routes == nil {
		return nil
	}
	out := make([]Route, len(routes))
	for i, r := range routes {
		out[i] = r.Clone()
	}
	return out
}

// Decode converts raw route records, as returned by the async route
// endpoint, into routes. Unknown fields are ignored.
func Decode(records []json.RawMessage) ([]Route, error) {
	routes := make([]Route, 0, len(records))
	for i, rec := range records {
		var r Route
		if err := json.Unmarshal(rec, &r); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i, err)
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// Encode converts routes into raw records.
func Encode(routes []Route) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, len(routes))
	for _, r := range routes {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encode route %s: %w", r.Path, err)
		}
		records = append(records, b)
	}
	return records, nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
