// Package routes declares HTTP handlers as groups of routes under a common
// prefix and registers them on a multiplexer.
package routes

import "net/http"

// Route binds a method and pattern to a handler. The pattern is relative to
// the enclosing group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Patterns returns the full method-qualified pattern of every route in the
// group and its children.
func (g Group) Patterns() []string {
	return g.patterns("")
}

func (g Group) patterns(parent string) []string {
	prefix := parent + g.Prefix

	var out []string
	for _, r := range g.Routes {
		out = append(out, r.Method+" "+prefix+r.Pattern)
	}
	for _, child := range g.Children {
		out = append(out, child.patterns(prefix)...)
	}
	return out
}

// Register adds every route in groups to mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
	}
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}
