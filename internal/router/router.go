// Package router resolves navigation paths against the merged route table:
// constant routes registered at startup plus dynamic routes fetched from the
// backend. Matching is delegated to a chi multiplexer rebuilt whenever the
// table changes.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/admin-shell/pkg/route"
)

// Match is the result of resolving a path.
type Match struct {
	// Route is the matched route.
	Route route.Route

	// Matched holds the chain of routes from the top level down to Route.
	Matched []route.Route

	// Params maps parameter names to captured values.
	Params map[string]string

	// Pattern is the full path pattern of Route as written.
	Pattern string

	// Path is the resolved path without query or fragment.
	Path string
}

type entry struct {
	route   route.Route
	chain   []route.Route
	pattern *route.Pattern
	full    string
}

// Router holds the constant and dynamic route tables. It is safe for
// concurrent use.
type Router struct {
	mu       sync.RWMutex
	constant []route.Route
	dynamic  []route.Route
	mux      *chi.Mux
	entries  map[string]entry
	logger   *slog.Logger
}

// New creates a router over the constant routes.
func New(constant []route.Route, logger *slog.Logger) (*Router, error) {
	if err := route.Validate(constant); err != nil {
		return nil, fmt.Errorf("constant routes: %w", err)
	}

	r := &Router{
		constant: route.CloneAll(constant),
		logger:   logger.With("system", "router"),
	}

	mux, entries, err := build(r.constant)
	if err != nil {
		return nil, fmt.Errorf("constant routes: %w", err)
	}
	r.mux, r.entries = mux, entries

	r.logger.Info("router initialized", "routes", len(entries))
	return r, nil
}

// AddRoutes merges dynamic routes into the table. The merged table must
// validate, and dynamic routes may not reuse a constant route path. On error
// the table is left unchanged.
func (r *Router) AddRoutes(dynamic []route.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reserved := fullPaths(r.constant)
	for _, p := range fullPaths(dynamic) {
		if slices.Contains(reserved, p) {
			return fmt.Errorf("%w: %s", ErrReservedPath, p)
		}
	}

	next := append(route.CloneAll(r.dynamic), route.CloneAll(dynamic)...)
	all := append(route.CloneAll(r.constant), next...)

	if err := route.Validate(all); err != nil {
		return err
	}

	mux, entries, err := build(all)
	if err != nil {
		return err
	}

	r.dynamic = next
	r.mux, r.entries = mux, entries

	r.logger.Info("routes added", "added", len(dynamic), "routes", len(entries))
	return nil
}

// Reset drops every dynamic route, leaving only the constant routes.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	mux, entries, err := build(r.constant)
	if err != nil {
		// constant routes were validated and built in New
		panic(err)
	}

	r.dynamic = nil
	r.mux, r.entries = mux, entries

	r.logger.Info("router reset", "routes", len(entries))
}

// Resolve matches a path, ignoring any query string or fragment.
func (r *Router) Resolve(path string) (Match, bool) {
	path, _, _ = strings.Cut(path, "#")
	path, _, _ = strings.Cut(path, "?")
	if path == "" {
		path = "/"
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) || len(rctx.RoutePatterns) == 0 {
		return Match{}, false
	}

	e, ok := r.entries[rctx.RoutePatterns[len(rctx.RoutePatterns)-1]]
	if !ok {
		return Match{}, false
	}

	params := make(map[string]string)
	for _, name := range e.pattern.Params() {
		params[name] = rctx.URLParam(e.pattern.Key(name))
	}

	return Match{
		Route:   e.route.Clone(),
		Matched: route.CloneAll(e.chain),
		Params:  params,
		Pattern: e.full,
		Path:    path,
	}, true
}

// Routes returns the constant routes followed by the dynamic routes.
func (r *Router) Routes() []route.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(route.CloneAll(r.constant), route.CloneAll(r.dynamic)...)
}

// DynamicRoutes returns the routes added since the last Reset.
func (r *Router) DynamicRoutes() []route.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return route.CloneAll(r.dynamic)
}

// HasRoute reports whether a route with the given name is registered.
func (r *Router) HasRoute(name string) bool {
	_, ok := route.FindByName(r.Routes(), name)
	return ok
}

// ConstantMenus returns the constant routes that belong in navigation menus,
// ordered by rank.
func (r *Router) ConstantMenus() []route.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return route.FilterTree(route.Ascending(r.constant))
}

func build(routes []route.Route) (mux *chi.Mux, entries map[string]entry, err error) {
	mux = chi.NewRouter()
	entries = make(map[string]entry)

	defer func() {
		if rec := recover(); rec != nil {
			mux, entries = nil, nil
			err = fmt.Errorf("%w: %v", ErrPathConflict, rec)
		}
	}()

	noop := func(http.ResponseWriter, *http.Request) {}
	shapes := make(map[string]string)

	var buildErr error
	route.Walk(routes, func(rt route.Route, ancestors []route.Route) {
		if buildErr != nil {
			return
		}

		full := route.FullPath(chainPath(ancestors), rt.Path)
		p, err := route.Compile(full)
		if err != nil {
			buildErr = err
			return
		}
		if prev, ok := shapes[p.Shape()]; ok {
			buildErr = fmt.Errorf("%w: %s and %s", ErrPathConflict, prev, full)
			return
		}
		shapes[p.Shape()] = full

		chain := append(route.CloneAll(ancestors), rt.Clone())
		entries[p.Chi()] = entry{route: rt.Clone(), chain: chain, pattern: p, full: full}
		mux.Get(p.Chi(), noop)
	})

	if buildErr != nil {
		return nil, nil, buildErr
	}
	return mux, entries, nil
}

func chainPath(chain []route.Route) string {
	p := ""
	for _, r := range chain {
		p = route.FullPath(p, r.Path)
	}
	return p
}

func fullPaths(routes []route.Route) []string {
	var paths []string
	route.Walk(routes, func(r route.Route, ancestors []route.Route) {
		paths = append(paths, route.FullPath(chainPath(ancestors), r.Path))
	})
	return paths
}
