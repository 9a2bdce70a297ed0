package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment.
// Requests that match no module go to the native mux, then to the fallback
// handler when one is set.
type Router struct {
	modules  map[string]*Module
	native   *http.ServeMux
	fallback http.Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native mux using a
// method-qualified ServeMux pattern.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix, replacing any module already
// mounted there.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// SetFallback sets the handler for requests matching neither a module nor
// a native route. The request path is passed through unmodified.
func (r *Router) SetFallback(h http.Handler) {
	r.fallback = h
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.modules[prefixOf(req.URL.Path)]; ok {
		normalized := req
		if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			normalized = req.Clone(req.Context())
			normalized.URL.Path = strings.TrimSuffix(p, "/")
			normalized.URL.RawPath = ""
		}
		m.Serve(w, normalized)
		return
	}

	if _, pattern := r.native.Handler(req); pattern != "" || r.fallback == nil {
		r.native.ServeHTTP(w, req)
		return
	}

	r.fallback.ServeHTTP(w, req)
}

func prefixOf(path string) string {
	rest := strings.TrimPrefix(path, "/")
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return "/" + rest
}
