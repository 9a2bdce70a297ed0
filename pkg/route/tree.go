package route

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"
)

// HomeName and HomePath identify the home route, which keeps rank 0 when
// ranks are assigned by Ascending.
const (
	HomeName = "Home"
	HomePath = "/"
)

// Ascending returns a copy of routes sorted by meta rank. Top-level routes
// without a rank, other than the home route, are ranked by position (index+2)
// so they keep their relative order after any explicitly ranked routes
// preceding them. The sort is stable.
func Ascending(routes []Route) []Route {
	out := CloneAll(routes)
	for i := range out {
		if out[i].Meta.Rank == 0 && out[i].Name != HomeName && out[i].Path != HomePath {
			out[i].Meta.Rank = i + 2
		}
	}
	slices.SortStableFunc(out, func(a, b Route) int {
		return cmp.Compare(a.Meta.Rank, b.Meta.Rank)
	})
	return out
}

// FilterTree returns a copy of routes with every node whose showLink is
// false removed, recursively.
func FilterTree(routes []Route) []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if !r.Meta.ShowLink {
			continue
		}
		c := r.Clone()
		if r.Children != nil {
			c.Children = FilterTree(r.Children)
		}
		out = append(out, c)
	}
	return out
}

// FilterNoPermissionTree returns a copy of routes keeping only nodes whose
// meta roles are empty or intersect roles. Nodes whose children were all
// removed are dropped as well.
func FilterNoPermissionTree(routes []Route, roles []string) []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if !HasAnyRole(r.Meta.Roles, roles) {
			continue
		}
		c := r.Clone()
		if len(r.Children) > 0 {
			c.Children = FilterNoPermissionTree(r.Children, roles)
			if len(c.Children) == 0 {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// HasAnyRole reports whether required is empty or shares a role with held.
func HasAnyRole(required, held []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if slices.Contains(held, r) {
			return true
		}
	}
	return false
}

// FormatFlatteningRoutes flattens a route tree in pre-order: each node is
// followed by its descendants. Entries keep their children.
func FormatFlatteningRoutes(routes []Route) []Route {
	out := make([]Route, 0, len(routes))
	Walk(routes, func(r Route, _ []Route) {
		out = append(out, r.Clone())
	})
	return out
}

// Walk visits every route in pre-order. The ancestors slice holds the chain
// of parents from the root down to the visited route's parent and must not
// be retained.
func Walk(routes []Route, fn func(r Route, ancestors []Route)) {
	walk(routes, nil, fn)
}

func walk(routes []Route, ancestors []Route, fn func(Route, []Route)) {
	for _, r := range routes {
		fn(r, ancestors)
		if len(r.Children) > 0 {
			walk(r.Children, append(ancestors, r), fn)
		}
	}
}

// FullPath resolves a child path against its parent. Absolute child paths
// are returned as-is.
func FullPath(parent, child string) string {
	if strings.HasPrefix(child, "/") || parent == "" {
		return child
	}
	return path.Join(parent, child)
}

// Names returns every non-empty route name in the tree, in pre-order.
func Names(routes []Route) []string {
	var names []string
	Walk(routes, func(r Route, _ []Route) {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	})
	return names
}

// FindByName searches the tree for a route with the given name.
func FindByName(routes []Route, name string) (Route, bool) {
	var found Route
	var ok bool
	Walk(routes, func(r Route, _ []Route) {
		if !ok && r.Name == name {
			found, ok = r.Clone(), true
		}
	})
	return found, ok
}

// Validate checks that every route has a path that compiles as a router
// pattern, that names are unique across the tree, and that wildcard routes
// come last among their siblings.
func Validate(routes []Route) error {
	seen := make(map[string]string)
	return validate(routes, "", seen)
}

func validate(routes []Route, parent string, seen map[string]string) error {
	wildcardAt := -1
	for i, r := range routes {
		if r.Path == "" {
			return fmt.Errorf("%w: name %q", ErrEmptyPath, r.Name)
		}
		full := FullPath(parent, r.Path)
		p, err := Compile(full)
		if err != nil {
			return err
		}
		if p.CatchAll() {
			wildcardAt = i
		} else if wildcardAt >= 0 {
			return fmt.Errorf("%w: %s follows %s", ErrWildcardOrder, full, routes[wildcardAt].Path)
		}
		if r.Name != "" {
			if prev, ok := seen[r.Name]; ok {
				return fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateName, r.Name, prev, full)
			}
			seen[r.Name] = full
		}
		if err := validate(r.Children, full, seen); err != nil {
			return err
		}
	}
	return nil
}
