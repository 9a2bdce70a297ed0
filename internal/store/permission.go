package store

import (
	"slices"
	"sync"

	"github.com/JaimeStill/admin-shell/pkg/route"
)

// Permission composes the menu tree visible to the signed-in user and tracks
// the keep-alive page cache.
type Permission struct {
	mu               sync.RWMutex
	constantMenus    []route.Route
	wholeMenus       []route.Route
	flatteningRoutes []route.Route
	cachePageList    []string
	roles            func() []string
}

func newPermission(constantMenus []route.Route, roles func() []string) *Permission {
	return &Permission{
		constantMenus: route.CloneAll(constantMenus),
		roles:         roles,
	}
}

// HandleWholeMenus rebuilds the menu tree from the constant menus and the
// given dynamic routes, keeping only entries the current roles may see.
func (p *Permission) HandleWholeMenus(dynamic []route.Route) []route.Route {
	roles := p.roles()

	p.mu.Lock()
	defer p.mu.Unlock()

	all := append(route.CloneAll(p.constantMenus), route.CloneAll(dynamic)...)
	p.wholeMenus = route.FilterNoPermissionTree(route.FilterTree(route.Ascending(all)), roles)
	p.flatteningRoutes = route.FormatFlatteningRoutes(all)

	return route.CloneAll(p.wholeMenus)
}

// WholeMenus returns the menu tree from the last HandleWholeMenus call.
func (p *Permission) WholeMenus() []route.Route {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return route.CloneAll(p.wholeMenus)
}

// FlatteningRoutes returns every route from the last HandleWholeMenus call in
// pre-order.
func (p *Permission) FlatteningRoutes() []route.Route {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return route.CloneAll(p.flatteningRoutes)
}

// CacheOperate adds, deletes, or refreshes a page in the keep-alive cache.
// Refresh moves the page to the end of the list.
func (p *Permission) CacheOperate(op CacheType) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.cachePageList, op.Name)

	switch op.Mode {
	case CacheAdd:
		if i < 0 {
			p.cachePageList = append(p.cachePageList, op.Name)
		}
	case CacheDelete:
		if i >= 0 {
			p.cachePageList = slices.Delete(p.cachePageList, i, i+1)
		}
	case CacheRefresh:
		if i >= 0 {
			p.cachePageList = slices.Delete(p.cachePageList, i, i+1)
		}
		p.cachePageList = append(p.cachePageList, op.Name)
	default:
		return ErrInvalidCacheMode
	}
	return nil
}

// CachePageList returns the cached page names.
func (p *Permission) CachePageList() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.cachePageList)
}

// ClearAllCachePage empties the keep-alive cache and the menu tree.
func (p *Permission) ClearAllCachePage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wholeMenus = nil
	p.flatteningRoutes = nil
	p.cachePageList = nil
}
