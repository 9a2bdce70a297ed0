package router

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/admin-shell/internal/remote"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

// AsyncRoutesKey is the storage key holding cached async route records.
const AsyncRoutesKey = "async-routes"

// Fetcher retrieves async route records. *remote.Fetcher satisfies it.
type Fetcher interface {
	GetAsyncRoutes(ctx context.Context) (*remote.Result, error)
}

// Cache persists async route records between bootstraps.
type Cache struct {
	local *utils.Storage
}

// NewCache creates a cache over namespaced local storage.
func NewCache(local *utils.Storage) *Cache {
	return &Cache{local: local}
}

// Load returns the cached records, if any.
func (c *Cache) Load(ctx context.Context) ([]json.RawMessage, bool, error) {
	var records []json.RawMessage
	ok, err := c.local.GetItem(ctx, AsyncRoutesKey, &records)
	if err != nil || !ok {
		return nil, false, err
	}
	return records, true, nil
}

// Save stores records in the cache.
func (c *Cache) Save(ctx context.Context, records []json.RawMessage) error {
	return c.local.SetItem(ctx, AsyncRoutesKey, records)
}

// Clear removes cached records.
func (c *Cache) Clear(ctx context.Context) error {
	return c.local.RemoveItem(ctx, AsyncRoutesKey)
}

// Bootstrap loads async routes and adds them to the router. When cache is
// non-nil and holds records they are used instead of fetching; fetched
// records are written back to the cache. If fetching or merging fails the
// router keeps only its current routes and the error is returned.
func (r *Router) Bootstrap(ctx context.Context, f Fetcher, cache *Cache) ([]route.Route, error) {
	records, err := r.loadRecords(ctx, f, cache)
	if err != nil {
		return nil, err
	}

	dynamic, err := route.Decode(records)
	if err != nil {
		return nil, err
	}

	if err := r.AddRoutes(dynamic); err != nil {
		return nil, fmt.Errorf("add async routes: %w", err)
	}

	return dynamic, nil
}

func (r *Router) loadRecords(ctx context.Context, f Fetcher, cache *Cache) ([]json.RawMessage, error) {
	if cache != nil {
		records, ok, err := cache.Load(ctx)
		if err != nil {
			r.logger.Warn("async route cache unreadable", "error", err)
		} else if ok {
			r.logger.Debug("async routes loaded from cache", "records", len(records))
			return records, nil
		}
	}

	result, err := f.GetAsyncRoutes(ctx)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ErrFetchFailed
	}

	if cache != nil {
		if err := cache.Save(ctx, result.Data); err != nil {
			r.logger.Warn("async route cache write failed", "error", err)
		}
	}

	r.logger.Info("async routes fetched", "records", len(result.Data))
	return result.Data, nil
}
