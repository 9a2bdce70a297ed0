package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/JaimeStill/admin-shell/internal/layout"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

// MultiTags holds the open navigation tags. When caching is enabled the tags
// are persisted under TagsKey.
type MultiTags struct {
	mu    sync.RWMutex
	tags  []MultiType
	cache bool
	local *utils.Storage
}

func newMultiTags(ctx context.Context, local *utils.Storage, cache bool) (*MultiTags, error) {
	m := &MultiTags{cache: cache, local: local}

	if cache {
		ok, err := local.GetItem(ctx, TagsKey, &m.tags)
		if err != nil {
			return nil, err
		}
		if ok {
			return m, nil
		}
	}

	m.tags = layout.RouterArrays()
	return m, nil
}

// Tags returns the open tags in order.
func (m *MultiTags) Tags() []MultiType {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneTags(m.tags)
}

// Paths returns the path of every open tag.
func (m *MultiTags) Paths() []string {
	return utils.GetKeyList(m.Tags(), func(t MultiType) string { return t.Path })
}

// PushTag opens a tag unless one with the same path is open or the route
// hides its tag. It reports whether the tag was added.
func (m *MultiTags) PushTag(ctx context.Context, tag MultiType) (bool, error) {
	if tag.Meta.HiddenTag || tag.Path == "" {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tags {
		if t.Path == tag.Path {
			return false, nil
		}
	}

	m.tags = append(m.tags, cloneTag(tag))
	return true, m.persist(ctx)
}

// RemoveTag closes the tag with the given path. It reports whether a tag was
// removed.
func (m *MultiTags) RemoveTag(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.tags, func(t MultiType) bool { return t.Path == path })
	if i < 0 {
		return false, nil
	}

	m.tags = slices.Delete(m.tags, i, i+1)
	return true, m.persist(ctx)
}

// SpliceTags removes up to pos.Length tags starting at pos.StartIndex and
// returns them. Out of range positions are clamped.
func (m *MultiTags) SpliceTags(ctx context.Context, pos PositionType) ([]MultiType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := min(max(pos.StartIndex, 0), len(m.tags))
	end := min(start+max(pos.Length, 0), len(m.tags))
	if start == end {
		return nil, nil
	}

	removed := cloneTags(m.tags[start:end])
	m.tags = slices.Delete(m.tags, start, end)
	return removed, m.persist(ctx)
}

// Reset restores the default tags.
func (m *MultiTags) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tags = layout.RouterArrays()
	return m.persist(ctx)
}

func (m *MultiTags) persist(ctx context.Context) error {
	if !m.cache {
		return nil
	}
	return m.local.SetItem(ctx, TagsKey, m.tags)
}

func cloneTag(t MultiType) MultiType {
	t.Meta.Roles = slices.Clone(t.Meta.Roles)
	t.Meta.Auths = slices.Clone(t.Meta.Auths)
	t.Query = maps.Clone(t.Query)
	t.Params = maps.Clone(t.Params)
	return t
}

func cloneTags(tags []MultiType) []MultiType {
	out := make([]MultiType, len(tags))
	for i, t := range tags {
		out[i] = cloneTag(t)
	}
	return out
}
