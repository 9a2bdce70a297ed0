// Package store holds the shell session state: application layout, the
// signed-in user, open tags, and the permission-filtered menu tree. State that
// outlives a restart is persisted through namespaced local storage.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

// Persisted state keys, relative to the storage namespace.
const (
	LayoutKey = "layout"
	UserKey   = "user-info"
	TagsKey   = "tags"
)

// Store aggregates the state modules. Each module is safe for concurrent use.
type Store struct {
	Settings   *Settings
	App        *App
	User       *User
	MultiTags  *MultiTags
	Permission *Permission
}

// NewStore restores persisted state and returns the assembled store.
// constantMenus seeds the permission module's menu tree.
func NewStore(
	ctx context.Context,
	local *utils.Storage,
	platform config.PlatformConfig,
	constantMenus []route.Route,
	logger *slog.Logger,
) (*Store, error) {
	logger = logger.With("system", "store")

	app, err := newApp(ctx, local, platform)
	if err != nil {
		return nil, fmt.Errorf("restore app: %w", err)
	}

	user, err := newUser(ctx, local)
	if err != nil {
		return nil, fmt.Errorf("restore user: %w", err)
	}

	tags, err := newMultiTags(ctx, local, platform.MultiTagsCache)
	if err != nil {
		return nil, fmt.Errorf("restore tags: %w", err)
	}

	s := &Store{
		Settings:   newSettings(platform),
		App:        app,
		User:       user,
		MultiTags:  tags,
		Permission: newPermission(constantMenus, user.Roles),
	}

	logger.Info(
		"store restored",
		"namespace", local.Namespace(),
		"layout", app.App().Layout,
		"logged_in", user.IsLoggedIn(),
		"tags", len(tags.Tags()),
	)
	return s, nil
}
