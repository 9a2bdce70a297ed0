package main

import (
	"context"
	"fmt"

	"github.com/JaimeStill/admin-shell/internal/app"
	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/internal/infrastructure"
	"github.com/JaimeStill/admin-shell/internal/remote"
	"github.com/JaimeStill/admin-shell/internal/router"
	"github.com/JaimeStill/admin-shell/internal/router/modules"
	"github.com/JaimeStill/admin-shell/internal/store"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/transport"
)

// Shell holds the navigation state served by the app handler.
type Shell struct {
	Router *router.Router
	Store  *store.Store
	App    *app.App
	load   app.Loader
}

// NewShell builds the router from the constant routes, restores the store,
// and binds async route loading to the remote fetcher.
func NewShell(cfg *config.Config, infra *infrastructure.Infrastructure) (*Shell, error) {
	rt, err := router.New(modules.Constant(), infra.Logger)
	if err != nil {
		return nil, err
	}

	client, err := transport.New(&cfg.Remote, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("remote transport: %w", err)
	}
	fetcher := remote.New(client)

	var cache *router.Cache
	if cfg.Platform.CachingAsyncRoutes {
		cache = router.NewCache(infra.Local)
	}

	load := func(ctx context.Context) ([]route.Route, error) {
		return rt.Bootstrap(ctx, fetcher, cache)
	}

	platform := cfg.GetConfig()

	st, err := store.NewStore(infra.Lifecycle.Context(), infra.Local, platform, rt.ConstantMenus(), infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	shell, err := app.New(rt, st, platform, load, infra.Logger)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Router: rt,
		Store:  st,
		App:    shell,
		load:   load,
	}, nil
}

// Restore reloads dynamic routes and menus for a user persisted as signed in.
func (s *Shell) Restore(ctx context.Context) error {
	if !s.Store.User.IsLoggedIn() {
		return nil
	}

	if _, err := s.load(ctx); err != nil {
		return err
	}

	s.Store.Permission.HandleWholeMenus(s.Router.DynamicRoutes())
	return nil
}
