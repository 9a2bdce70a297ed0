// Package app serves the admin shell: it resolves browser paths against the
// router, applies the login and role guards, and renders the matched view
// inside the navigation layout.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/internal/router"
	"github.com/JaimeStill/admin-shell/internal/router/modules"
	"github.com/JaimeStill/admin-shell/internal/store"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/utils"
	"github.com/JaimeStill/admin-shell/pkg/web"
)

// Loader adds the dynamic routes to the router and returns them.
// (*router.Router).Bootstrap bound to a fetcher satisfies it.
type Loader func(ctx context.Context) ([]route.Route, error)

// whitelist holds the paths reachable without signing in.
var whitelist = []string{
	modules.LoginPath,
	modules.AccessDeniedPath,
	modules.ServerErrorPath,
}

// App is the shell HTTP handler.
type App struct {
	router   *router.Router
	store    *store.Store
	platform config.PlatformConfig
	load     Loader
	views    *web.TemplateSet
	logger   *slog.Logger
}

// New creates the shell over the router and store. load runs at sign-in
// when the router holds no dynamic routes; it may be nil.
func New(rt *router.Router, st *store.Store, platform config.PlatformConfig, load Loader, logger *slog.Logger) (*App, error) {
	ts, err := newTemplateSet()
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}

	return &App{
		router:   rt,
		store:    st,
		platform: platform,
		load:     load,
		views:    ts,
		logger:   logger.With("system", "app"),
	}, nil
}

// Handler returns the chi router serving the shell.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post(modules.LoginPath, a.Login)
	r.Post("/logout", a.Logout)
	r.Post("/preferences/sidebar", a.ToggleSidebar)
	r.Post("/preferences/layout", a.SetLayout)
	r.Post("/tags/close", a.CloseTag)
	r.Get("/", a.Navigate)
	r.Get("/*", a.Navigate)
	return r
}

// Navigate resolves the request path and renders its view.
func (a *App) Navigate(w http.ResponseWriter, r *http.Request) {
	a.detectDevice(r)

	match, ok := a.router.Resolve(r.URL.Path)
	if !ok {
		a.render(w, r, http.StatusNotFound, NotFoundView, "", a.shell(router.Match{}))
		return
	}

	if !a.store.User.IsLoggedIn() && !slices.Contains(whitelist, match.Path) {
		http.Redirect(w, r, loginTarget(r), http.StatusFound)
		return
	}

	if !a.store.User.HasRole(match.Route.Meta.Roles) {
		http.Redirect(w, r, modules.AccessDeniedPath, http.StatusFound)
		return
	}

	if match.Route.Redirect != "" {
		http.Redirect(w, r, match.Route.Redirect, http.StatusFound)
		return
	}

	if match.Route.Component == route.Redirect {
		target := safeRedirect("/" + strings.TrimLeft(match.Params["path"], "/\\"))
		if target == "" {
			target = route.HomePath
		}
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	if !slices.Contains(whitelist, match.Path) {
		a.track(r.Context(), match, r)
	}

	data := a.shell(match)
	if match.Route.Component == modules.LoginView {
		data.Redirect = safeRedirect(r.URL.Query().Get("redirect"))
	}

	a.render(w, r, http.StatusOK, match.Route.Component, match.Route.Meta.Title, data)
}

// Login signs the user in, loads dynamic routes when the router has none,
// and recomputes the menu tree.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.loginFailed(w, r, err)
		return
	}

	user := store.UserType{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Nickname: strings.TrimSpace(r.PostForm.Get("nickname")),
		Roles:    splitList(r.PostForm.Get("roles")),
	}

	if err := a.store.User.SetUser(r.Context(), user); err != nil {
		a.loginFailed(w, r, err)
		return
	}

	if a.load != nil && len(a.router.DynamicRoutes()) == 0 {
		if _, err := a.load(r.Context()); err != nil {
			a.logger.Warn("dynamic routes unavailable, continuing with constant routes", "error", err)
		}
	}

	menus := a.store.Permission.HandleWholeMenus(a.router.DynamicRoutes())
	a.logger.Info("user signed in", "username", user.Username, "roles", user.Roles, "menus", len(menus))

	target := safeRedirect(r.PostForm.Get("redirect"))
	if target == "" {
		target = route.HomePath
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Logout signs the user out and drops the dynamic routes.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	username := a.store.User.User().Username

	if err := a.store.User.Logout(r.Context()); err != nil {
		a.logger.Error("logout failed", "error", err)
	}

	a.store.Permission.ClearAllCachePage()
	if err := a.store.MultiTags.Reset(r.Context()); err != nil {
		a.logger.Error("tag reset failed", "error", err)
	}
	a.router.Reset()
	a.store.Permission.HandleWholeMenus(nil)

	a.logger.Info("user signed out", "username", username)
	http.Redirect(w, r, modules.LoginPath, http.StatusFound)
}

func (a *App) loginFailed(w http.ResponseWriter, r *http.Request, err error) {
	data := a.shell(router.Match{})
	data.Error = err.Error()
	data.Redirect = safeRedirect(r.PostFormValue("redirect"))

	status := http.StatusBadRequest
	if !errors.Is(err, store.ErrInvalidUser) {
		status = http.StatusInternalServerError
		a.logger.Error("login failed", "error", err)
	}
	a.render(w, r, status, modules.LoginView, "", data)
}

func (a *App) track(ctx context.Context, match router.Match, r *http.Request) {
	tag := store.MultiType{
		Path:   match.Path,
		Name:   match.Route.Name,
		Meta:   match.Route.Meta,
		Params: match.Params,
	}
	if q := r.URL.Query(); len(q) > 0 {
		tag.Query = make(map[string]string, len(q))
		for k := range q {
			tag.Query[k] = q.Get(k)
		}
	}

	if _, err := a.store.MultiTags.PushTag(ctx, tag); err != nil {
		a.logger.Warn("tag not recorded", "path", match.Path, "error", err)
	}

	if match.Route.Meta.KeepAlive && match.Route.Name != "" {
		if err := a.store.Permission.CacheOperate(store.CacheType{Mode: store.CacheAdd, Name: match.Route.Name}); err != nil {
			a.logger.Warn("page not cached", "name", match.Route.Name, "error", err)
		}
	}
}

func (a *App) detectDevice(r *http.Request) {
	device := store.DeviceDesktop
	if utils.DeviceDetection(r.UserAgent()) {
		device = store.DeviceMobile
	}
	if err := a.store.App.ToggleDevice(device); err != nil {
		a.logger.Warn("device not recorded", "error", err)
		return
	}

	if device == store.DeviceMobile && a.store.App.App().Sidebar.Opened {
		if err := a.store.App.CloseSideBar(r.Context(), true); err != nil {
			a.logger.Warn("sidebar not closed", "error", err)
		}
	}
}

func (a *App) render(w http.ResponseWriter, r *http.Request, status int, component route.Component, title string, data shellData) {
	key := string(component)
	if !a.views.Has(key) {
		key = string(DefaultView)
	}

	err := a.views.Render(w, status, shellLayout, key, web.PageData{Title: title, Data: data})
	if err == nil {
		return
	}

	a.logger.Error("view render failed", "component", component, "path", r.URL.Path, "error", err)

	fallback := a.shell(router.Match{})
	if err := a.views.Render(w, http.StatusInternalServerError, shellLayout, string(modules.ServerErrorView), web.PageData{Data: fallback}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func loginTarget(r *http.Request) string {
	if r.URL.Path == route.HomePath {
		return modules.LoginPath
	}
	return modules.LoginPath + "?redirect=" + url.QueryEscape(r.URL.RequestURI())
}

// safeRedirect accepts only local absolute paths.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return ""
	}
	return target
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
