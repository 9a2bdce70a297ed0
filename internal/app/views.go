package app

import (
	"embed"

	"github.com/JaimeStill/admin-shell/internal/router/modules"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/web"
)

//go:embed templates/layouts/*
var layoutFS embed.FS

//go:embed templates/views/*
var viewFS embed.FS

const shellLayout = "shell"

// View keys without a route in the table.
const (
	NotFoundView route.Component = "views/error/404"
	DefaultView  route.Component = "views/page"
)

var views = []web.ViewDef{
	{Key: string(modules.LoginView), Template: "login.html", Title: "登录"},
	{Key: string(modules.AccessDeniedView), Template: "403.html", Title: "403"},
	{Key: string(modules.ServerErrorView), Template: "500.html", Title: "500"},
	{Key: string(NotFoundView), Template: "404.html", Title: "404"},
	{Key: string(modules.WelcomeView), Template: "welcome.html", Title: "首页"},
	{Key: string(route.Layout), Template: "layout.html"},
	{Key: string(DefaultView), Template: "page.html"},
}

func newTemplateSet() (*web.TemplateSet, error) {
	return web.NewTemplateSet(
		layoutFS,
		viewFS,
		"templates/layouts/*.html",
		"templates/views",
		"/",
		views,
		nil,
	)
}

// MenuItem is a navigation entry with its full path resolved.
type MenuItem struct {
	Title    string
	Path     string
	Icon     string
	Children []MenuItem
}

func menuItems(routes []route.Route, parent string) []MenuItem {
	items := make([]MenuItem, 0, len(routes))
	for _, r := range routes {
		if !r.Meta.ShowLink {
			continue
		}
		full := route.FullPath(parent, r.Path)
		items = append(items, MenuItem{
			Title:    r.Meta.Title,
			Path:     full,
			Icon:     r.Meta.Icon,
			Children: menuItems(r.Children, full),
		})
	}
	return items
}
