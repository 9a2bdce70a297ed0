// Package modules declares the constant route modules registered with the
// router at startup.
package modules

import "github.com/JaimeStill/admin-shell/pkg/route"

// Views referenced by the remaining routes.
const (
	LoginView        route.Component = "views/login/index"
	AccessDeniedView route.Component = "views/error/403"
	ServerErrorView  route.Component = "views/error/500"
)

// Paths of the remaining routes.
const (
	LoginPath        = "/login"
	AccessDeniedPath = "/access-denied"
	ServerErrorPath  = "/server-error"
	RedirectPath     = "/redirect"
	RedirectTarget   = "/redirect/:path(.*)"
)

// Remaining returns the fallback routes: login, the 403 and 500 full-screen
// pages, and the redirect container whose wildcard child captures the full
// remaining path. None appear in navigation menus. Each call returns a fresh
// copy in the same order; the wildcard child is the last of its siblings.
func Remaining() []route.Route {
	return []route.Route{
		{
			Path:      LoginPath,
			Name:      "Login",
			Component: LoginView,
			Meta: route.Meta{
				Title:    "登录",
				ShowLink: false,
			},
		},
		{
			Path:      AccessDeniedPath,
			Name:      "AccessDenied",
			Component: AccessDeniedView,
			Meta: route.Meta{
				Title:    "403",
				ShowLink: false,
			},
		},
		{
			Path:      ServerErrorPath,
			Name:      "ServerError",
			Component: ServerErrorView,
			Meta: route.Meta{
				Title:    "500",
				ShowLink: false,
			},
		},
		{
			Path:      RedirectPath,
			Component: route.Layout,
			Meta: route.Meta{
				Title:    "加载中...",
				ShowLink: false,
			},
			Children: []route.Route{
				{
					Path:      RedirectTarget,
					Name:      "Redirect",
					Component: route.Redirect,
					Meta: route.Meta{
						ShowLink: false,
					},
				},
			},
		},
	}
}
