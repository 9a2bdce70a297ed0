package modules

import "github.com/JaimeStill/admin-shell/pkg/route"

// WelcomeView is the landing page component.
const WelcomeView route.Component = "views/welcome/index"

// WelcomePath is the landing page path the home route redirects to.
const WelcomePath = "/welcome"

// Home returns the home module: the root layout redirecting to the welcome page.
func Home() []route.Route {
	return []route.Route{
		{
			Path:      route.HomePath,
			Name:      route.HomeName,
			Component: route.Layout,
			Redirect:  WelcomePath,
			Meta: route.Meta{
				Icon:     "homeFilled",
				Title:    "首页",
				ShowLink: true,
				Rank:     0,
			},
			Children: []route.Route{
				{
					Path:      WelcomePath,
					Name:      "Welcome",
					Component: WelcomeView,
					Meta: route.Meta{
						Title:    "首页",
						ShowLink: true,
					},
				},
			},
		},
	}
}

// Constant returns every constant route: the home module followed by the
// remaining routes.
func Constant() []route.Route {
	return append(Home(), Remaining()...)
}

// ReservedPaths returns the full path of every constant route. Dynamic routes
// may not reuse them.
func ReservedPaths() []string {
	var paths []string
	route.Walk(Constant(), func(r route.Route, ancestors []route.Route) {
		parent := ""
		if len(ancestors) > 0 {
			parent = fullPath(ancestors)
		}
		paths = append(paths, route.FullPath(parent, r.Path))
	})
	return paths
}

func fullPath(chain []route.Route) string {
	p := ""
	for _, r := range chain {
		p = route.FullPath(p, r.Path)
	}
	return p
}
