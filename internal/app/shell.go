package app

import (
	"github.com/JaimeStill/admin-shell/internal/router"
	"github.com/JaimeStill/admin-shell/internal/store"
)

// shellData is the view model shared by every template.
type shellData struct {
	Match    router.Match
	Children []MenuItem
	Menus    []MenuItem
	Tags     []store.MultiType
	User     store.UserType
	Settings store.SetType
	App      store.AppType
	HideTabs bool
	Redirect string
	Error    string
}

func (a *App) shell(match router.Match) shellData {
	return shellData{
		Match:    match,
		Children: menuItems(match.Route.Children, match.Path),
		Menus:    menuItems(a.store.Permission.WholeMenus(), ""),
		Tags:     a.store.MultiTags.Tags(),
		User:     a.store.User.User(),
		Settings: a.store.Settings.Settings(),
		App:      a.store.App.App(),
		HideTabs: a.platform.HideTabs,
	}
}
