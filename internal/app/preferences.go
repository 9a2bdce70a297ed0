package app

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/admin-shell/internal/store"
	"github.com/JaimeStill/admin-shell/pkg/handlers"
	"github.com/JaimeStill/admin-shell/pkg/route"
)

// ToggleSidebar flips the sidebar open state.
func (a *App) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	if err := a.store.App.ToggleSideBar(r.Context()); err != nil {
		handlers.RespondError(w, a.logger, http.StatusInternalServerError, err)
		return
	}
	a.back(w, r)
}

// SetLayout switches the navigation layout.
func (a *App) SetLayout(w http.ResponseWriter, r *http.Request) {
	err := a.store.App.SetLayout(r.Context(), r.PostFormValue("layout"))
	if errors.Is(err, store.ErrInvalidLayout) {
		handlers.RespondError(w, a.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		handlers.RespondError(w, a.logger, http.StatusInternalServerError, err)
		return
	}
	a.back(w, r)
}

// CloseTag removes the tag for the posted path.
func (a *App) CloseTag(w http.ResponseWriter, r *http.Request) {
	path := r.PostFormValue("path")

	removed, err := a.store.MultiTags.RemoveTag(r.Context(), path)
	if err != nil {
		handlers.RespondError(w, a.logger, http.StatusInternalServerError, err)
		return
	}

	if removed {
		if match, ok := a.router.Resolve(path); ok && match.Route.Name != "" {
			a.store.Permission.CacheOperate(store.CacheType{Mode: store.CacheDelete, Name: match.Route.Name})
		}
	}
	a.back(w, r)
}

// back redirects to the local page named by the form's "back" field, or home.
func (a *App) back(w http.ResponseWriter, r *http.Request) {
	target := safeRedirect(r.PostFormValue("back"))
	if target == "" {
		target = route.HomePath
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
