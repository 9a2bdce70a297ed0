package store

import (
	"context"
	"slices"
	"sync"

	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

// User holds the signed-in user, persisted under UserKey.
type User struct {
	mu    sync.RWMutex
	state UserType
	local *utils.Storage
}

func newUser(ctx context.Context, local *utils.Storage) (*User, error) {
	u := &User{local: local}
	if _, err := local.GetItem(ctx, UserKey, &u.state); err != nil {
		return nil, err
	}
	return u, nil
}

// User returns a snapshot of the signed-in user.
func (u *User) User() UserType {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return cloneUser(u.state)
}

// Roles returns the signed-in user's roles.
func (u *User) Roles() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.state.Roles)
}

// SetUser signs a user in and persists it.
func (u *User) SetUser(ctx context.Context, user UserType) error {
	if user.Username == "" {
		return ErrInvalidUser
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.local.SetItem(ctx, UserKey, user); err != nil {
		return err
	}
	u.state = cloneUser(user)
	return nil
}

// Logout clears the signed-in user.
func (u *User) Logout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state = UserType{}
	return u.local.RemoveItem(ctx, UserKey)
}

// IsLoggedIn reports whether a user is signed in.
func (u *User) IsLoggedIn() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state.Username != ""
}

// HasRole reports whether the user holds any of required. An empty
// requirement is always satisfied.
func (u *User) HasRole(required []string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return route.HasAnyRole(required, u.state.Roles)
}

func cloneUser(u UserType) UserType {
	u.Roles = slices.Clone(u.Roles)
	u.Permissions = slices.Clone(u.Permissions)
	return u
}
