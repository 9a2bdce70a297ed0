package store

import "github.com/JaimeStill/admin-shell/internal/layout"

// SetType holds display settings.
type SetType struct {
	Title         string `json:"title"`
	FixedHeader   bool   `json:"fixedHeader"`
	HiddenSideBar bool   `json:"hiddenSideBar"`
}

// Sidebar is the sidebar display state.
type Sidebar struct {
	Opened           bool `json:"opened"`
	WithoutAnimation bool `json:"withoutAnimation"`
	IsClickCollapse  bool `json:"isClickCollapse"`
}

// ViewportSize is the client viewport in pixels.
type ViewportSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Devices reported by the client.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
)

// AppType is the application shell state.
type AppType struct {
	Sidebar      Sidebar      `json:"sidebar"`
	Layout       string       `json:"layout"`
	Device       string       `json:"device"`
	ViewportSize ViewportSize `json:"viewportSize"`
}

// UserType is the signed-in user.
type UserType struct {
	Username    string   `json:"username"`
	Nickname    string   `json:"nickname"`
	Avatar      string   `json:"avatar"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// MultiType is an open navigation tag.
type MultiType = layout.Tag

// CacheMode selects a keep-alive cache operation.
type CacheMode string

// Keep-alive cache operations.
const (
	CacheAdd     CacheMode = "add"
	CacheDelete  CacheMode = "delete"
	CacheRefresh CacheMode = "refresh"
)

// CacheType names a page to add to, delete from, or refresh in the keep-alive cache.
type CacheType struct {
	Mode CacheMode `json:"mode"`
	Name string    `json:"name"`
}

// PositionType selects a range of tags.
type PositionType struct {
	StartIndex int `json:"startIndex"`
	Length     int `json:"length"`
}
