package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvPlatformTitle overrides the shell title.
	EnvPlatformTitle = "PLATFORM_TITLE"

	// EnvPlatformLayout overrides the default navigation layout.
	EnvPlatformLayout = "PLATFORM_LAYOUT"

	// EnvPlatformCachingAsyncRoutes overrides async route caching.
	EnvPlatformCachingAsyncRoutes = "PLATFORM_CACHING_ASYNC_ROUTES"

	// EnvPlatformMultiTagsCache overrides tag persistence.
	EnvPlatformMultiTagsCache = "PLATFORM_MULTI_TAGS_CACHE"

	// EnvPlatformStorageNameSpace overrides the persisted state key prefix.
	EnvPlatformStorageNameSpace = "PLATFORM_RESPONSIVE_STORAGE_NAMESPACE"
)

// Navigation layouts.
const (
	LayoutVertical   = "vertical"
	LayoutHorizontal = "horizontal"
	LayoutMix        = "mix"
)

// PlatformConfig holds the shell presentation settings.
type PlatformConfig struct {
	Title                      string `toml:"title" json:"title"`
	Version                    string `toml:"-" json:"version"`
	Layout                     string `toml:"layout" json:"layout"`
	Theme                      string `toml:"theme" json:"theme"`
	Locale                     string `toml:"locale" json:"locale"`
	KeepAlive                  bool   `toml:"keep_alive" json:"keepAlive"`
	HideTabs                   bool   `toml:"hide_tabs" json:"hideTabs"`
	SidebarStatus              bool   `toml:"sidebar_status" json:"sidebarStatus"`
	MultiTagsCache             bool   `toml:"multi_tags_cache" json:"multiTagsCache"`
	CachingAsyncRoutes         bool   `toml:"caching_async_routes" json:"cachingAsyncRoutes"`
	ResponsiveStorageNameSpace string `toml:"responsive_storage_namespace" json:"responsiveStorageNameSpace"`
}

// Finalize applies defaults, loads environment overrides, and validates the platform configuration.
func (c *PlatformConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
// Boolean flags always take the overlay value.
func (c *PlatformConfig) Merge(overlay *PlatformConfig) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Layout != "" {
		c.Layout = overlay.Layout
	}
	if overlay.Theme != "" {
		c.Theme = overlay.Theme
	}
	if overlay.Locale != "" {
		c.Locale = overlay.Locale
	}
	if overlay.ResponsiveStorageNameSpace != "" {
		c.ResponsiveStorageNameSpace = overlay.ResponsiveStorageNameSpace
	}
	c.KeepAlive = overlay.KeepAlive
	c.HideTabs = overlay.HideTabs
	c.SidebarStatus = overlay.SidebarStatus
	c.MultiTagsCache = overlay.MultiTagsCache
	c.CachingAsyncRoutes = overlay.CachingAsyncRoutes
}

func (c *PlatformConfig) loadDefaults() {
	if c.Title == "" {
		c.Title = "Admin Shell"
	}
	if c.Layout == "" {
		c.Layout = LayoutVertical
	}
	if c.Theme == "" {
		c.Theme = "light"
	}
	if c.Locale == "" {
		c.Locale = "zh"
	}
	if c.ResponsiveStorageNameSpace == "" {
		c.ResponsiveStorageNameSpace = "responsive-"
	}
}

func (c *PlatformConfig) loadEnv() {
	if v := os.Getenv(EnvPlatformTitle); v != "" {
		c.Title = v
	}
	if v := os.Getenv(EnvPlatformLayout); v != "" {
		c.Layout = v
	}
	if v := os.Getenv(EnvPlatformCachingAsyncRoutes); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.CachingAsyncRoutes = b
		}
	}
	if v := os.Getenv(EnvPlatformMultiTagsCache); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.MultiTagsCache = b
		}
	}
	if v := os.Getenv(EnvPlatformStorageNameSpace); v != "" {
		c.ResponsiveStorageNameSpace = v
	}
}

func (c *PlatformConfig) validate() error {
	switch c.Layout {
	case LayoutVertical, LayoutHorizontal, LayoutMix:
	default:
		return fmt.Errorf("invalid layout: %s (must be vertical, horizontal, or mix)", c.Layout)
	}
	return nil
}
