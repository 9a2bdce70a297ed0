// Package layout holds the navigation defaults shared by the shell layout.
package layout

import (
	"github.com/JaimeStill/admin-shell/internal/router/modules"
	"github.com/JaimeStill/admin-shell/pkg/route"
)

// Tag is an open navigation tab.
type Tag struct {
	Path   string            `json:"path"`
	Name   string            `json:"name,omitempty"`
	Meta   route.Meta        `json:"meta"`
	Query  map[string]string `json:"query,omitempty"`
	Params map[string]string `json:"params,omitempty"`
}

// RouterArrays returns the tags every session starts with: the welcome page.
func RouterArrays() []Tag {
	return []Tag{
		{
			Path: modules.WelcomePath,
			Name: "Welcome",
			Meta: route.Meta{
				Title:    "首页",
				Icon:     "homeFilled",
				ShowLink: true,
			},
		},
	}
}
