package asyncroutes

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/admin-shell/internal/router/modules"
	"github.com/JaimeStill/admin-shell/pkg/route"
)

// Validate checks a command against the route pattern rules and the paths
// and names claimed by constant routes. parentPath is the full path of the
// parent record, or empty for a top-level record.
func (cmd CreateCommand) Validate(parentPath string) error {
	if cmd.Path == "" {
		return fmt.Errorf("%w: path required", ErrInvalid)
	}
	if cmd.ParentID == nil && !strings.HasPrefix(cmd.Path, "/") {
		return fmt.Errorf("%w: top-level path %q must start with /", ErrInvalid, cmd.Path)
	}

	full := route.FullPath(parentPath, cmd.Path)
	if _, err := route.Compile(full); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if slices.Contains(modules.ReservedPaths(), full) {
		return fmt.Errorf("%w: path %s", ErrReserved, full)
	}
	if cmd.Name != "" && slices.Contains(route.Names(modules.Constant()), cmd.Name) {
		return fmt.Errorf("%w: name %s", ErrReserved, cmd.Name)
	}

	return nil
}

// Conflicts checks a command against the stored records. The tree with the
// new record added must still validate, and the new full path must not share
// a pattern shape with a stored or constant route.
func (cmd CreateCommand) Conflicts(existing []Record, parentPath string) error {
	candidate := Record{
		ParentID:  cmd.ParentID,
		Path:      cmd.Path,
		Name:      cmd.Name,
		Component: cmd.Component,
		Redirect:  cmd.Redirect,
		Meta:      cmd.Meta,
	}

	stored := BuildTree(existing)
	if err := route.Validate(BuildTree(append(slices.Clone(existing), candidate))); err != nil {
		if errors.Is(err, route.ErrDuplicateName) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	full := route.FullPath(parentPath, cmd.Path)
	p, err := route.Compile(full)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var clash string
	route.Walk(append(modules.Constant(), stored...), func(r route.Route, ancestors []route.Route) {
		if clash != "" {
			return
		}
		other := fullPathOf(r, ancestors)
		if op, err := route.Compile(other); err == nil && op.Shape() == p.Shape() {
			clash = other
		}
	})
	if clash != "" {
		return fmt.Errorf("%w: %s matches the same paths as %s", ErrDuplicate, full, clash)
	}

	return nil
}

func fullPathOf(r route.Route, ancestors []route.Route) string {
	parent := ""
	for _, a := range ancestors {
		parent = route.FullPath(parent, a.Path)
	}
	return route.FullPath(parent, r.Path)
}
