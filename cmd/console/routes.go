package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/internal/remote"
	"github.com/JaimeStill/admin-shell/internal/router"
	"github.com/JaimeStill/admin-shell/internal/router/modules"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/transport"
)

// buildRouter creates a router over the constant modules and, unless
// constantOnly is set, merges the async routes fetched from the remote.
func buildRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, constantOnly bool) (*router.Router, error) {
	r, err := router.New(modules.Constant(), logger)
	if err != nil {
		return nil, err
	}
	if constantOnly {
		return r, nil
	}

	client, err := transport.New(&cfg.Remote, logger)
	if err != nil {
		return nil, err
	}

	if _, err := r.Bootstrap(ctx, remote.New(client), nil); err != nil {
		return nil, fmt.Errorf("fetch async routes: %w", err)
	}
	return r, nil
}

func routesCmd(e *env) *cobra.Command {
	var constantOnly bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the merged route table",
		Long:  `Fetch async routes, merge them with the constant modules, and print every route in tree order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := e.config()
			if err != nil {
				return err
			}

			r, err := buildRouter(cmd.Context(), cfg, logger, constantOnly)
			if err != nil {
				return err
			}

			return printRoutes(cmd.OutOrStdout(), r.Routes())
		},
	}

	cmd.Flags().BoolVar(&constantOnly, "constant", false, "Skip the async route fetch")

	return cmd
}

func printRoutes(w io.Writer, routes []route.Route) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tCOMPONENT\tRANK\tROLES\tMENU")

	route.Walk(routes, func(r route.Route, ancestors []route.Route) {
		parent := ""
		for _, a := range ancestors {
			parent = route.FullPath(parent, a.Path)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%t\n",
			route.FullPath(parent, r.Path),
			dash(r.Name),
			dash(string(r.Component)),
			r.Meta.Rank,
			dash(strings.Join(r.Meta.Roles, ",")),
			r.Meta.ShowLink,
		)
	})

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
