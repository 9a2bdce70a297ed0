package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func resolveCmd(e *env) *cobra.Command {
	var constantOnly bool

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show the route a path resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := e.config()
			if err != nil {
				return err
			}

			r, err := buildRouter(cmd.Context(), cfg, logger, constantOnly)
			if err != nil {
				return err
			}

			m, ok := r.Resolve(args[0])
			if !ok {
				return fmt.Errorf("no route matches %s", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pattern:   %s\n", m.Pattern)
			fmt.Fprintf(out, "name:      %s\n", dash(m.Route.Name))
			fmt.Fprintf(out, "component: %s\n", dash(string(m.Route.Component)))
			if m.Route.Redirect != "" {
				fmt.Fprintf(out, "redirect:  %s\n", m.Route.Redirect)
			}
			if len(m.Route.Meta.Roles) > 0 {
				fmt.Fprintf(out, "roles:     %s\n", strings.Join(m.Route.Meta.Roles, ","))
			}

			chain := make([]string, 0, len(m.Matched))
			for _, c := range m.Matched {
				chain = append(chain, c.Path)
			}
			fmt.Fprintf(out, "matched:   %s\n", strings.Join(chain, " > "))

			for _, k := range slices.Sorted(maps.Keys(m.Params)) {
				fmt.Fprintf(out, "param:     %s=%s\n", k, m.Params[k])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&constantOnly, "constant", false, "Skip the async route fetch")

	return cmd
}
