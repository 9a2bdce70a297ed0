// Package main provides the operator console: schema migrations and
// inspection of the merged route table as the shell would build it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/pkg/logging"
)

// env carries what every command needs. Tests substitute the loader.
type env struct {
	load func() (*config.Config, error)
}

func (e *env) config() (*config.Config, *slog.Logger, error) {
	cfg, err := e.load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logging.NewWriter(&cfg.Logging, os.Stderr), nil
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "console",
		Short:         "Operate the admin shell",
		Long:          `Console applies database migrations and inspects the routes the admin shell builds from its constant modules and the async route endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		migrateCmd(e),
		routesCmd(e),
		resolveCmd(e),
	)

	return root
}

func main() {
	if err := newRootCmd(&env{load: config.Load}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
