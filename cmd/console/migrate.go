package main

import (
	"fmt"

	"github.com/spf13/cobra"

	schema "github.com/JaimeStill/admin-shell/internal/database"
	"github.com/JaimeStill/admin-shell/pkg/database"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back schema migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := database.ParseDirection(args[0])
			if err != nil {
				return err
			}

			cfg, logger, err := e.config()
			if err != nil {
				return err
			}

			if err := database.Migrate(&cfg.Database, schema.Migrations, schema.MigrationsDir, direction, logger); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrations %s complete\n", direction)
			return nil
		},
	}
}
