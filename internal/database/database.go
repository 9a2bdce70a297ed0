// Package database embeds the service schema migrations.
package database

import "embed"

// MigrationsDir is the directory of Migrations holding the SQL files.
const MigrationsDir = "migrations"

// Migrations holds the versioned schema migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
