// Package main provides the seed command, which loads the async route tree
// into the database. Seeders run alone or together in one transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
)

// Seeder populates one table set inside a caller-owned transaction.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder is called from init. Registering a name twice panics.
func registerSeeder(s Seeder) {
	if _, ok := seeders[s.Name()]; ok {
		panic(fmt.Sprintf("seeder %s registered twice", s.Name()))
	}
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, name := range slices.Sorted(maps.Keys(seeders)) {
		result = append(result, seeders[name])
	}
	return result
}

func runSeeder(ctx context.Context, db *sql.DB, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}
	return seedTx(ctx, db, []Seeder{seeder})
}

// runAllSeeders runs every seeder in name order. A failure rolls back all of
// them.
func runAllSeeders(ctx context.Context, db *sql.DB) error {
	return seedTx(ctx, db, listSeeders())
}

func seedTx(ctx context.Context, db *sql.DB, run []Seeder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range run {
		if err := s.Seed(ctx, tx); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
