package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/admin-shell/internal/config"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn    = flag.String("dsn", "", "Database connection string (defaults to the service configuration)")
		all    = flag.Bool("all", false, "Run all seeders")
		routes = flag.Bool("routes", false, "Seed async routes")
		file   = flag.String("file", "", "External seed file (overrides embedded)")
		list   = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*routes {
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-routes] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("database connection string required: use -dsn flag, %s env var, or config.toml: %v", EnvDatabaseDSN, err)
		}
		*dsn = cfg.Database.Dsn()
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *file != "" {
		if seeder, ok := getSeeder("routes"); ok {
			seeder.(*AsyncRouteSeeder).SetFile(*file)
		}
	}

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *routes:
		if err := runSeeder(ctx, db, "routes"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("async routes seeded successfully")
	}
}
