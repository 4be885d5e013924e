// Package main implements the database migration utility for the
// wakecall service.
package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/infrastructure/migrate"
)

const defaultMigrationsPath = "./migrations"

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Please specify a command: up, down, or version")
	}
	command := os.Args[1]

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger)

	switch command {
	case "up":
		if err := runner.Run(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

	case "down":
		if err := runner.Rollback(); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		log.Println("Rolled back one migration")

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		log.Fatalf("Unknown command: %s. Use 'up', 'down', or 'version'", command)
	}
}
