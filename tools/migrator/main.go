package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// The migrator reads the same DB_* variables as the application, so a
// single environment file drives both binaries.
func main() {
	var migrationsPath string
	var down bool

	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to the migration files")
	flag.BoolVar(&down, "down", false, "roll the schema back instead of applying it")
	flag.Parse()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		mustEnv("DB_USER"), mustEnv("DB_PASSWORD"),
		envOr("DB_ADDR", "localhost"), envOr("DB_PORT", "5432"),
		mustEnv("DB_NAME"))

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	if err != nil {
		log.Fatalf("failed to create migrator: %v", err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return
		}
		log.Fatalf("failed to apply migrations: %v", err)
	}

	log.Println("migrations applied")
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
