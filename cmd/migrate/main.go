// Command migrate applies the schema explicitly, for production environments
// where the server does not auto-migrate on boot.
package main

import (
	"fmt"
	"log"

	"toolhaven/internal/config"
	"toolhaven/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("schema migration applied")
	return nil
}
