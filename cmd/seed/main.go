// Command main runs the content catalog seeder for ToolHaven.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"toolhaven/internal/config"
	"toolhaven/internal/database"
	"toolhaven/internal/seed"
)

func main() {
	demo := flag.Bool("demo", false, "Also create randomized demo drafts")
	demoPosts := flag.Int("demo-posts", 20, "Number of demo draft posts when -demo is set")
	flag.Parse()

	log.Println("🌱 Content Seeder")
	log.Println("=================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed.Run(ctx, db, seed.Options{Demo: *demo, DemoPosts: *demoPosts}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✓ Seeding complete")
}
