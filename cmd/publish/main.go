// Command main publishes draft blog posts in bulk.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"toolhaven/internal/config"
	"toolhaven/internal/database"
	"toolhaven/internal/publish"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: publish [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Publishes draft blog posts. Pick exactly one selector:")
	fmt.Fprintln(os.Stderr, "  -slugs post-a,post-b     publish the named drafts")
	fmt.Fprintln(os.Stderr, "  -start N -end M          publish drafts N through M, oldest first (1-based)")
	fmt.Fprintln(os.Stderr, "  -all                     publish every draft")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}

func main() {
	slugs := flag.String("slugs", "", "Comma-separated post slugs to publish")
	start := flag.Int("start", 0, "First draft to publish, 1-based, ordered by creation time")
	end := flag.Int("end", 0, "Last draft to publish, inclusive")
	all := flag.Bool("all", false, "Publish every unpublished post")
	flag.Usage = usage
	flag.Parse()

	if flag.NFlag() == 0 || (len(flag.Args()) > 0 && flag.Args()[0] == "help") {
		usage()
		return
	}

	opts := publish.Options{Start: *start, End: *end, All: *all}
	if *slugs != "" {
		for _, slug := range strings.Split(*slugs, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				opts.Slugs = append(opts.Slugs, slug)
			}
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := publish.Run(ctx, db, opts)
	if err != nil {
		log.Fatalf("❌ Publish failed: %v", err)
	}

	log.Printf("✓ %d post(s) published", count)
}
