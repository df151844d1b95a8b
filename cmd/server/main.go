package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Waschdachs-Git/RepFinder/config"
	httpDelivery "github.com/Waschdachs-Git/RepFinder/internal/delivery/http"
	"github.com/Waschdachs-Git/RepFinder/internal/infrastructure/cache"
	"github.com/Waschdachs-Git/RepFinder/internal/infrastructure/clicks"
	"github.com/Waschdachs-Git/RepFinder/internal/infrastructure/feed"
	"github.com/Waschdachs-Git/RepFinder/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting RepFinder Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	snapshots := cache.NewSnapshotCache(cfg.Cache.TTL)
	loader := feed.NewLoader(cfg.Feed, snapshots)

	switch {
	case cfg.Feed.CSVURL != "":
		log.Printf("Feed: CSV export at %s", cfg.Feed.CSVURL)
	case cfg.Feed.SpreadsheetID != "":
		log.Printf("Feed: spreadsheet %s (range %s)", cfg.Feed.SpreadsheetID, cfg.Feed.Range)
	default:
		log.Printf("WARNING: no remote feed configured, falling back to %s or builtin data", cfg.Feed.LocalPath)
	}

	clickStore := clicks.NewStore(cfg.Clicks.Path)
	log.Printf("Click counters: %s (%d known products)", cfg.Clicks.Path, len(clickStore.ReadAll()))

	contactSheet := feed.NewContactSheet(cfg)

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		loader,
		clickStore,
		usecase.CatalogServiceConfig{
			MaxPageSize:     cfg.Query.MaxPageSize,
			DefaultPageSize: cfg.Query.DefaultPageSize,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, clickStore, contactSheet, cfg)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
