package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopstation/backend/config"
	httpDelivery "github.com/shopstation/backend/internal/delivery/http"
	"github.com/shopstation/backend/internal/infrastructure/cache"
	"github.com/shopstation/backend/internal/infrastructure/catalog"
	"github.com/shopstation/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopStation Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Infrastructure
	catalogStore := catalog.NewSeededStore()
	matchCache := cache.NewMemoryCache()
	log.Printf("Catalog loaded: %d products", catalogStore.Len())
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Engine
	synonyms := usecase.NewSynonymStore()
	synonyms.SetDebug(cfg.Matching.EnableDebugLogging)

	matcher := usecase.NewMatchingService(synonyms, usecase.MatchConfig{
		CandidateFloor:     cfg.Matching.CandidateFloor,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	listService := usecase.NewListService(matcher, synonyms, catalogStore, matchCache, nil, usecase.ListServiceConfig{
		AcceptanceFloor:    cfg.Matching.AcceptanceFloor,
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	pricingService := usecase.NewPricingService(catalogStore, cfg.Matching.EnableDebugLogging)

	log.Printf("Matching: acceptance floor=%.2f, candidate floor=%.2f, debug=%v",
		cfg.Matching.AcceptanceFloor,
		cfg.Matching.CandidateFloor,
		cfg.Matching.EnableDebugLogging)

	// HTTP delivery
	handler := httpDelivery.NewHandler(listService, pricingService, catalogStore)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
