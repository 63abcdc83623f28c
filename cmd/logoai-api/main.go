package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jeffery-byte/AI-logo-generator/internal/config"
	"github.com/Jeffery-byte/AI-logo-generator/internal/database"
	"github.com/Jeffery-byte/AI-logo-generator/internal/generator"
	"github.com/Jeffery-byte/AI-logo-generator/internal/handlers"
	ratemw "github.com/Jeffery-byte/AI-logo-generator/internal/middleware"
	"github.com/Jeffery-byte/AI-logo-generator/internal/services"
	"github.com/Jeffery-byte/AI-logo-generator/internal/storage"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var store services.LogoStore
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		store = services.NewPostgresLogoStore(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory logo store")
		store = services.NewMemoryLogoStore()
	}

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s backend: %v", cfg.Backend, err)
	}
	log.Printf("Using %s generation backend (%s)", cfg.Backend, gen.Name())

	files, err := storage.NewFileStore(cfg.LogoDir)
	if err != nil {
		log.Fatalf("Failed to prepare logo directory: %v", err)
	}

	logoService := services.NewLogoService(gen, generator.NewFetcher(), files, store, cfg.BaseURL, cfg.GenerationDelay)
	analysisService := services.NewAnalysisService()
	feedbackService := services.NewFeedbackService(store)

	logoHandler := handlers.NewLogoHandler(logoService, feedbackService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	healthHandler := handlers.NewHealthHandler(cfg.Backend, files.Dir())

	rateLimiter := ratemw.NewRateLimiter(cfg.RateLimitInterval)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	app.Get("/", healthHandler.Root)
	app.Get("/static/logos/:filename", logoHandler.ServeImage)

	api := app.Group("/api/v1")
	api.Get("/health", healthHandler.Health)
	api.Post("/analyze-business", analysisHandler.Analyze)
	api.Get("/logos", logoHandler.History)
	api.Get("/logos/:logoId/download/:format", logoHandler.Download)
	api.Post("/feedback", feedbackHandler.Submit)
	api.Get("/statistics", logoHandler.Statistics)

	limited := api.Group("")
	limited.Use(ratemw.RateLimit(rateLimiter))
	limited.Post("/generate-logos", logoHandler.Generate)

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			rateLimiter.Prune(1 * time.Hour)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func newGenerator(ctx context.Context, cfg *config.Config) (generator.Generator, error) {
	switch cfg.Backend {
	case "gemini":
		return generator.NewGeminiGenerator(ctx, cfg.Gemini)
	case "vertex":
		return generator.NewVertexGenerator(ctx, cfg.Vertex)
	case "svg":
		return generator.NewSVGGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown generator backend %q", cfg.Backend)
	}
}
