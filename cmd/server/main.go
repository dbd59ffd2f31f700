package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cesargomez89/audiovault/internal/app"
	"github.com/cesargomez89/audiovault/internal/auth"
	"github.com/cesargomez89/audiovault/internal/config"
	httpapp "github.com/cesargomez89/audiovault/internal/http"
	"github.com/cesargomez89/audiovault/internal/logger"
	"github.com/cesargomez89/audiovault/internal/storage"
	"github.com/cesargomez89/audiovault/internal/store"
	"github.com/cesargomez89/audiovault/internal/store/memory"
	"github.com/cesargomez89/audiovault/internal/store/sqlite"
)

func main() {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Initialize Store: sqlite when DB_PATH is set, in-memory otherwise
	var s store.Store
	if cfg.DBPath != "" {
		db, err := sqlite.New(cfg.DBPath)
		if err != nil {
			appLogger.Error("Failed to open database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		s = db
		appLogger.Info("Using sqlite store", "path", cfg.DBPath)
	} else {
		s = memory.New()
		appLogger.Info("Using in-memory store")
	}
	defer s.Close()

	if err := storage.EnsureDir(cfg.DataDir); err != nil {
		appLogger.Error("Failed to create data dir", "path", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// Seed the demo user the session-less authenticator resolves to
	if _, err := auth.EnsureDemoUser(s, cfg.Username); err != nil {
		appLogger.Error("Failed to ensure demo user", "username", cfg.Username, "error", err)
		os.Exit(1)
	}
	authn := auth.NewDemo(s, cfg.Username)

	// Initialize Services
	playlistService := app.NewPlaylistService(s)
	trackService := app.NewTrackService(s, cfg.DataDir, cfg.MaxUploadBytes(), appLogger)

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Routes
	h := httpapp.NewHandler(s, playlistService, trackService, authn, appLogger)
	h.RegisterRoutes(r)

	// Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
