package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sso-jung/lolchat/internal/api"
	"github.com/sso-jung/lolchat/internal/catalog"
	"github.com/sso-jung/lolchat/internal/config"
	"github.com/sso-jung/lolchat/internal/game"
	"github.com/sso-jung/lolchat/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Load the content catalog before serving anything; it is immutable for
	// the lifetime of the process.
	cat, err := catalog.Load(cfg.ChampionsFile, cfg.SkillsFile)
	if err != nil {
		log.Fatalf("failed to load content catalog: %v", err)
	}
	log.Printf("catalog loaded: %d champions", len(cat.Champions()))

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories and the game service
	repos := postgres.NewRepositories(db)
	gameService := game.NewService(repos, cat, cfg.SurrenderCooldown)

	// Initialize router
	router := api.NewRouter(gameService)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
