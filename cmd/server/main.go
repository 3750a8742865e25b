package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/portfolio-json-api/internal/api"
	"github.com/ndewijer/portfolio-json-api/internal/config"
	"github.com/ndewijer/portfolio-json-api/internal/database"
	"github.com/ndewijer/portfolio-json-api/internal/repository"
	"github.com/ndewijer/portfolio-json-api/internal/service"
	"github.com/ndewijer/portfolio-json-api/internal/version"
)

func main() {
	log.SetOutput(os.Stdout)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Make sure the data file exists before accepting traffic
	dataFile, err := database.Open(cfg.Data.Path)
	if err != nil {
		log.Fatalf("Failed to initialize data file: %v", err)
	}

	log.Printf("Using data file: %s", dataFile.Path)

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(dataFile)

	// Create services
	systemService := service.NewSystemService()
	portfolioService := service.NewPortfolioService(portfolioRepo)
	backupService := service.NewBackupService(dataFile, cfg.Backup.Dir, cfg.Backup.Keep)

	if err := backupService.Schedule(cfg.Backup.Schedule); err != nil {
		log.Fatalf("Failed to schedule backups: %v", err)
	}
	if cfg.Backup.Schedule != "" {
		log.Printf("Backing up data file to %s on schedule %q", cfg.Backup.Dir, cfg.Backup.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Portfolio API v%s listening on %s", version.Version, cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		backupService.Start()
		<-gctx.Done()

		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		<-backupService.Stop().Done()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	log.Println("Server exited")
}
