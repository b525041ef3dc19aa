package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/logger"
	"jobboard-api/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.Log.Level, cfg.Log.Format)

	startCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout+10*time.Second)
	application, err := app.New(startCtx, cfg, l)
	cancel()
	if err != nil {
		l.WithError(err).Fatal("Failed to initialize application")
	}

	srv, err := server.NewServer(application)
	if err != nil {
		l.WithError(err).Fatal("Failed to configure server")
	}

	// --- Graceful Shutdown Handling ---
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit: // Block until a signal is received
	case err := <-errCh:
		if err != nil {
			l.WithError(err).Error("Server error")
		}
	}

	l.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.WithError(err).Error("Server shutdown failed")
	}
	if err := application.Close(shutdownCtx); err != nil {
		l.WithError(err).Error("Closing backing services failed")
	}

	l.Info("Application gracefully stopped.")
}
