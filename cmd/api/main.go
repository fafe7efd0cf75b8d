package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/culinarybook/backend/config"
	"github.com/culinarybook/backend/internal/database"
	"github.com/culinarybook/backend/internal/logger"
	"github.com/culinarybook/backend/internal/server"
)

func main() {
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		zlog.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("failed to run migrations", "error", err)
	}

	cache, err := database.NewRedisClient(cfg)
	if err != nil {
		zlog.Fatalw("failed to connect to redis", "error", err)
	}

	ctx := context.Background()
	srv, err := server.New(ctx, cfg, db, cache, zlog)
	if err != nil {
		zlog.Fatalw("failed to initialize server", "error", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		zlog.Infow("received signal", "signal", sig.String())
	}

	zlog.Infow("shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatalw("server shutdown error", "error", err)
	}
	zlog.Infow("server stopped")
}
