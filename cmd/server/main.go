package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"degree-compass/internal/app"
	"degree-compass/internal/config"
	"degree-compass/internal/database/schema"
)

const shutdownGrace = 10 * time.Second

func main() {
	logger := log.New(os.Stderr, "[Server] ", log.LstdFlags)
	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	engine, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		if errors.Is(err, schema.ErrCatalogUnverified) {
			return fmt.Errorf("catalog tables are missing or stale, run the seed import before starting: %w", err)
		}
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("cleanup: %v", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("recommendation engine listening on %s", addr)
		errCh <- engine.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Printf("received %s, draining in-flight requests", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := engine.Fiber.ShutdownWithContext(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Printf("shutdown complete")
	}
	return nil
}
