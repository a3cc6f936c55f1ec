package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Yiqing888/deadlydelivery.app/internal/bootstrap"
	"github.com/Yiqing888/deadlydelivery.app/internal/config"
	"github.com/Yiqing888/deadlydelivery.app/internal/server"
)

// @title Deadly Delivery EV API
// @version 1.0
// @description Expected-value advice for elevator votes, run plans and class unlocks.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(config.RequiredEnvVars)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	svc, err := bootstrap.InitializeAdvisor(cfg)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		RateLimitPerWindow: cfg.RateLimitPerWindow,
		RateLimitWindow:    cfg.RateLimitWindow,
	}, svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, srv)
		return nil
	})

	return g.Wait()
}
