package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tasteplaces/tasteplaces/internal/catalog"
	"github.com/tasteplaces/tasteplaces/internal/config"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/handlers"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"github.com/tasteplaces/tasteplaces/internal/session"
	"github.com/tasteplaces/tasteplaces/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped gracefully")
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("starting restaurant api server",
		zap.String("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host),
		zap.String("log_level", cfg.LogLevel),
	)

	// Load the catalog
	repo, err := catalog.Open(cfg.Catalog.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("data_file", cfg.Catalog.DataFile),
		zap.Int("restaurants", repo.Len()),
	)

	locale, err := cfg.Locale()
	if err != nil {
		return err
	}

	// Initialize services
	restaurantService := service.NewRestaurantService(repo, engine.New(engine.WithLocale(locale)))
	sessionService := service.NewSessionService(restaurantService, session.NewStore(session.WithMaxSessions(cfg.Session.MaxSessions)))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(cfg, restaurantService, sessionService, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Wait for a signal or a listener failure, then drain connections
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
