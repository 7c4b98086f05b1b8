// Command server runs the flag planning HTTP API. Dependencies are wired with
// samber/do; APP_PROFILE selects the configuration profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/protocolo-ceremonial/flagplan/internal/adapters/http"
	"github.com/protocolo-ceremonial/flagplan/internal/app"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/logging"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/telemetry"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(os.Getenv("APP_PROFILE")); err != nil {
		fmt.Fprintln(os.Stderr, "flagplan server:", err)
		os.Exit(1)
	}
}

func run(profile string) error {
	if profile == "" {
		return errors.New("set APP_PROFILE to a configuration profile such as local or prod")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	providers, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(ctx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	injector := wire(cfg, logger, providers.Metrics)

	// Resolving the server builds the whole graph before any port opens.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	planner := do.MustInvoke[*app.PlanService](injector)

	logger.Info("reference data configured",
		slog.String("source", cfg.Reference.Source),
		slog.Duration("cache_ttl", cfg.Reference.CacheTTL),
	)

	if err := serve(server, planner, logger); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// serve runs the server until SIGINT or SIGTERM and then drains in-flight
// requests. SIGHUP drops the cached reference catalog and keeps serving.
func serve(server *adapthttp.Server, planner *app.PlanService, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	for {
		select {
		case err := <-serverErr:
			return fmt.Errorf("server failed: %w", err)
		case sig := <-signals:
			if sig == syscall.SIGHUP {
				planner.InvalidateCatalog()
				logger.Info("reference catalog invalidated", slog.String("signal", sig.String()))
				continue
			}
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))

			ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Error("server shutdown error", slog.Any("error", err))
			}
			<-serverErr
			return nil
		}
	}
}
