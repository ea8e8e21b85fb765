// Package main runs the dashboard backend: the /api routes, the chat
// endpoint and, when configured, the prebuilt UI.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/gameforge/arcade-dashboard/internal/api"
	"github.com/gameforge/arcade-dashboard/internal/config"
	"github.com/gameforge/arcade-dashboard/pkg/logging"
)

const shutdownTimeout = 30 * time.Second

func main() {
	fs := pflag.NewFlagSet("dashboard-server", pflag.ExitOnError)
	config.RegisterFlags(fs)
	// glog registers its flags on the standard flag set
	fs.AddGoFlagSet(flag.CommandLine)
	_ = fs.Parse(os.Args[1:])
	_ = flag.Set("logtostderr", "true")

	cfg, err := config.Load(fs)
	if err != nil {
		glog.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogFormat, cfg.LogLevel, os.Stdout)
	if err != nil {
		glog.Fatalf("Failed to set up logger: %v", err)
	}
	slog.SetDefault(logger)

	app, err := api.NewApp(cfg, logger)
	if err != nil {
		glog.Fatalf("Failed to create app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("starting server",
			slog.String("addr", cfg.ListenAddr),
			slog.Bool("mock", cfg.MockMode()),
			slog.String("static_assets_dir", cfg.StaticAssetsDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.Any("error", err))
	}
	if err := app.Shutdown(); err != nil {
		logger.Error("app shutdown error", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
