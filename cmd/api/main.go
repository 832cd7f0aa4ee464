package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-data-api/internal/api"
	"stock-data-api/internal/config"
	"stock-data-api/internal/data"
	"stock-data-api/internal/logging"
	"stock-data-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closer, err := logging.Init(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	// Log important paths for debugging; missing data is reported per request, not fatal.
	if info, err := os.Stat(cfg.Data.IndicatorFile); err == nil && !info.IsDir() {
		logger.Info("IIP file found", "path", cfg.Data.IndicatorFile)
	} else {
		logger.Warn("IIP file not found", "path", cfg.Data.IndicatorFile, "error", err)
	}
	if info, err := os.Stat(cfg.Data.StocksDir); err == nil && info.IsDir() {
		logger.Info("Stock directory found", "path", cfg.Data.StocksDir)
	} else {
		logger.Warn("Stock directory not found", "path", cfg.Data.StocksDir, "error", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}
	loader := data.NewLoader(cfg.Data.LoaderConfig())
	router := api.NewRouter(cfg, loader, m)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting API server", "addr", server.Addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
		closer.Close()
		os.Exit(1)
	}
}
