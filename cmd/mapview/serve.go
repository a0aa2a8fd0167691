package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tilemap.dev/internal/config"
	"tilemap.dev/internal/handlers"
	"tilemap.dev/internal/logging"
	"tilemap.dev/internal/services"
	"tilemap.dev/internal/tiles"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser viewer and its tiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log)

	tsCfg := services.TileServiceConfig{
		Dir:        cfg.Tiles.Dir,
		MaxZoom:    cfg.Viewer.MaxZoom,
		CacheBytes: cfg.Tiles.CacheBytes,
	}
	if cfg.Tiles.OnDemand {
		region, err := tiles.GenerateRegion(cfg.Tiles.RegionSize, cfg.Tiles.Seed)
		if err != nil {
			return fmt.Errorf("generating region: %w", err)
		}
		tsCfg.Renderer = tiles.NewRenderer(region, tiles.DefaultPalette())
		logger.Info("rendering missing tiles on demand", "seed", cfg.Tiles.Seed, "region_size", cfg.Tiles.RegionSize)
	}
	tileService, err := services.NewTileService(tsCfg)
	if err != nil {
		return err
	}
	defer tileService.Close()

	mapService := services.NewMapService(cfg.Viewer, cfg.Theme)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handlers.SetupRoutes(cfg, logger, mapService, tileService),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", cfg.Server.Addr, "tiles", cfg.Tiles.Dir, "static", cfg.Server.StaticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Could not start server", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Stopping server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Could not stop server", "error", err)
		return err
	}
	return nil
}
