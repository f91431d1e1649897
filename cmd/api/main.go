// Command api serves land/water classification over HTTP.
package main

//go:generate go run ../landctl fetch --dataset ../../data/earth-lands-1m.geo.json.gz

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/samirrijal/isonwater/internal/adapters/http"
	"github.com/samirrijal/isonwater/internal/adapters/landindex"
	"github.com/samirrijal/isonwater/internal/core/usecases"
	"github.com/samirrijal/isonwater/internal/pkg/config"
	"github.com/samirrijal/isonwater/internal/pkg/logging"
	"github.com/samirrijal/isonwater/internal/pkg/metrics"
	"github.com/samirrijal/isonwater/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("isonwater-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Land index, built once and shared read-only
	land, err := landindex.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("land dataset: %v", err)
	}
	stats := land.Stats()
	metrics.RecordLandStats(stats)
	slog.Info("land index loaded",
		"source", stats.Source,
		"polygons", stats.Polygons,
		"vertices", stats.Vertices,
		"duration", stats.LoadDuration.String(),
	)

	deps := &http.Dependencies{
		Classifier: usecases.NewClassifierService(land, nil),
		Rule:       cfg.Validation.Rule(),
		Options: http.Options{
			HealthCheckPath: cfg.Server.HealthCheckPath,
			RateLimit:       cfg.Server.RateLimit,
			CacheMaxAge:     cfg.Server.CacheMaxAge,
		},
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:             time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:            time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:               cfg.Server.BodyLimit,
		ProxyHeader:             cfg.Server.ProxyHeader,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.Server.TrustedProxies,
		AppName:                 "isonwater",
		DisableStartupMessage:   true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr, "health", deps.Options.HealthCheckPath)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
