package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/salescope/internal/catalog"
	corecfg "github.com/aevon-lab/salescope/internal/core/config"
	"github.com/aevon-lab/salescope/internal/core/storage"
	"github.com/aevon-lab/salescope/internal/core/storage/memory"
	"github.com/aevon-lab/salescope/internal/core/storage/postgres"
	"github.com/aevon-lab/salescope/internal/dashboard"
	"github.com/aevon-lab/salescope/internal/inventory"
	"github.com/aevon-lab/salescope/internal/migrations"
	"github.com/aevon-lab/salescope/internal/mockdata"
	"github.com/aevon-lab/salescope/internal/refresh"
	"github.com/aevon-lab/salescope/internal/server"
	"github.com/aevon-lab/salescope/internal/telemetry"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "configs/salescope.yaml", "Path to configuration file")
	envPath := flag.String("env", ".env", "Optional dotenv file loaded before the environment is read")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Failed to load env file", "path", *envPath, "error", err)
		os.Exit(1)
	}

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))
	slog.Info("Loaded config",
		"storage", cfg.Storage.Driver,
		"timezone", cfg.Dashboard.Location().String(),
		"default_timeframe", cfg.Dashboard.Granularity(),
		"refresh_interval", cfg.MockData.RefreshEvery())

	// 2. Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 3. Initialize Storage
	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	// 4. Load catalog and bootstrap the inventory
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		slog.Error("Failed to load product catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	generator := mockdata.NewGenerator(mockdata.GeneratorConfig{
		Seed:             cfg.MockData.Seed,
		HistoryDays:      cfg.MockData.HistoryDays,
		MaxDailyQuantity: cfg.MockData.MaxDailyQuantity,
		Location:         cfg.Dashboard.Location(),
	})

	store := inventory.NewStore(repo, generator, cat.Categories)
	if err := store.Bootstrap(context.Background(), cat); err != nil {
		slog.Error("Failed to bootstrap inventory", "error", err)
		os.Exit(1)
	}

	// 5. Initialize Dashboard
	dashboardSvc := dashboard.NewService(store, dashboard.Config{
		DefaultTimeframe: cfg.Dashboard.Granularity(),
		Style:            cfg.Chart.Style(),
		Options:          cfg.Chart.Options(),
	}, telemetry.NewAggregationMetrics(reg))

	scheduler := refresh.NewScheduler(cfg.MockData.RefreshEvery(), store, telemetry.NewJobMetrics(reg))

	// 6. Initialize Server
	opts := server.Options{MaxBodyBytes: int64(cfg.Server.MaxBodySizeMB) * 1024 * 1024}
	if cfg.Metrics.Enabled {
		opts.Metrics = reg
	}
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode, opts)
	store.RegisterRoutes(srv.Engine)
	dashboardSvc.RegisterRoutes(srv.Engine)

	// 7. Start Services; the first one to fail cancels the others.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return scheduler.Start(gctx) })

	if err := g.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
		closeRepo()
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}

// openRepository returns the configured repository and a function releasing it.
func openRepository(cfg *corecfg.Config) (storage.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.OpenDB(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		adapter, err := postgres.NewAdapter(db)
		if err != nil {
			return nil, nil, err
		}
		return adapter, func() { adapter.Close() }, nil
	default:
		slog.Info("Using in-memory storage; data is lost on restart")
		return memory.NewRepository(), func() {}, nil
	}
}

func newLogger(cfg corecfg.LogConfig) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
