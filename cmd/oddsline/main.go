package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/cache"
	pkgconfig "github.com/Vodeneev/oddsline/internal/pkg/config"
	"github.com/Vodeneev/oddsline/internal/pkg/logging"
	"github.com/Vodeneev/oddsline/internal/pkg/markets"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/resolve"
	"github.com/Vodeneev/oddsline/internal/pkg/server"
	"github.com/Vodeneev/oddsline/internal/pkg/storage"
)

const (
	defaultConfigPath = "configs/config.yaml"
)

type config struct {
	configPath string
	addr       string // Override server.addr from config
}

func main() {
	if err := run(); err != nil {
		slog.Error("oddsline failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()
	slog.Info("Loading config", "path", cfg.configPath)

	appConfig, err := pkgconfig.Load(cfg.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.addr != "" {
		appConfig.Server.Addr = cfg.addr
	}

	_, closer, err := logging.SetupLogger(&appConfig.Logging, "oddsline")
	if err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	} else {
		defer closer.Close()
	}

	table, err := loadMarketTable(appConfig.Markets.File)
	if err != nil {
		return err
	}

	c, err := newCache(&appConfig.Cache)
	if err != nil {
		return err
	}
	defer c.Close()

	if appConfig.APISports.Key == "" {
		slog.Warn("APISPORTS_KEY is not set; provider endpoints will answer 500")
	}
	client := apisports.NewClient(&appConfig.APISports, c, appConfig.Cache.TTL)

	srv := server.New(client, odds.NewNormalizer(table), resolve.NewResolver(appConfig.Resolver), appConfig.Server)
	if appConfig.Postgres.DSN != "" {
		store, err := storage.NewPostgresSnapshotStorage(&appConfig.Postgres)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer store.Close()
		srv.WithSnapshots(store)
		slog.Info("Snapshot read-back enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	slog.Info("oddsline stopped gracefully")
	return nil
}

func parseFlags() config {
	var cfg config

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&cfg.configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&cfg.addr, "addr", "", "Override server.addr (e.g. ':9000'). Empty = use config")
	flag.Parse()
	return cfg
}

func loadMarketTable(path string) (*markets.Table, error) {
	if path == "" {
		return markets.DefaultTable(), nil
	}
	table, err := markets.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load market table: %w", err)
	}
	slog.Info("Market table loaded", "path", path)
	return table, nil
}

// newCache uses Redis when an address is configured and an in-process cache otherwise.
func newCache(cfg *pkgconfig.CacheConfig) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(0), nil
	}
	rc, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("Using Redis cache", "addr", cfg.RedisAddr)
	return rc, nil
}
