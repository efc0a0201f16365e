package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/cache"
	pkgconfig "github.com/Vodeneev/oddsline/internal/pkg/config"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/logging"
	"github.com/Vodeneev/oddsline/internal/pkg/markets"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/snapshot"
	"github.com/Vodeneev/oddsline/internal/pkg/storage"
)

const (
	defaultConfigPath = "configs/config.yaml"
)

type config struct {
	configPath string
	league     string // Override snapshot.leagues (e.g. "nba"). Empty = use config
	date       string
	dryRun     bool
}

func main() {
	if err := run(); err != nil {
		slog.Error("Snapshot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()

	appConfig, err := pkgconfig.Load(cfg.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, closer, err := logging.SetupLogger(&appConfig.Logging, "snapshot")
	if err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	} else {
		defer closer.Close()
	}

	leagues, err := selectLeagues(cfg.league, appConfig.Snapshot.Leagues)
	if err != nil {
		return err
	}

	table := markets.DefaultTable()
	if appConfig.Markets.File != "" {
		if table, err = markets.LoadTable(appConfig.Markets.File); err != nil {
			return fmt.Errorf("failed to load market table: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := apisports.NewClient(&appConfig.APISports, cache.NewMemoryCache(0), appConfig.Cache.TTL)
	collector := snapshot.NewCollector(client, odds.NewNormalizer(table), appConfig.Snapshot.Concurrency, appConfig.Snapshot.BookmakerID)

	var store storage.SnapshotStorage
	if !cfg.dryRun {
		pg, err := storage.NewPostgresSnapshotStorage(&appConfig.Postgres)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pg.Close()
		store = pg
	}

	runID := uuid.New().String()
	slog.Info("Starting snapshot run", "run_id", runID, "date", cfg.date, "leagues", leagues)

	total := 0
	for _, league := range leagues {
		rows, err := collector.Collect(ctx, league, cfg.date, runID)
		if err != nil {
			slog.Error("Skipping league", "league", league, "error", err)
			continue
		}
		if store != nil && len(rows) > 0 {
			if err := store.StoreSnapshots(ctx, rows); err != nil {
				return fmt.Errorf("failed to store %s snapshots: %w", league, err)
			}
		}
		total += len(rows)
	}

	slog.Info("Snapshot run finished", "run_id", runID, "rows", total, "dry_run", cfg.dryRun)
	return nil
}

func parseFlags() config {
	var cfg config

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&cfg.configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&cfg.league, "league", "", "Comma-separated leagues (e.g. 'nba,nfl'). Empty = use config")
	flag.StringVar(&cfg.date, "date", time.Now().UTC().Format("2006-01-02"), "Fixture date, YYYY-MM-DD")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "Collect and log without writing to postgres")
	flag.Parse()
	return cfg
}

func selectLeagues(override string, configured []string) ([]enums.League, error) {
	names := configured
	if override != "" {
		names = strings.Split(override, ",")
	}
	if len(names) == 0 {
		return enums.GetAllLeagues(), nil
	}

	var out []enums.League
	for _, name := range names {
		l, ok := enums.ParseLeague(name)
		if !ok {
			return nil, fmt.Errorf("unknown league %q (available: %v)", name, enums.LeagueNames())
		}
		out = append(out, l)
	}
	return out, nil
}
