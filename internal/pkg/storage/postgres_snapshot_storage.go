package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/Vodeneev/oddsline/internal/pkg/config"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
)

// Ensure PostgresSnapshotStorage implements SnapshotStorage
var _ SnapshotStorage = (*PostgresSnapshotStorage)(nil)

// PostgresSnapshotStorage keeps the latest normalized price per outcome.
type PostgresSnapshotStorage struct {
	db *sql.DB
}

// NewPostgresSnapshotStorage opens the database and creates the table if needed.
func NewPostgresSnapshotStorage(cfg *config.PostgresConfig) (*PostgresSnapshotStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresSnapshotStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL snapshot storage initialized successfully")
	return s, nil
}

func (s *PostgresSnapshotStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS odds_snapshots (
		id SERIAL PRIMARY KEY,
		run_id UUID NOT NULL,
		league VARCHAR(20) NOT NULL,
		fixture_id BIGINT NOT NULL,
		home VARCHAR(200) NOT NULL DEFAULT '',
		away VARCHAR(200) NOT NULL DEFAULT '',
		start_time TIMESTAMP,
		bookmaker VARCHAR(100) NOT NULL,
		slot VARCHAR(100) NOT NULL,
		outcome VARCHAR(300) NOT NULL,
		line DECIMAL(10, 2),
		price DECIMAL(10, 4) NOT NULL,
		recorded_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE(league, fixture_id, bookmaker, slot, outcome)
	);

	CREATE INDEX IF NOT EXISTS idx_odds_snapshots_fixture ON odds_snapshots(league, fixture_id);
	CREATE INDEX IF NOT EXISTS idx_odds_snapshots_run ON odds_snapshots(run_id);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

const upsertSnapshot = `
	INSERT INTO odds_snapshots (
		run_id, league, fixture_id, home, away, start_time,
		bookmaker, slot, outcome, line, price, recorded_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (league, fixture_id, bookmaker, slot, outcome) DO UPDATE SET
		run_id = EXCLUDED.run_id,
		home = EXCLUDED.home,
		away = EXCLUDED.away,
		start_time = EXCLUDED.start_time,
		line = EXCLUDED.line,
		price = EXCLUDED.price,
		recorded_at = EXCLUDED.recorded_at
	`

// StoreSnapshots upserts all rows in one transaction.
func (s *PostgresSnapshotStorage) StoreSnapshots(ctx context.Context, rows []models.SnapshotRow) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertSnapshot)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		var start any
		if !r.StartTime.IsZero() {
			start = r.StartTime.UTC()
		}
		if _, err := stmt.ExecContext(ctx,
			r.RunID, r.League, r.FixtureID, r.Home, r.Away, start,
			r.Bookmaker, r.Slot, r.Outcome, nullFloat(r.Line), r.Price, r.RecordedAt.UTC(),
		); err != nil {
			return fmt.Errorf("failed to upsert snapshot %s: %w", r.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshots: %w", err)
	}
	return nil
}

// GetSnapshots returns a fixture's rows ordered by bookmaker, slot and outcome.
func (s *PostgresSnapshotStorage) GetSnapshots(ctx context.Context, league string, fixtureID int) ([]models.SnapshotRow, error) {
	query := `
	SELECT run_id, league, fixture_id, home, away, start_time,
		bookmaker, slot, outcome, line, price, recorded_at
	FROM odds_snapshots
	WHERE league = $1 AND fixture_id = $2
	ORDER BY bookmaker, slot, outcome
	`
	rows, err := s.db.QueryContext(ctx, query, league, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var out []models.SnapshotRow
	for rows.Next() {
		var r models.SnapshotRow
		var start sql.NullTime
		var line sql.NullFloat64
		if err := rows.Scan(&r.RunID, &r.League, &r.FixtureID, &r.Home, &r.Away, &start,
			&r.Bookmaker, &r.Slot, &r.Outcome, &line, &r.Price, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if start.Valid {
			r.StartTime = start.Time
		}
		if line.Valid {
			l := line.Float64
			r.Line = &l
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (s *PostgresSnapshotStorage) Close() error {
	return s.db.Close()
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
