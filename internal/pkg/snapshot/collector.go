// Package snapshot collects normalized odds for a day of fixtures into
// storage rows.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

type Provider interface {
	FixturesByDate(ctx context.Context, league enums.League, date string, opts apisports.ListOptions) (*payload.Fixtures, error)
	OddsForFixture(ctx context.Context, league enums.League, fixtureID int, opts apisports.OddsOptions) ([]byte, error)
}

type Collector struct {
	provider    Provider
	normalizer  *odds.Normalizer
	concurrency int
	bookmakerID int
	now         func() time.Time
}

func NewCollector(provider Provider, normalizer *odds.Normalizer, concurrency, bookmakerID int) *Collector {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Collector{
		provider:    provider,
		normalizer:  normalizer,
		concurrency: concurrency,
		bookmakerID: bookmakerID,
		now:         time.Now,
	}
}

// Collect fetches and normalizes odds for every fixture of league on date.
// A fixture whose odds cannot be fetched is logged and skipped; only the
// fixture list failing is an error. Rows come back in fixture order.
func (c *Collector) Collect(ctx context.Context, league enums.League, date, runID string) ([]models.SnapshotRow, error) {
	fx, err := c.provider.FixturesByDate(ctx, league, date, apisports.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s fixtures for %s: %w", league, date, err)
	}

	var fixtures []payload.Fixture
	for _, node := range fx.Items {
		if f, ok := payload.ExtractFixture(node); ok {
			fixtures = append(fixtures, f)
		}
	}

	var preferred *int
	var oddsOpts apisports.OddsOptions
	if c.bookmakerID > 0 {
		id := c.bookmakerID
		preferred = &id
		oddsOpts.Bookmaker = id
	}
	recordedAt := c.now().UTC()

	perFixture := make([][]models.SnapshotRow, len(fixtures))
	var mu sync.Mutex
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, f := range fixtures {
		i, f := i, f
		g.Go(func() error {
			body, err := c.provider.OddsForFixture(gctx, league, f.ID, oddsOpts)
			if err != nil {
				slog.Warn("Failed to fetch odds", "league", league, "fixture_id", f.ID, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			normalized, err := c.normalizer.NormalizeJSON(body, odds.Options{League: league, PreferredBookmakerID: preferred})
			if err != nil {
				slog.Warn("Failed to normalize odds", "league", league, "fixture_id", f.ID, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			perFixture[i] = models.SnapshotRows(models.SnapshotRow{
				RunID:      runID,
				League:     league.String(),
				FixtureID:  f.ID,
				Home:       f.Home,
				Away:       f.Away,
				StartTime:  parseStart(f.Date),
				RecordedAt: recordedAt,
			}, normalized)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []models.SnapshotRow
	for _, r := range perFixture {
		rows = append(rows, r...)
	}
	slog.Info("Snapshot collected",
		"league", league,
		"date", date,
		"fixtures", len(fixtures),
		"failed", failed,
		"rows", len(rows),
	)
	return rows, nil
}

// parseStart accepts RFC 3339 and bare dates; anything else is the zero time.
func parseStart(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
