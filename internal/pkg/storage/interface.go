package storage

import (
	"context"

	"github.com/Vodeneev/oddsline/internal/pkg/models"
)

// SnapshotStorage persists normalized odds snapshots.
type SnapshotStorage interface {
	// StoreSnapshots upserts rows; one row per (fixture, bookmaker, slot, outcome).
	StoreSnapshots(ctx context.Context, rows []models.SnapshotRow) error

	// GetSnapshots returns the stored rows of a fixture.
	GetSnapshots(ctx context.Context, league string, fixtureID int) ([]models.SnapshotRow, error)

	// Close closes the database connection
	Close() error
}
