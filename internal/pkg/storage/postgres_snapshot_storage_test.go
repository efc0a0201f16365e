package storage

import (
	"testing"

	"github.com/Vodeneev/oddsline/internal/pkg/config"
)

func TestNullFloat(t *testing.T) {
	if got := nullFloat(nil); got.Valid {
		t.Errorf("nullFloat(nil) = %+v, want invalid", got)
	}
	v := -3.5
	if got := nullFloat(&v); !got.Valid || got.Float64 != -3.5 {
		t.Errorf("nullFloat(-3.5) = %+v", got)
	}
}

func TestNewPostgresSnapshotStorage_RequiresDSN(t *testing.T) {
	if _, err := NewPostgresSnapshotStorage(&config.PostgresConfig{}); err == nil {
		t.Error("expected error for empty DSN")
	}
}
