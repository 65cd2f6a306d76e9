// Package history records completed generation runs so operators can
// audit what was produced, when, and from how many resources.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run is one completed generation of a single style.
type Run struct {
	ID            uuid.UUID
	Style         string
	OutputPath    string
	ResourceCount int
	Duration      time.Duration
	CreatedAt     time.Time
}

// Store persists generation runs.
type Store interface {
	// Record persists one run. The run's ID and CreatedAt are assigned
	// by the store when zero.
	Record(ctx context.Context, run *Run) error

	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]Run, error)

	Close() error
}

// NoopStore discards all runs. Used when history is disabled.
type NoopStore struct{}

func (NoopStore) Record(context.Context, *Run) error        { return nil }
func (NoopStore) Recent(context.Context, int) ([]Run, error) { return nil, nil }
func (NoopStore) Close() error                               { return nil }
