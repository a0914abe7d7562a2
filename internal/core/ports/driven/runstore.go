package driven

import (
	"context"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

// RunStore persists batch runs and their per-file outcomes.
type RunStore interface {
	// Save stores a completed run together with its outcomes.
	Save(ctx context.Context, run *domain.Run) error

	// Get retrieves a run by ID, outcomes included.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// Recent lists the most recent runs, newest first, outcomes
	// included. A non-positive limit returns all runs.
	Recent(ctx context.Context, limit int) ([]*domain.Run, error)
}
