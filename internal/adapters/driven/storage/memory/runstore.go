package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore for testing.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]*domain.Run
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]*domain.Run),
	}
}

// Save stores a completed run together with its outcomes.
func (s *RunStore) Save(_ context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: run without an ID", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *run
	copied.Outcomes = append([]domain.FileOutcome(nil), run.Outcomes...)
	s.runs[run.ID] = &copied
	return nil
}

// Get retrieves a run by ID, outcomes included.
func (s *RunStore) Get(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("%w: run %s", domain.ErrNotFound, id)
	}

	copied := *run
	copied.Outcomes = append([]domain.FileOutcome(nil), run.Outcomes...)
	return &copied, nil
}

// Recent lists the most recent runs, newest first, outcomes included.
func (s *RunStore) Recent(_ context.Context, limit int) ([]*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]*domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		copied := *run
		copied.Outcomes = append([]domain.FileOutcome(nil), run.Outcomes...)
		runs = append(runs, &copied)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
