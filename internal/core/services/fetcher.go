package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/logger"
)

// Ensure FetcherService implements the interface.
var _ driving.Fetcher = (*FetcherService)(nil)

// FetcherService bulk-downloads PDB entries by identifier.
type FetcherService struct {
	entries  driven.EntryFetcher
	runs     driven.RunStore
	settings domain.Settings
}

// NewFetcherService creates a fetcher. runs may be nil to skip catalog
// recording.
func NewFetcherService(entries driven.EntryFetcher, runs driven.RunStore, settings domain.Settings) *FetcherService {
	return &FetcherService{
		entries:  entries,
		runs:     runs,
		settings: settings.Normalise(),
	}
}

// FetchAll downloads every identifier into outDir as {ID}.pdb.
func (s *FetcherService) FetchAll(ctx context.Context, ids []string, outDir string) (*domain.Run, error) {
	ids = NormaliseIDs(ids)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %w", domain.ErrWrite, outDir, err)
	}
	logger.Info("fetching %d entries into %s", len(ids), outDir)

	run := runBatch(ctx, domain.RunCommandFetch, strings.Join(ids, ","), ids, s.settings.Workers,
		func(ctx context.Context, id string) (int, error) {
			return s.fetchOne(ctx, id, outDir)
		})
	saveRun(ctx, s.runs, run)
	return run, nil
}

func (s *FetcherService) fetchOne(ctx context.Context, id, outDir string) (int, error) {
	data, err := s.entries.Fetch(ctx, id)
	if err != nil {
		return 0, err
	}

	dest := filepath.Join(outDir, id+".pdb")
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrWrite, dest, err)
	}
	logger.Debug("saved %s", dest)
	return 1, nil
}

// NormaliseIDs trims, upper-cases and de-blanks a list of PDB
// identifiers, preserving order.
func NormaliseIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
