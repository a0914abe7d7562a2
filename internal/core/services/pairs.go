package services

import (
	"context"
	"path/filepath"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
)

// Ensure PairListerService implements the interface.
var _ driving.PairLister = (*PairListerService)(nil)

// PairListerService enumerates unordered pairs of files for driving
// pairwise structure comparisons.
type PairListerService struct {
	settings domain.Settings
}

// NewPairListerService creates a pair lister.
func NewPairListerService(settings domain.Settings) *PairListerService {
	return &PairListerService{settings: settings.Normalise()}
}

// Pairs lists every unordered pair of matching files in dir. The file
// list is sorted, so pairs come out in a stable lexicographic order and
// no pair contains the same file twice.
func (s *PairListerService) Pairs(ctx context.Context, dir string) ([]driving.Pair, error) {
	files, err := listMatching(dir, s.settings.FilePattern)
	if err != nil {
		return nil, err
	}

	var pairs []driving.Pair
	for i := 0; i < len(files); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := i + 1; j < len(files); j++ {
			pairs = append(pairs, driving.Pair{
				A: filepath.Base(files[i]),
				B: filepath.Base(files[j]),
			})
		}
	}
	return pairs, nil
}
