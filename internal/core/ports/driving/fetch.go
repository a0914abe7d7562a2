package driving

import (
	"context"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

// Fetcher bulk-downloads PDB entries by identifier.
type Fetcher interface {
	// FetchAll downloads every identifier into outDir as {ID}.pdb.
	// Identifiers that fail are reported in the run and do not abort
	// the rest of the batch.
	FetchAll(ctx context.Context, ids []string, outDir string) (*domain.Run, error)
}
