package driving

import (
	"context"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

// Renumberer rewrites residue sequence numbers in PDB-format text so
// numbering restarts contiguously at 1, preserving every other byte.
type Renumberer interface {
	// Renumber processes the file at path, or every matching file when
	// path is a directory. Each file is replaced atomically; a file is
	// never left partially rewritten.
	Renumber(ctx context.Context, path string) (*domain.Run, error)

	// RenumberFile processes exactly one file.
	RenumberFile(ctx context.Context, path string) error
}
