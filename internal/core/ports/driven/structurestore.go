package driven

import (
	"context"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

// StructureStore is the structure-loading collaborator. It abstracts the
// fixed-column PDB parser behind the two capabilities the core actually
// needs: enumerating residues per chain in file order, and writing a
// residue-range selection to a new file in the same format.
type StructureStore interface {
	// Load parses the file at path into a Structure.
	// Returns domain.ErrLoad (wrapped) when the file is unreadable or
	// does not contain a valid structure.
	Load(ctx context.Context, path string) (*domain.Structure, error)

	// WriteWindow serialises the window to an independent file at path,
	// copying every atom line through unchanged. An existing file at
	// path is overwritten idempotently.
	// Returns domain.ErrWrite (wrapped) when the destination cannot be
	// created or written.
	WriteWindow(ctx context.Context, w *domain.Window, path string) error
}
