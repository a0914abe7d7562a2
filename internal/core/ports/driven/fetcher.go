package driven

import "context"

// EntryFetcher downloads one PDB entry from the archive.
type EntryFetcher interface {
	// Fetch retrieves the PDB-format text for the given identifier.
	// Returns domain.ErrNotFound (wrapped) when the archive does not
	// know the identifier.
	Fetch(ctx context.Context, id string) ([]byte, error)
}
