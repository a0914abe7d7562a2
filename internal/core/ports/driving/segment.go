package driving

import (
	"context"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

// Segmenter cuts structures into fixed-length overlapping residue windows
// and serialises each window as an independent output file.
type Segmenter interface {
	// SegmentDirectory segments every structure file in dir that matches
	// the configured pattern. Files that fail to parse are reported in
	// the run and skipped; they never abort the batch. The returned
	// error covers batch-level failures only (unreadable directory),
	// not per-file ones.
	SegmentDirectory(ctx context.Context, dir string) (*domain.Run, error)

	// SegmentFile segments a single structure file and returns the
	// number of window files written.
	SegmentFile(ctx context.Context, path string) (int, error)
}
