package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/logger"
)

// Ensure SegmenterService implements the interface.
var _ driving.Segmenter = (*SegmenterService)(nil)

// SegmenterService cuts every chain of every model into fixed-length
// overlapping residue windows and serialises each window as an
// independent file.
type SegmenterService struct {
	structures driven.StructureStore
	runs       driven.RunStore
	settings   domain.Settings
}

// NewSegmenterService creates a segmenter. runs may be nil to skip
// catalog recording.
func NewSegmenterService(structures driven.StructureStore, runs driven.RunStore, settings domain.Settings) *SegmenterService {
	return &SegmenterService{
		structures: structures,
		runs:       runs,
		settings:   settings.Normalise(),
	}
}

// SegmentDirectory segments every matching file in dir.
func (s *SegmenterService) SegmentDirectory(ctx context.Context, dir string) (*domain.Run, error) {
	files, err := listMatching(dir, s.settings.FilePattern)
	if err != nil {
		return nil, err
	}
	logger.Info("segmenting %d files in %s (window %d)", len(files), dir, s.settings.WindowSize)

	run := runBatch(ctx, domain.RunCommandSplit, dir, files, s.settings.Workers, s.SegmentFile)
	saveRun(ctx, s.runs, run)
	return run, nil
}

// SegmentFile segments a single structure file and returns the number of
// window files written. Window generation walks every chain of every
// model; no serialisation happens more than once per (chain, start).
func (s *SegmenterService) SegmentFile(ctx context.Context, path string) (int, error) {
	structure, err := s.structures.Load(ctx, path)
	if err != nil {
		return 0, err
	}

	outDir := s.settings.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	base := baseName(path)
	multiModel := len(structure.Models) > 1

	written := 0
	for _, model := range structure.Models {
		for _, chain := range model.Chains {
			// Length comes from residue iteration, never a pre-known count.
			length := chain.Length()
			starts := chain.WindowStarts(s.settings.WindowSize)
			logger.Debug("%s model %d chain %s: %d residues, %d windows",
				path, model.Serial, chain.Ident, length, len(starts))

			for _, start := range starts {
				window := &domain.Window{
					SourcePath:  path,
					ModelSerial: model.Serial,
					ChainIdent:  chain.Ident,
					Start:       start,
					Residues:    chain.Window(start, s.settings.WindowSize),
				}
				dest := filepath.Join(outDir, window.FileName(base, multiModel))
				if err := s.structures.WriteWindow(ctx, window, dest); err != nil {
					return written, fmt.Errorf("window %d of chain %s: %w", start, chain.Ident, err)
				}
				written++
			}
		}
	}
	return written, nil
}
