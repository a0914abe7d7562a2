package services

import (
	"context"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
)

// Ensure InspectorService implements the interface.
var _ driving.Inspector = (*InspectorService)(nil)

// InspectorService summarises the models and chains of structure files.
type InspectorService struct {
	structures driven.StructureStore
	settings   domain.Settings
}

// NewInspectorService creates an inspector.
func NewInspectorService(structures driven.StructureStore, settings domain.Settings) *InspectorService {
	return &InspectorService{
		structures: structures,
		settings:   settings.Normalise(),
	}
}

// InspectDirectory summarises every matching file in dir. A file that
// fails to parse gets a summary carrying the error text; it never aborts
// the listing.
func (s *InspectorService) InspectDirectory(ctx context.Context, dir string) ([]driving.FileSummary, error) {
	files, err := listMatching(dir, s.settings.FilePattern)
	if err != nil {
		return nil, err
	}

	summaries := make([]driving.FileSummary, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summaries, err
		}
		summaries = append(summaries, s.summarise(ctx, file))
	}
	return summaries, nil
}

func (s *InspectorService) summarise(ctx context.Context, path string) driving.FileSummary {
	summary := driving.FileSummary{Path: path}

	structure, err := s.structures.Load(ctx, path)
	if err != nil {
		summary.Err = err.Error()
		return summary
	}

	for _, model := range structure.Models {
		ms := driving.ModelSummary{Serial: model.Serial}
		for _, chain := range model.Chains {
			ms.Chains = append(ms.Chains, driving.ChainSummary{
				Ident:    chain.Ident,
				Residues: chain.Length(),
			})
		}
		summary.Models = append(summary.Models, ms)
	}
	return summary
}
