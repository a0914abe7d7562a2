package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/pdb"
	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

func TestInspectDirectory_SummarisesModelsAndChains(t *testing.T) {
	dir := t.TempDir()
	chainFile(t, dir, "solo.pdb", 12, 1)

	svc := NewInspectorService(pdb.NewStore(), domain.Settings{})
	summaries, err := svc.InspectDirectory(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Empty(t, summary.Err)
	require.Len(t, summary.Models, 1)
	assert.Equal(t, 1, summary.Models[0].Serial)
	require.Len(t, summary.Models[0].Chains, 1)
	assert.Equal(t, "A", summary.Models[0].Chains[0].Ident)
	assert.Equal(t, 12, summary.Models[0].Chains[0].Residues)
}

func TestInspectDirectory_UnparseableFileCarriesError(t *testing.T) {
	dir := t.TempDir()
	chainFile(t, dir, "good.pdb", 9, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.pdb"), []byte("REMARK only\n"), 0o644))

	svc := NewInspectorService(pdb.NewStore(), domain.Settings{})
	summaries, err := svc.InspectDirectory(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// listMatching sorts, so bad.pdb comes first.
	assert.NotEmpty(t, summaries[0].Err)
	assert.Empty(t, summaries[0].Models)
	assert.Empty(t, summaries[1].Err)
}

func TestInspectDirectory_MissingDirectory(t *testing.T) {
	svc := NewInspectorService(pdb.NewStore(), domain.Settings{})

	_, err := svc.InspectDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.ErrorIs(t, err, domain.ErrLoad)
}
