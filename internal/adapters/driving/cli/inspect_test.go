package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
)

func TestInspectCmd_Use(t *testing.T) {
	assert.Equal(t, "inspect [dir]", inspectCmd.Use)
}

func TestInspectCmd_PrintsModelsAndChains(t *testing.T) {
	inspectorService = &stubInspector{summaries: []driving.FileSummary{
		{
			Path: "/data/1abc.pdb",
			Models: []driving.ModelSummary{
				{Serial: 1, Chains: []driving.ChainSummary{
					{Ident: "A", Residues: 120},
					{Ident: "B", Residues: 64},
				}},
			},
		},
	}}
	defer func() { inspectorService = nil }()

	out, _, err := execute("inspect", "/data")

	require.NoError(t, err)
	assert.Contains(t, out, "/data/1abc.pdb")
	assert.Contains(t, out, "model 1")
	assert.Contains(t, out, "chain A: 120 residues")
	assert.Contains(t, out, "chain B: 64 residues")
}

func TestInspectCmd_ReportsUnparseableFiles(t *testing.T) {
	inspectorService = &stubInspector{summaries: []driving.FileSummary{
		{Path: "/data/bad.pdb", Err: "no models"},
	}}
	defer func() { inspectorService = nil }()

	out, _, err := execute("inspect", "/data")

	require.NoError(t, err)
	assert.Contains(t, out, "error: no models")
}

func TestInspectCmd_EmptyDirectory(t *testing.T) {
	inspectorService = &stubInspector{}
	defer func() { inspectorService = nil }()

	out, _, err := execute("inspect", "/data")

	require.NoError(t, err)
	assert.Contains(t, out, "No structure files found.")
}
