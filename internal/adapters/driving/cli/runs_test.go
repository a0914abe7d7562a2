package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/storage/memory"
	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

func setupTestCatalog(t *testing.T) *memory.RunStore {
	t.Helper()
	store := memory.NewRunStore()
	runStore = store
	t.Cleanup(func() { runStore = nil })
	return store
}

func TestRunsCmd_EmptyCatalog(t *testing.T) {
	setupTestCatalog(t)

	out, _, err := execute("runs")

	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestRunsCmd_ListsNewestFirst(t *testing.T) {
	store := setupTestCatalog(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	older := okRun(domain.RunCommandSplit, "a.pdb")
	older.ID = "older"
	older.StartedAt = base
	newer := okRun(domain.RunCommandRenumber, "b.pdb")
	newer.ID = "newer"
	newer.StartedAt = base.Add(time.Hour)
	require.NoError(t, store.Save(context.Background(), older))
	require.NoError(t, store.Save(context.Background(), newer))

	out, _, err := execute("runs")

	require.NoError(t, err)
	newerIdx := strings.Index(out, "newer")
	olderIdx := strings.Index(out, "older")
	require.NotEqual(t, -1, newerIdx)
	require.NotEqual(t, -1, olderIdx)
	assert.Less(t, newerIdx, olderIdx)
}

func TestRunsCmd_MarksFailedRuns(t *testing.T) {
	store := setupTestCatalog(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	good := okRun(domain.RunCommandSplit, "a.pdb")
	good.ID = "all-good"
	good.StartedAt = base
	bad := failedRun(domain.RunCommandSplit, "broken.pdb")
	bad.ID = "has-failure"
	bad.StartedAt = base.Add(time.Minute)
	require.NoError(t, store.Save(context.Background(), good))
	require.NoError(t, store.Save(context.Background(), bad))

	out, _, err := execute("runs")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "has-failure")
	assert.Contains(t, lines[0], "failed")
	assert.Contains(t, lines[1], "all-good")
	assert.Contains(t, lines[1], "ok")
}

func TestRunsShowCmd_PrintsOutcomes(t *testing.T) {
	store := setupTestCatalog(t)
	run := failedRun(domain.RunCommandSplit, "bad.pdb")
	require.NoError(t, store.Save(context.Background(), run))

	out, _, err := execute("runs", "show", run.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "bad.pdb")
	assert.Contains(t, out, "boom")
}

func TestRunsShowCmd_UnknownRun(t *testing.T) {
	setupTestCatalog(t)

	_, _, err := execute("runs", "show", "absent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
