package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

func TestRunBatch_CollectsOutcomesForEveryInput(t *testing.T) {
	inputs := []string{"a", "b", "c"}

	run := runBatch(context.Background(), domain.RunCommandSplit, "dir", inputs, 2,
		func(_ context.Context, input string) (int, error) {
			if input == "b" {
				return 0, errors.New("broken")
			}
			return 2, nil
		})

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, domain.RunCommandSplit, run.Command)
	assert.Equal(t, "dir", run.Target)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))
	require.Len(t, run.Outcomes, 3)

	byPath := map[string]domain.FileOutcome{}
	for _, o := range run.Outcomes {
		byPath[o.Path] = o
	}
	assert.Equal(t, domain.OutcomeOK, byPath["a"].Status)
	assert.Equal(t, 2, byPath["a"].Outputs)
	assert.Equal(t, domain.OutcomeFailed, byPath["b"].Status)
	assert.Equal(t, "broken", byPath["b"].Detail)
	assert.Equal(t, []string{"b"}, run.FailedPaths())
}

func TestRunBatch_FailureInOneInputDoesNotStopOthers(t *testing.T) {
	inputs := []string{"x", "boom", "y", "z"}

	run := runBatch(context.Background(), domain.RunCommandRenumber, "dir", inputs, 1,
		func(_ context.Context, input string) (int, error) {
			if input == "boom" {
				return 0, errors.New("nope")
			}
			return 0, nil
		})

	require.Len(t, run.Outcomes, 4)
	assert.Equal(t, []string{"boom"}, run.FailedPaths())
}

func TestRunBatch_NoInputs(t *testing.T) {
	run := runBatch(context.Background(), domain.RunCommandFetch, "", nil, 0,
		func(context.Context, string) (int, error) { return 0, nil })

	assert.Empty(t, run.Outcomes)
	assert.False(t, run.Failed())
}

func TestRunBatch_BoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	active, peak := 0, 0

	inputs := make([]string, 16)
	for i := range inputs {
		inputs[i] = "f"
	}

	runBatch(context.Background(), domain.RunCommandSplit, "dir", inputs, 2,
		func(context.Context, string) (int, error) {
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
			return 0, nil
		})

	assert.LessOrEqual(t, peak, 2)
}

func TestRunBatch_CancellationStopsDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = "f"
	}

	processed := 0
	run := runBatch(ctx, domain.RunCommandSplit, "dir", inputs, 1,
		func(context.Context, string) (int, error) {
			processed++
			if processed == 3 {
				cancel()
			}
			return 0, nil
		})

	// Inputs never dispatched get no outcome at all.
	assert.Less(t, len(run.Outcomes), len(inputs))
	assert.GreaterOrEqual(t, len(run.Outcomes), 3)
}

func TestWorkerCount(t *testing.T) {
	assert.Equal(t, 7, workerCount(7))
	got := workerCount(0)
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, maxDefaultWorkers)
}
