package services

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
	"github.com/peptide3d/pdbkit-cli/internal/logger"
)

// maxDefaultWorkers caps the worker pool when no explicit count is
// configured. Segmentation and renumbering are file-descriptor bound
// long before they are CPU bound.
const maxDefaultWorkers = 4

// workerCount resolves the pool size from settings.
func workerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	n := runtime.NumCPU()
	if n > maxDefaultWorkers {
		return maxDefaultWorkers
	}
	return n
}

// batchFunc processes one input (a file path or a PDB identifier) and
// returns the number of output files it produced.
type batchFunc func(ctx context.Context, input string) (int, error)

// runBatch processes every input through fn on a bounded worker pool and
// collects per-input outcomes into a Run. Files are independent: no
// error in one aborts another, and no ordering between files is
// guaranteed or needed. Cancellation is cooperative at file granularity:
// a cancelled context stops workers from picking up further inputs, and
// inputs never started are left out of the run.
func runBatch(ctx context.Context, command domain.RunCommand, target string, inputs []string, workers int, fn batchFunc) *domain.Run {
	run := &domain.Run{
		ID:        uuid.NewString(),
		Command:   command,
		Target:    target,
		StartedAt: time.Now().UTC(),
	}

	type slot struct {
		done    bool
		outcome domain.FileOutcome
	}
	slots := make([]slot, len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workerCount(workers); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				input := inputs[idx]
				outputs, err := fn(ctx, input)
				outcome := domain.FileOutcome{
					RunID:   run.ID,
					Path:    input,
					Status:  domain.OutcomeOK,
					Outputs: outputs,
				}
				if err != nil {
					outcome.Status = domain.OutcomeFailed
					outcome.Detail = err.Error()
					logger.Error("%s: %s", input, err)
				} else {
					logger.Debug("%s: ok (%d outputs)", input, outputs)
				}
				slots[idx] = slot{done: true, outcome: outcome}
			}
		}()
	}

dispatch:
	for idx := range inputs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	run.FinishedAt = time.Now().UTC()
	for _, s := range slots {
		if s.done {
			run.Outcomes = append(run.Outcomes, s.outcome)
		}
	}
	return run
}

// saveRun records the run in the catalog when one is configured.
// Catalog trouble never fails the batch itself.
func saveRun(ctx context.Context, store driven.RunStore, run *domain.Run) {
	if store == nil {
		return
	}
	if err := store.Save(ctx, run); err != nil {
		logger.Warn("recording run %s: %s", run.ID, err)
	}
}
