package domain

import "time"

// RunCommand identifies which tool produced a run.
type RunCommand string

// Commands that record runs in the catalog.
const (
	// RunCommandFetch is a bulk download batch.
	RunCommandFetch RunCommand = "fetch"

	// RunCommandSplit is a segmentation batch.
	RunCommandSplit RunCommand = "split"

	// RunCommandRenumber is a renumbering batch.
	RunCommandRenumber RunCommand = "renumber"
)

// IsValid returns true if the run command is recognised.
func (c RunCommand) IsValid() bool {
	switch c {
	case RunCommandFetch, RunCommandSplit, RunCommandRenumber:
		return true
	default:
		return false
	}
}

// OutcomeStatus is the per-file result of a batch operation.
type OutcomeStatus string

// Per-file outcome statuses.
const (
	// OutcomeOK means the file was processed successfully.
	OutcomeOK OutcomeStatus = "ok"

	// OutcomeFailed means the file was reported and skipped.
	OutcomeFailed OutcomeStatus = "failed"
)

// FileOutcome records the result of processing one file (or one PDB
// identifier, for fetch runs) within a batch.
type FileOutcome struct {
	// RunID links to the Run this outcome belongs to.
	RunID string

	// Path is the input file path or PDB identifier.
	Path string

	// Status is ok or failed.
	Status OutcomeStatus

	// Detail carries the error text for failed outcomes.
	Detail string

	// Outputs is the number of files produced from this input.
	Outputs int
}

// Run is the recorded outcome of one batch operation. No error in one
// file aborts processing of others; the run aggregates every per-file
// result and the process exit status reflects whether any failed.
type Run struct {
	// ID is the unique run identifier.
	ID string

	// Command identifies the tool that produced the run.
	Command RunCommand

	// Target is the directory or ID list the run operated on.
	Target string

	// StartedAt is when the batch began.
	StartedAt time.Time

	// FinishedAt is when the batch completed.
	FinishedAt time.Time

	// Outcomes holds one entry per processed file.
	Outcomes []FileOutcome
}

// Failed returns true if any file in the run failed.
func (r *Run) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == OutcomeFailed {
			return true
		}
	}
	return false
}

// FailedPaths returns the paths of every failed outcome, in order.
func (r *Run) FailedPaths() []string {
	var paths []string
	for _, o := range r.Outcomes {
		if o.Status == OutcomeFailed {
			paths = append(paths, o.Path)
		}
	}
	return paths
}
