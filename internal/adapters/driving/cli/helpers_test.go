package cli

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
)

// execute runs the root command with args and captures stdout/stderr.
func execute(args ...string) (string, string, error) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func okRun(command domain.RunCommand, paths ...string) *domain.Run {
	run := &domain.Run{
		ID:        "run-test",
		Command:   command,
		StartedAt: time.Now().UTC(),
	}
	for _, path := range paths {
		run.Outcomes = append(run.Outcomes, domain.FileOutcome{
			RunID: run.ID, Path: path, Status: domain.OutcomeOK, Outputs: 1,
		})
	}
	run.FinishedAt = time.Now().UTC()
	return run
}

func failedRun(command domain.RunCommand, path string) *domain.Run {
	run := okRun(command)
	run.Outcomes = append(run.Outcomes, domain.FileOutcome{
		RunID: run.ID, Path: path, Status: domain.OutcomeFailed, Detail: "boom",
	})
	return run
}

// stubSegmenter returns a fixed run from SegmentDirectory.
type stubSegmenter struct {
	run *domain.Run
	err error
}

func (s *stubSegmenter) SegmentDirectory(context.Context, string) (*domain.Run, error) {
	return s.run, s.err
}

func (s *stubSegmenter) SegmentFile(context.Context, string) (int, error) {
	return 0, fmt.Errorf("not used")
}

// stubRenumberer returns a fixed run from Renumber.
type stubRenumberer struct {
	run *domain.Run
	err error
}

func (s *stubRenumberer) Renumber(context.Context, string) (*domain.Run, error) {
	return s.run, s.err
}

func (s *stubRenumberer) RenumberFile(context.Context, string) error {
	return fmt.Errorf("not used")
}

// stubFetcher records the identifiers it was asked for.
type stubFetcher struct {
	run *domain.Run
	ids []string
}

func (s *stubFetcher) FetchAll(_ context.Context, ids []string, _ string) (*domain.Run, error) {
	s.ids = ids
	return s.run, nil
}

// stubInspector returns fixed summaries.
type stubInspector struct {
	summaries []driving.FileSummary
}

func (s *stubInspector) InspectDirectory(context.Context, string) ([]driving.FileSummary, error) {
	return s.summaries, nil
}

// stubPairLister returns fixed pairs.
type stubPairLister struct {
	pairs []driving.Pair
}

func (s *stubPairLister) Pairs(context.Context, string) ([]driving.Pair, error) {
	return s.pairs, nil
}
