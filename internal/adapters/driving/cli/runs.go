package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent batch runs",
	Long: `Lists recent fetch, split and renumber runs from the local run
catalog, newest first.`,
	RunE: runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the per-file outcomes of one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs to list")
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	store := runs()
	if store == nil {
		return errors.New("run catalog not available")
	}

	recent, err := store.Recent(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, run := range recent {
		status := styled(okStyle, "ok")
		if run.Failed() {
			status = styled(failStyle, "failed")
		}
		cmd.Printf("%s  %-9s %-7s %s  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Command, status, run.ID, run.Target)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	store := runs()
	if store == nil {
		return errors.New("run catalog not available")
	}

	run, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Println(styled(headingStyle, string(run.Command)+" "+run.Target))
	cmd.Printf("started  %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("finished %s\n", run.FinishedAt.Local().Format("2006-01-02 15:04:05"))
	for _, outcome := range run.Outcomes {
		if outcome.Status == domain.OutcomeOK {
			cmd.Printf("  %s %s (%d outputs)\n", styled(okStyle, "ok    "), outcome.Path, outcome.Outputs)
		} else {
			cmd.Printf("  %s %s: %s\n", styled(failStyle, "failed"), outcome.Path, outcome.Detail)
		}
	}
	return nil
}
