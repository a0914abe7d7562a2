package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/core/services"
)

// renumbererService is injected in tests; nil means build the real one.
var renumbererService driving.Renumberer

var renumberCmd = &cobra.Command{
	Use:   "renumber <path>",
	Short: "Reset residue numbering to start at 1",
	Long: `Rewrites the residue sequence number of every ATOM record so
numbering restarts at 1 and increments once per distinct residue,
regardless of how the file was numbered before. Files are rewritten in
place; every other column is preserved byte for byte.

When path is a directory, every matching file in it is renumbered.`,
	Args: cobra.ExactArgs(1),
	RunE: runRenumber,
}

func init() {
	rootCmd.AddCommand(renumberCmd)
}

func runRenumber(cmd *cobra.Command, args []string) error {
	svc := renumbererService
	if svc == nil {
		svc = services.NewRenumbererService(runs(), settings())
	}

	run, err := svc.Renumber(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printRunSummary(cmd, run, "Renumbered")

	if run.Failed() {
		return fmt.Errorf("%d of %d files failed", len(run.FailedPaths()), len(run.Outcomes))
	}
	return nil
}
