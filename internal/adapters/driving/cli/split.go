package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/core/services"
)

var (
	splitWindow int
	splitOut    string

	// segmenterService is injected in tests; nil means build the real one.
	segmenterService driving.Segmenter
)

var splitCmd = &cobra.Command{
	Use:   "split [dir]",
	Short: "Cut structures into overlapping residue windows",
	Long: `Cuts every chain of every structure file in a directory into
fixed-length overlapping residue windows, writing each window as its own
PDB file named {base}_{chain}_{start}.pdb.

Consecutive windows advance by one residue, so a chain of L residues
yields L-w+1 windows of size w. Chains shorter than the window size
produce no output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().IntVarP(&splitWindow, "window", "w", 0, "residues per window (default 9)")
	splitCmd.Flags().StringVarP(&splitOut, "out", "o", "", "output directory (default: alongside inputs)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	svc := segmenterService
	if svc == nil {
		s := settings()
		if splitWindow > 0 {
			s.WindowSize = splitWindow
		}
		if splitOut != "" {
			s.OutputDir = splitOut
		}
		svc = services.NewSegmenterService(structures(), runs(), s)
	}

	run, err := svc.SegmentDirectory(cmd.Context(), dir)
	if err != nil {
		return err
	}

	printRunSummary(cmd, run, "Segmented")
	cmd.Println(dimStyleLine(fmt.Sprintf("%d window files written (run %s)", outputTotal(run), run.ID)))

	if run.Failed() {
		return fmt.Errorf("%d of %d files failed", len(run.FailedPaths()), len(run.Outcomes))
	}
	return nil
}

// dimStyleLine renders a secondary line of output.
func dimStyleLine(s string) string {
	return styled(dimStyle, s)
}
