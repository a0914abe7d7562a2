package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/core/services"
)

var (
	pairsFormat string

	// pairListerService is injected in tests; nil means build the real one.
	pairListerService driving.PairLister
)

var pairsCmd = &cobra.Command{
	Use:   "pairs [dir]",
	Short: "List all unordered pairs of structure files",
	Long: `Lists every unordered pair of matching files in a directory, one
pair per line, for driving pairwise structural comparisons.

The --format template renders each pair; {a} and {b} expand to the two
file names. The default "{a} {b}" suits xargs -n2.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPairs,
}

func init() {
	pairsCmd.Flags().StringVar(&pairsFormat, "format", "{a} {b}", "output template; {a} and {b} are the file names")
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	svc := pairListerService
	if svc == nil {
		svc = services.NewPairListerService(settings())
	}

	pairs, err := svc.Pairs(cmd.Context(), dir)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		line := strings.ReplaceAll(pairsFormat, "{a}", pair.A)
		line = strings.ReplaceAll(line, "{b}", pair.B)
		cmd.Println(line)
	}
	return nil
}
