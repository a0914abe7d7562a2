package cli

import (
	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/core/services"
)

// inspectorService is injected in tests; nil means build the real one.
var inspectorService driving.Inspector

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "List the models and chains of structure files",
	Long: `Parses every matching structure file in a directory and prints
its models, chains and per-chain residue counts. Files that fail to
parse are reported alongside the rest without stopping the listing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	svc := inspectorService
	if svc == nil {
		svc = services.NewInspectorService(structures(), settings())
	}

	summaries, err := svc.InspectDirectory(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		cmd.Println("No structure files found.")
		return nil
	}

	for _, summary := range summaries {
		cmd.Println(styled(headingStyle, summary.Path))
		if summary.Err != "" {
			cmd.Println(styled(failStyle, "  error: "+summary.Err))
			continue
		}
		for _, model := range summary.Models {
			cmd.Printf("  model %d\n", model.Serial)
			for _, chain := range model.Chains {
				cmd.Printf("    chain %s: %d residues\n", chain.Ident, chain.Residues)
			}
		}
	}
	return nil
}
