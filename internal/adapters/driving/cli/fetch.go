package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/rcsb"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/core/services"
)

var (
	fetchIDs    string
	fetchIDFile string
	fetchOut    string

	// fetcherService is injected in tests; nil means build the real one.
	fetcherService driving.Fetcher
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download PDB entries from the RCSB archive",
	Long: `Downloads PDB entries by identifier and saves each as {ID}.pdb.

Identifiers come from --ids as a comma-separated list, or from --id-file
with one identifier per line. They are upper-cased before download, so
1abc and 1ABC name the same entry.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchIDs, "ids", "", "comma-separated PDB identifiers")
	fetchCmd.Flags().StringVar(&fetchIDFile, "id-file", "", "file with one PDB identifier per line")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "pdb_downloads", "output directory")
	fetchCmd.MarkFlagsMutuallyExclusive("ids", "id-file")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ids, err := collectIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errors.New("no PDB identifiers given; use --ids or --id-file")
	}

	svc := fetcherService
	if svc == nil {
		s := settings()
		svc = services.NewFetcherService(rcsb.NewClient(s.DownloadURL), runs(), s)
	}

	run, err := svc.FetchAll(cmd.Context(), ids, fetchOut)
	if err != nil {
		return err
	}

	printRunSummary(cmd, run, "Downloaded")

	if run.Failed() {
		return fmt.Errorf("%d of %d downloads failed", len(run.FailedPaths()), len(run.Outcomes))
	}
	return nil
}

// collectIDs gathers raw identifiers from the flags; normalisation
// happens in the fetch service.
func collectIDs() ([]string, error) {
	if fetchIDs != "" {
		return strings.Split(fetchIDs, ","), nil
	}
	if fetchIDFile == "" {
		return nil, nil
	}

	f, err := os.Open(fetchIDFile)
	if err != nil {
		return nil, fmt.Errorf("reading id file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		ids = append(ids, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading id file: %w", err)
	}
	return ids, nil
}
