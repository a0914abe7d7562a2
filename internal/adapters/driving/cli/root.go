// Package cli implements the command-line interface for pdbkit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/config/file"
	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/pdb"
	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/storage/sqlite"
	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
	"github.com/peptide3d/pdbkit-cli/internal/logger"
)

// version is the application version, set at build time via ldflags.
var version = "dev"

var (
	verbose     bool
	workersFlag int
)

// Package-level collaborators. Commands construct their services from
// these on demand; tests inject replacements.
var (
	configStore    driven.ConfigStore
	structureStore driven.StructureStore
	runStore       driven.RunStore
)

var rootCmd = &cobra.Command{
	Use:   "pdbkit",
	Short: "Toolbox for working with PDB structure files",
	Long: `pdbkit fetches, slices and renumbers Protein Data Bank structure files.

Its core operations cut every chain of a structure into fixed-length
overlapping residue windows and rewrite residue numbering to restart
at 1, preparing files for downstream structural comparison pipelines.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().IntVar(&workersFlag, "workers", 0, "number of concurrent workers (0 = automatic)")
}

// Execute runs the root command. It returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// settings resolves effective settings from the config file and global
// flags. Per-command flags layer on top in each command.
func settings() domain.Settings {
	s := domain.DefaultSettings()
	cfg := loadConfig()
	if cfg == nil {
		s.Workers = workersFlag
		return s
	}

	if w := cfg.GetInt("split.window"); w > 0 {
		s.WindowSize = w
	}
	if p := cfg.GetString("split.pattern"); p != "" {
		s.FilePattern = p
	}
	if d := cfg.GetString("split.output_dir"); d != "" {
		s.OutputDir = d
	}
	if u := cfg.GetString("fetch.url"); u != "" {
		s.DownloadURL = u
	}
	s.Workers = cfg.GetInt("workers")
	if workersFlag > 0 {
		s.Workers = workersFlag
	}
	return s
}

// loadConfig opens the config store once. A broken config file is
// reported and ignored rather than blocking every command.
func loadConfig() driven.ConfigStore {
	if configStore != nil {
		return configStore
	}
	store, err := file.NewConfigStore(os.Getenv("PDBKIT_CONFIG_DIR"))
	if err != nil {
		logger.Warn("loading config: %s", err)
		return nil
	}
	configStore = store
	return configStore
}

// structures returns the structure store, creating the default
// file-based one on first use.
func structures() driven.StructureStore {
	if structureStore == nil {
		structureStore = pdb.NewStore()
	}
	return structureStore
}

// runs returns the run catalog, or nil when it cannot be opened. The
// catalog is a convenience; no command fails because of it.
func runs() driven.RunStore {
	if runStore != nil {
		return runStore
	}
	store, err := sqlite.NewStore(os.Getenv("PDBKIT_DATA_DIR"))
	if err != nil {
		logger.Warn("opening run catalog: %s", err)
		return nil
	}
	runStore = store
	return runStore
}
