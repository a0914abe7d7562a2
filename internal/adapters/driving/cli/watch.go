package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driving/watch"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/core/services"
)

var (
	watchOut    string
	watchWindow int

	// watcherService is injected in tests; nil means build the real one.
	watcherService driving.Watcher
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Segment structure files as they arrive in a directory",
	Long: `Watches a directory and segments every matching structure file
dropped into it, writing windows to the output directory. Runs until
interrupted.

The output directory must differ from the watched directory, otherwise
the generated window files would be segmented again themselves.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output directory for window files (required)")
	watchCmd.Flags().IntVarP(&watchWindow, "window", "w", 0, "residues per window (default 9)")
	_ = watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc := watcherService
	if svc == nil {
		s := settings()
		if watchWindow > 0 {
			s.WindowSize = watchWindow
		}
		s.OutputDir = watchOut
		segmenter := services.NewSegmenterService(structures(), runs(), s)
		svc = watch.NewWatcher(segmenter, s)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := svc.Watch(ctx, args[0])
	if errors.Is(err, context.Canceled) {
		cmd.Println("Watch stopped.")
		return nil
	}
	return err
}
