package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/logger"
)

// Ensure RenumbererService implements the interface.
var _ driving.Renumberer = (*RenumbererService)(nil)

// RenumbererService rewrites residue sequence numbers so numbering
// restarts contiguously at 1. It operates line-by-line on raw text, not
// the parsed object model, to guarantee column-exact preservation of
// every field it does not touch.
type RenumbererService struct {
	runs     driven.RunStore
	settings domain.Settings
}

// NewRenumbererService creates a renumberer. runs may be nil to skip
// catalog recording.
func NewRenumbererService(runs driven.RunStore, settings domain.Settings) *RenumbererService {
	return &RenumbererService{
		runs:     runs,
		settings: settings.Normalise(),
	}
}

// Renumber processes the file at path, or every matching file when path
// is a directory.
func (s *RenumbererService) Renumber(ctx context.Context, path string) (*domain.Run, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = listMatching(path, s.settings.FilePattern); err != nil {
			return nil, err
		}
		logger.Info("renumbering %d files in %s", len(files), path)
	}

	run := runBatch(ctx, domain.RunCommandRenumber, path, files, s.settings.Workers,
		func(ctx context.Context, file string) (int, error) {
			return 0, s.RenumberFile(ctx, file)
		})
	saveRun(ctx, s.runs, run)
	return run, nil
}

// RenumberFile rewrites one file. The new content goes to a temporary
// file in the same directory which is renamed over the original on
// success, so a failure mid-write never leaves a partially rewritten
// file behind.
func (s *RenumbererService) RenumberFile(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrLoad, path, err)
	}

	lines, trailingNewline := splitLines(string(data))
	renumbered := renumberLines(lines)

	out := strings.Join(renumbered, "\n")
	if trailingNewline {
		out += "\n"
	}
	return replaceFile(path, []byte(out))
}

// renumberLines is the pure transformation at the heart of renumbering.
//
// It tracks the most recently seen residue-number field text and a
// running output number starting at 0. An ATOM line whose field differs
// from the current identifier bumps the output number; a TER line whose
// field differs updates the identifier WITHOUT bumping the number,
// matching the historical behaviour (a TER reporting a residue id
// distinct from its preceding ATOM yields a TER number that lags the
// distinct-residue count - see DESIGN.md). Field comparison is textual,
// so a field that is not parseable as an integer simply counts as
// different. Every other line passes through byte-for-byte.
func renumberLines(lines []string) []string {
	out := make([]string, len(lines))

	current := ""
	seen := false
	number := 0

	for i, line := range lines {
		switch domain.KindOf(line) {
		case domain.RecordAtom:
			field := domain.ResidueField(line)
			if !seen || field != current {
				current = field
				seen = true
				number++
			}
			out[i] = domain.WithResidueNumber(line, number)
		case domain.RecordTer:
			field := domain.ResidueField(line)
			if !seen || field != current {
				current = field
				seen = true
			}
			out[i] = domain.WithResidueNumber(line, number)
		default:
			out[i] = line
		}
	}
	return out
}

// splitLines splits on newlines, remembering whether the content ended
// with one so the rewrite reproduces it exactly.
func splitLines(content string) ([]string, bool) {
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = strings.TrimSuffix(content, "\n")
	}
	if content == "" {
		return nil, trailing
	}
	return strings.Split(content, "\n"), trailing
}

// replaceFile writes data to a temporary sibling of path and renames it
// over the original.
func replaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, path, err)
	}

	// Carry the original mode over; CreateTemp defaults to 0600.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpPath, info.Mode())
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, path, err)
	}
	return nil
}
