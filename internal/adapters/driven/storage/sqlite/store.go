// Package sqlite provides the on-disk run catalog backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed run catalog. It implements
// driven.RunStore.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.RunStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.pdbkit/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pdbkit", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores a run together with its per-file outcomes. Saving a run
// with an existing ID replaces the previous record entirely.
func (s *Store) Save(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: run must have an ID", domain.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, command, target, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			command = excluded.command,
			target = excluded.target,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, run.ID, string(run.Command), run.Target, run.StartedAt.UTC(), run.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM file_outcomes WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing outcomes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO file_outcomes (run_id, position, path, status, detail, outputs)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, outcome := range run.Outcomes {
		if _, err := stmt.ExecContext(ctx, run.ID, i, outcome.Path,
			string(outcome.Status), outcome.Detail, outcome.Outputs); err != nil {
			return fmt.Errorf("saving outcome for %s: %w", outcome.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, command, target, started_at, finished_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := s.loadOutcomes(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Recent returns up to limit runs, newest first. A non-positive limit
// returns all runs.
func (s *Store) Recent(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `
		SELECT id, command, target, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for _, run := range runs {
		if err := s.loadOutcomes(ctx, run); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*domain.Run, error) {
	var run domain.Run
	var command string
	var startedAt, finishedAt sql.NullTime
	if err := sc.Scan(&run.ID, &command, &run.Target, &startedAt, &finishedAt); err != nil {
		return nil, err
	}

	run.Command = domain.RunCommand(command)
	if startedAt.Valid {
		run.StartedAt = startedAt.Time.UTC()
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time.UTC()
	}
	return &run, nil
}

func (s *Store) loadOutcomes(ctx context.Context, run *domain.Run) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, status, detail, outputs
		FROM file_outcomes WHERE run_id = ? ORDER BY position
	`, run.ID)
	if err != nil {
		return fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		outcome := domain.FileOutcome{RunID: run.ID}
		var status string
		if err := rows.Scan(&outcome.Path, &status, &outcome.Detail, &outcome.Outputs); err != nil {
			return fmt.Errorf("scanning outcome: %w", err)
		}
		outcome.Status = domain.OutcomeStatus(status)
		run.Outcomes = append(run.Outcomes, outcome)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating outcomes: %w", err)
	}
	return nil
}
