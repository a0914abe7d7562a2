package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Used for missing files and for PDB identifiers the archive does not know.
	ErrNotFound = errors.New("not found")

	// ErrLoad indicates a file could not be read or parsed as a structure.
	// Batch processing reports the file and continues with the rest.
	ErrLoad = errors.New("structure load failed")

	// ErrWrite indicates an output destination could not be created or written.
	// Aborts the current file only, never the whole batch.
	ErrWrite = errors.New("write failed")

	// ErrFormat indicates a line expected to carry a residue-number field
	// does not match the fixed-column contract.
	ErrFormat = errors.New("fixed-column format violation")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
