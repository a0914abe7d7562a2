// Package domain defines the core business entities for pdbkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Structure: A parsed PDB entry (models, chains, residues, atom records)
//   - Window: A fixed-length contiguous residue span within one chain
//   - Run: The recorded outcome of one batch operation
//   - Settings: Tool-wide configuration with defaults
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
