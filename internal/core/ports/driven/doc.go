// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StructureStore: Loads structures and serialises residue windows.
//     The segmentation logic depends on it only for iterating residues in
//     file order and for writing a residue-range selection to disk; it
//     must stay independent of any richer chemistry features of the
//     backing parser.
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the affected command degrades or is disabled:
//
//   - EntryFetcher: Downloads PDB entries from the archive (fetch command)
//   - RunStore: Batch run catalog (recording is skipped when nil)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
