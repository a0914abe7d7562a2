// Package pdb implements the StructureStore port over fixed-column PDB
// text files.
//
// The parser reads only what the core needs: MODEL/ENDMDL boundaries,
// chain identifiers, and ATOM records grouped into residues in file
// order. Raw atom lines are kept verbatim so that window serialisation
// copies every byte of payload through unchanged. Coordinates, elements
// and chemistry are never interpreted.
package pdb
