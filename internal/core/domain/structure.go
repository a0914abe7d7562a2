package domain

import "fmt"

// Structure is the parsed representation of one PDB-format input file.
// It contains an ordered sequence of models; most single-structure files
// contain exactly one, but nothing here assumes that.
type Structure struct {
	// Path is the file the structure was loaded from.
	Path string

	// ID is the PDB identifier code, when the header carries one.
	ID string

	// Models holds the models in file order.
	Models []*Model
}

// Model contains an ordered sequence of chains.
type Model struct {
	// Serial is the model serial number from the MODEL record.
	// It is 1 for files without explicit MODEL records.
	Serial int

	// Chains holds the chains in file order.
	Chains []*Chain
}

// Chain is an ordered sequence of residues within one model,
// identified by a short label. Residue order is file order; it is
// never derived from the residue sequence numbers.
type Chain struct {
	// Ident is the chain identifier, "_" when the column is blank.
	Ident string

	// Residues holds the residues in file order.
	Residues []*Residue
}

// Residue is one sequence unit within a chain. It is identified by the
// original residue-number field text from the source file and by its
// 1-based ordinal position in iteration order. The two are unrelated:
// source numbering may start anywhere and may have gaps.
type Residue struct {
	// SeqField is the raw residue-number field text from the source,
	// whitespace included, exactly as it appears in columns 23-26.
	SeqField string

	// Ordinal is the 1-based position within the chain, in file order.
	Ordinal int

	// Atoms holds the atom records belonging to this residue.
	Atoms []AtomRecord
}

// AtomRecord is one fixed-column ATOM line. Everything except the
// residue-number field is opaque payload that is copied through unchanged.
type AtomRecord struct {
	// Line is the full raw text line, without trailing newline.
	Line string
}

// Length returns the number of residues in the chain.
func (c *Chain) Length() int {
	return len(c.Residues)
}

// WindowStarts returns every valid 1-based window starting ordinal for
// the given window size. A chain shorter than size yields none: partial
// windows are never emitted.
func (c *Chain) WindowStarts(size int) []int {
	length := c.Length()
	if size < 1 || length < size {
		return nil
	}
	starts := make([]int, 0, length-size+1)
	for start := 1; start+size-1 <= length; start++ {
		starts = append(starts, start)
	}
	return starts
}

// Window returns the residues of the window beginning at the 1-based
// ordinal start, or nil when the span would run past the chain end.
func (c *Chain) Window(start, size int) []*Residue {
	if start < 1 || size < 1 || start+size-1 > c.Length() {
		return nil
	}
	return c.Residues[start-1 : start-1+size]
}

// Window is a derived, ephemeral entity: a contiguous span of residues
// within one chain of one model, materialised as an independent output
// file and then discarded.
type Window struct {
	// SourcePath is the file the window was cut from.
	SourcePath string

	// ModelSerial identifies the model the window belongs to.
	ModelSerial int

	// ChainIdent identifies the chain the window belongs to.
	ChainIdent string

	// Start is the 1-based ordinal of the first residue in the span.
	Start int

	// Residues are copies of the residues whose ordinal falls in the span.
	Residues []*Residue
}

// FileName derives the deterministic output file name for the window.
// The model serial is only included for multi-model structures, so that
// the common single-model case keeps the short historical shape.
func (w *Window) FileName(base string, multiModel bool) string {
	if multiModel {
		return fmt.Sprintf("%s_m%d_%s_%d.pdb", base, w.ModelSerial, w.ChainIdent, w.Start)
	}
	return fmt.Sprintf("%s_%s_%d.pdb", base, w.ChainIdent, w.Start)
}
