package domain

import (
	"fmt"
	"strings"
)

// Fixed-column positions of the residue sequence number field.
// Columns 23-26 in the 1-based PDB numbering, bytes [22:26] here.
const (
	resSeqStart = 22
	resSeqEnd   = 26

	// resSeqWidth is the byte width of the field; rewritten values are
	// right-justified inside it.
	resSeqWidth = 4
)

// RecordKind discriminates the line kinds the core cares about.
// Everything else is opaque payload.
type RecordKind int

// Line kinds, determined by the record name at the start of the line.
const (
	// RecordOther is any line that is neither an ATOM nor a TER record.
	RecordOther RecordKind = iota

	// RecordAtom is an ATOM coordinate record.
	RecordAtom

	// RecordTer is a chain terminator record.
	RecordTer
)

// KindOf returns the record kind of a raw line.
func KindOf(line string) RecordKind {
	switch {
	case strings.HasPrefix(line, "ATOM"):
		return RecordAtom
	case strings.HasPrefix(line, "TER"):
		return RecordTer
	default:
		return RecordOther
	}
}

// ResidueField returns the raw residue-number field text of a line,
// whitespace included. Lines too short to reach the field yield the
// bytes that are present; a bare "TER" yields the empty string, which
// compares as different from any real field value.
func ResidueField(line string) string {
	if len(line) <= resSeqStart {
		return ""
	}
	if len(line) < resSeqEnd {
		return line[resSeqStart:]
	}
	return line[resSeqStart:resSeqEnd]
}

// FormatResidueNumber renders n right-justified in the fixed field width.
func FormatResidueNumber(n int) string {
	return fmt.Sprintf("%*d", resSeqWidth, n)
}

// WithResidueNumber returns the line with the residue-number field
// rewritten to n, every other byte unchanged. Lines shorter than the
// field span are padded with spaces up to it first, so a truncated TER
// record still receives a column-exact field.
func WithResidueNumber(line string, n int) string {
	if len(line) < resSeqStart {
		line += strings.Repeat(" ", resSeqStart-len(line))
	}
	tail := ""
	if len(line) > resSeqEnd {
		tail = line[resSeqEnd:]
	}
	return line[:resSeqStart] + FormatResidueNumber(n) + tail
}
