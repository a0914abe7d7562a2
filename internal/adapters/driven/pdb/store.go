package pdb

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.StructureStore = (*Store)(nil)

// Store is the file-based implementation of driven.StructureStore.
type Store struct{}

// NewStore creates a new PDB structure store.
func NewStore() *Store {
	return &Store{}
}

// Load parses the file at path into a Structure.
func (s *Store) Load(ctx context.Context, path string) (*domain.Structure, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrLoad, path, err)
	}
	defer f.Close()

	structure := &domain.Structure{Path: path}
	p := parser{structure: structure}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrLoad, path, err)
	}

	// A structure without a single chain is not a PDB file at all.
	if len(structure.Models) == 0 {
		return nil, fmt.Errorf("%w: %s does not appear to be a valid PDB file",
			domain.ErrLoad, path)
	}

	return structure, nil
}

// parser accumulates models, chains and residues while walking lines in
// file order. Residue order is file order, never the source numbering.
type parser struct {
	structure *domain.Structure
	model     *domain.Model
	chain     *domain.Chain

	// lastKey is the chain/resSeq/icode key of the residue the previous
	// ATOM line belonged to.
	lastKey string
	residue *domain.Residue
}

func (p *parser) line(line string) {
	// The record name occupies the first six columns.
	name := line
	if len(name) > 6 {
		name = name[:6]
	}
	switch strings.TrimSpace(name) {
	case "HEADER":
		p.header(line)
	case "MODEL":
		p.openModel(line)
	case "ENDMDL":
		p.model = nil
		p.chain = nil
		p.residue = nil
		p.lastKey = ""
	case "ATOM":
		p.atom(line)
	}
}

// header picks up the ID code from columns 63-66 when present.
func (p *parser) header(line string) {
	if len(line) >= 66 && p.structure.ID == "" {
		p.structure.ID = strings.TrimSpace(line[62:66])
	}
}

// openModel starts a new model with the serial from columns 11-14.
func (p *parser) openModel(line string) {
	serial := len(p.structure.Models) + 1
	if len(line) >= 14 {
		if n, err := strconv.Atoi(strings.TrimSpace(line[10:14])); err == nil && n > 0 {
			serial = n
		}
	}
	p.model = &domain.Model{Serial: serial}
	p.structure.Models = append(p.structure.Models, p.model)
	p.chain = nil
	p.residue = nil
	p.lastKey = ""
}

func (p *parser) atom(line string) {
	if len(line) <= resSeqEndCol {
		// Too short to carry a chain and residue number; not an atom
		// record the core can place.
		return
	}

	if p.model == nil {
		// File without explicit MODEL records: everything belongs to an
		// implicit model 1.
		p.openImplicitModel()
	}

	ident := chainIdent(line)
	if p.chain == nil || p.chain.Ident != ident {
		p.chain = p.getOrMakeChain(ident)
		p.residue = nil
		p.lastKey = ""
	}

	seqField := line[chainIdentCol+1 : resSeqEndCol]
	icode := ""
	if len(line) > resSeqEndCol {
		icode = line[resSeqEndCol : resSeqEndCol+1]
	}
	key := ident + seqField + icode
	if p.residue == nil || key != p.lastKey {
		p.residue = &domain.Residue{
			SeqField: seqField,
			Ordinal:  len(p.chain.Residues) + 1,
		}
		p.chain.Residues = append(p.chain.Residues, p.residue)
		p.lastKey = key
	}

	p.residue.Atoms = append(p.residue.Atoms, domain.AtomRecord{Line: line})
}

func (p *parser) openImplicitModel() {
	p.model = &domain.Model{Serial: 1}
	p.structure.Models = append(p.structure.Models, p.model)
}

// getOrMakeChain returns the chain with the given identifier in the
// current model, creating it if the model has none. ATOM records for one
// chain are not required to be contiguous.
func (p *parser) getOrMakeChain(ident string) *domain.Chain {
	for _, c := range p.model.Chains {
		if c.Ident == ident {
			return c
		}
	}
	c := &domain.Chain{Ident: ident}
	p.model.Chains = append(p.model.Chains, c)
	return c
}

// Fixed byte positions inside an ATOM record.
const (
	chainIdentCol = 21
	resSeqEndCol  = 26
)

// chainIdent reads the chain identifier column, mapping a blank to "_"
// so derived file names stay well formed.
func chainIdent(line string) string {
	ident := line[chainIdentCol : chainIdentCol+1]
	if ident == " " {
		ident = "_"
	}
	return ident
}

// WriteWindow serialises the window to an independent file at path.
func (s *Store) WriteWindow(ctx context.Context, w *domain.Window, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, path, err)
	}

	var b strings.Builder
	for _, res := range w.Residues {
		for _, atom := range res.Atoms {
			b.WriteString(atom.Line)
			b.WriteByte('\n')
		}
	}
	b.WriteString("TER\n")
	b.WriteString("END\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, path, err)
	}
	return nil
}
