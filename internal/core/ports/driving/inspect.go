package driving

import "context"

// Inspector summarises the models and chains of structure files.
type Inspector interface {
	// InspectDirectory summarises every matching file in dir, in
	// directory-listing order. Files that fail to parse carry the error
	// text in their summary instead of aborting the listing.
	InspectDirectory(ctx context.Context, dir string) ([]FileSummary, error)
}

// FileSummary describes one structure file.
type FileSummary struct {
	// Path is the file path.
	Path string

	// Err holds the parse failure text for unreadable files.
	Err string

	// Models summarises each model in file order.
	Models []ModelSummary
}

// ModelSummary describes one model.
type ModelSummary struct {
	// Serial is the model serial number.
	Serial int

	// Chains summarises each chain in file order.
	Chains []ChainSummary
}

// ChainSummary describes one chain.
type ChainSummary struct {
	// Ident is the chain identifier.
	Ident string

	// Residues is the residue count, computed by iteration.
	Residues int
}
