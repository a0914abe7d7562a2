package driving

import "context"

// PairLister enumerates all unordered pairs of distinct files in a
// directory, for driving pairwise structure comparisons.
type PairLister interface {
	// Pairs lists every unordered pair of matching files in dir.
	// A pair never contains the same file twice; the listing is
	// deterministic (lexicographic by file name).
	Pairs(ctx context.Context, dir string) ([]Pair, error)
}

// Pair is one unordered pair of file names.
type Pair struct {
	// A is the first file name.
	A string

	// B is the second file name.
	B string
}
