package domain

// DefaultWindowSize is the residue width of a segmentation window.
// Nine residues is the peptide length the toolbox was built around.
const DefaultWindowSize = 9

// DefaultFilePattern matches the structure files a directory scan picks up.
const DefaultFilePattern = "*.pdb"

// DefaultDownloadURL is the RCSB download endpoint. The %s placeholder
// receives the upper-cased PDB identifier.
const DefaultDownloadURL = "https://files.rcsb.org/download/%s.pdb"

// Settings is tool-wide configuration. Every component receives it
// explicitly; nothing reads a process-wide default.
type Settings struct {
	// WindowSize is the residue width of each segmentation window.
	WindowSize int

	// FilePattern is the glob that selects structure files in a directory.
	FilePattern string

	// OutputDir is where derived files are written. Empty means the
	// input file's own directory.
	OutputDir string

	// DownloadURL is the archive endpoint for fetch, with one %s for the ID.
	DownloadURL string

	// Workers bounds the batch worker pool. Zero means a CPU-derived default.
	Workers int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		WindowSize:  DefaultWindowSize,
		FilePattern: DefaultFilePattern,
		DownloadURL: DefaultDownloadURL,
	}
}

// Normalise fills zero values with defaults and returns the result.
func (s Settings) Normalise() Settings {
	d := DefaultSettings()
	if s.WindowSize <= 0 {
		s.WindowSize = d.WindowSize
	}
	if s.FilePattern == "" {
		s.FilePattern = d.FilePattern
	}
	if s.DownloadURL == "" {
		s.DownloadURL = d.DownloadURL
	}
	if s.Workers < 0 {
		s.Workers = 0
	}
	return s
}
