// Command pdbkit is a toolbox for fetching, slicing and renumbering PDB
// structure files.
package main

import (
	"os"

	"github.com/peptide3d/pdbkit-cli/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
