package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// styled applies style only when stdout is a terminal, so piped output
// stays free of escape sequences.
func styled(style lipgloss.Style, s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return style.Render(s)
}

// printRunSummary reports a batch run: an "N out of M" line on stdout
// and, when anything failed, the failing inputs on stderr.
func printRunSummary(cmd *cobra.Command, run *domain.Run, verb string) {
	succeeded := 0
	for _, outcome := range run.Outcomes {
		if outcome.Status == domain.OutcomeOK {
			succeeded++
		}
	}

	line := fmt.Sprintf("%s %d out of %d files", verb, succeeded, len(run.Outcomes))
	if succeeded == len(run.Outcomes) {
		cmd.Println(styled(okStyle, line))
	} else {
		cmd.Println(styled(failStyle, line))
	}

	for _, path := range run.FailedPaths() {
		cmd.PrintErrln(styled(failStyle, "failed: "+path))
	}
}

// outputTotal sums the outputs of every successful outcome.
func outputTotal(run *domain.Run) int {
	total := 0
	for _, outcome := range run.Outcomes {
		total += outcome.Outputs
	}
	return total
}
