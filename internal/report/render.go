package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sigscan/sigscan/internal/types"
)

var (
	sevCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sevHighStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	sevMediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sevLowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	categoryStyle    = lipgloss.NewStyle().Bold(true)
	snippetStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	passStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	FilesSkipped int

	// Totals and Failed describe the full unfiltered scan, independent of
	// the findings passed for display.
	Totals map[types.Severity]int
	Failed bool
}

func severityLabel(s types.Severity, noColor bool) string {
	label := fmt.Sprintf("%-8s", s)
	if noColor {
		return label
	}
	switch s {
	case types.SevCritical:
		return sevCriticalStyle.Render(label)
	case types.SevHigh:
		return sevHighStyle.Render(label)
	case types.SevMedium:
		return sevMediumStyle.Render(label)
	default:
		return sevLowStyle.Render(label)
	}
}

// PrintFindings renders findings grouped under category headers. Consecutive
// findings sharing a category share one header; grouping is presentational
// only and does not reorder the input.
func PrintFindings(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No issues found.")
	}

	lastCategory := ""
	for _, f := range findings {
		if f.Category != lastCategory {
			header := f.Category
			if !opts.NoColor {
				header = categoryStyle.Render(header)
			}
			fmt.Fprintf(w, "\n%s\n", header)
			lastCategory = f.Category
		}
		fmt.Fprintf(w, "  %s %s:%d  %s\n", severityLabel(f.Severity, opts.NoColor), f.File, f.Line, f.Message)
		snippet := f.Snippet
		if !opts.NoColor {
			snippet = snippetStyle.Render(snippet)
		}
		fmt.Fprintf(w, "           %s\n", snippet)
	}

	printSummary(w, opts)
}

func printSummary(w io.Writer, opts PrintOptions) {
	if opts.Totals == nil {
		return
	}
	total := 0
	for _, n := range opts.Totals {
		total += n
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (critical: %d, high: %d, medium: %d, low: %d)\n",
		total,
		opts.Totals[types.SevCritical],
		opts.Totals[types.SevHigh],
		opts.Totals[types.SevMedium],
		opts.Totals[types.SevLow])
	if opts.FilesScanned > 0 || opts.FilesSkipped > 0 {
		fmt.Fprintf(w, "Files scanned: %d", opts.FilesScanned)
		if opts.FilesSkipped > 0 {
			fmt.Fprintf(w, " (skipped: %d)", opts.FilesSkipped)
		}
		fmt.Fprintln(w)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}

	verdict := "PASS"
	style := passStyle
	if opts.Failed {
		verdict = "FAIL (critical findings present)"
		style = failStyle
	}
	if !opts.NoColor {
		verdict = style.Render(verdict)
	}
	fmt.Fprintf(w, "Verdict: %s\n", verdict)
}
