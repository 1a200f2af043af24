// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careers-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCareersToShow is the default number of careers to display
	maxCareersToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSourceSummary outputs the record counts extracted from each source.
func (p *Printer) PrintSourceSummary(profileCount, wageCount int, workbookURL string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("OOH profiles:  %d\n", profileCount))
	sb.WriteString(fmt.Sprintf("OEWS rows:     %d\n", wageCount))
	sb.WriteString(fmt.Sprintf("Workbook:      %s", workbookURL))
	p.printBox("Source Summary", sb.String())
}

// PrintCatalog outputs a human-readable summary of the assembled catalog.
func (p *Printer) PrintCatalog(catalog *types.Catalog) {
	if catalog == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version:  %s\n", catalog.Version))
	sb.WriteString(fmt.Sprintf("Careers:  %d\n", len(catalog.Careers)))
	sb.WriteString("\n")

	count := min(len(catalog.Careers), maxCareersToShow)
	for i := 0; i < count; i++ {
		rec := catalog.Careers[i]
		sb.WriteString(fmt.Sprintf("• %s\n", rec.Title))
		sb.WriteString(fmt.Sprintf("  median: %s  starting proxy: %s\n",
			formatWage(rec.Pay.MedianAnnual), formatWage(rec.Pay.StartingProxyAnnual)))
		if rec.EducationCost != nil {
			sb.WriteString(fmt.Sprintf("  education: %d years, $%.0f\n",
				rec.EducationCost.Years, rec.EducationCost.TotalTuitionFees))
		}
	}
	if len(catalog.Careers) > maxCareersToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(catalog.Careers)-maxCareersToShow))
	}

	p.printBox("Careers Catalog", strings.TrimRight(sb.String(), "\n"))
}

// formatWage renders an optional wage value for display.
func formatWage(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.0f", *v)
}
