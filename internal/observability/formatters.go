// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/doomscore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFactorsToShow is the default number of factors to display per list
	maxFactorsToShow = 5
)

// Printer handles formatted output for terminal results.
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

// PrintResult outputs a human-readable summary of an analysis result.
func (p *Printer) PrintResult(resp *types.AnalyzeResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder

	subject := resp.JobTitle
	if subject == "" {
		subject = resp.Name
	}
	if subject != "" {
		sb.WriteString(fmt.Sprintf("Subject:  %s\n", subject))
	}
	if resp.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", resp.Headline))
	}
	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", resp.Score))
	sb.WriteString(fmt.Sprintf("Tier:     %s\n", resp.Tier))

	if resp.Roast != "" {
		sb.WriteString("\n")
		sb.WriteString(resp.Roast)
		sb.WriteString("\n")
	}

	writeFactors := func(label string, factors []string) {
		if len(factors) == 0 {
			return
		}
		sb.WriteString("\n")
		sb.WriteString(label + ":\n")
		count := min(len(factors), maxFactorsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", factors[i]))
		}
		if len(factors) > maxFactorsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(factors)-maxFactorsToShow))
		}
	}

	writeFactors("Working for you", resp.GoodFactors)
	writeFactors("Working against you", resp.BadFactors)

	p.printBox("DOOM ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
