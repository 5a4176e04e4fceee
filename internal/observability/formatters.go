// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/karim/resume-builder/internal/resume"
	"github.com/karim/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintBundleSummary outputs the section counts of a loaded resume bundle.
func (p *Printer) PrintBundleSummary(bundle *types.ResumeBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder

	if bundle.Profile != nil {
		position := bundle.Profile.CurrentPosition
		if position == "" {
			position = "(no position set)"
		}
		sb.WriteString(fmt.Sprintf("Profile:         %s\n", position))
	} else {
		sb.WriteString("Profile:         (missing)\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience:      %d career, %d volunteering\n",
		len(bundle.CareerExperiences), len(bundle.VolunteeringExperiences)))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(bundle.Education)))
	sb.WriteString(fmt.Sprintf("Skills:          %d technical, %d soft\n",
		len(bundle.TechnicalSkills), len(bundle.SoftSkills)))
	sb.WriteString(fmt.Sprintf("Languages:       %d\n", len(bundle.Languages)))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", len(bundle.Certifications)))
	sb.WriteString(fmt.Sprintf("Projects:        %d\n", len(bundle.Projects)))
	sb.WriteString(fmt.Sprintf("Links:           %d", len(bundle.Links)))

	p.printBox("RESUME BUNDLE", sb.String())
}

// PrintValidationReport outputs whether a resume can be generated and why not.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationReport(report resume.ValidationReport) {
	if report.CanGenerate && len(report.Recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ READY TO GENERATE")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if report.CanGenerate {
		sb.WriteString("Ready to generate.\n")
	} else {
		sb.WriteString("Cannot generate yet.\n")
	}

	if len(report.MissingData) > 0 {
		sb.WriteString("\nMissing:\n")
		for _, missing := range report.MissingData {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", missing))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Recommendations[i]))
		}
		if len(report.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkipWarnings outputs records dropped during normalization.
func (p *Printer) PrintSkipWarnings(warnings []resume.SkipWarning) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skipped %d records:\n\n", len(warnings)))

	count := min(len(warnings), maxItemsToShow)
	for i := 0; i < count; i++ {
		w := warnings[i]
		sb.WriteString(fmt.Sprintf("⚠ %s %q\n", w.Section, w.Identifier))
		sb.WriteString(fmt.Sprintf("  %s\n", w.Reason))
	}
	if len(warnings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(warnings)-maxItemsToShow))
	}

	p.printBox("SKIPPED RECORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBuildResult outputs where the generated document landed.
func (p *Printer) PrintBuildResult(path string, sizeBytes int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output:  %s\n", path))
	sb.WriteString(fmt.Sprintf("Size:    %.1f KB", float64(sizeBytes)/1024))

	p.printBox("RESUME GENERATED", sb.String())
}
