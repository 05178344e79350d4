// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateSignals outputs a human-readable summary of an extraction.
func (p *Printer) PrintCandidateSignals(signals *types.CandidateSignals) {
	if signals == nil {
		return
	}

	var sb strings.Builder

	if signals.PersonalInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Candidate:  %s\n", signals.PersonalInfo.Name))
	}
	sb.WriteString(fmt.Sprintf("Level:      %s\n", signals.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Years:      %.1f\n", signals.TotalYears))
	sb.WriteString(fmt.Sprintf("Confidence: %d\n", signals.Confidence))
	sb.WriteString("\n")

	writeSkillList(&sb, "Technical", signals.Technical)
	writeSkillList(&sb, "Tools", signals.Tools)
	writeSkillList(&sb, "Soft Skills", signals.Soft)

	if len(signals.Positions) > 0 {
		sb.WriteString(fmt.Sprintf("Positions:  %d\n", len(signals.Positions)))
	}
	if len(signals.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certs:      %d\n", len(signals.Certifications)))
	}

	p.printBox("EXTRACTED CANDIDATE SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked matches with their sub-scores.
func (p *Printer) PrintMatches(matches []types.EnhancedJobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%d. %s @ %s\n", i+1, m.Title, m.Company))
		sb.WriteString(fmt.Sprintf("   final %.3f  sem %.2f  rec %.2f  live %.2f\n",
			m.FinalScore, m.SemanticRelevance, m.RecencyScore, m.LivenessScore))
		if len(m.SkillMatches) > 0 {
			sb.WriteString(fmt.Sprintf("   matched: %s\n", strings.Join(m.SkillMatches, ", ")))
		}
		if m.IsVerifiedActive {
			sb.WriteString("   verified active\n")
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	count := min(len(skills), maxItemsToShow)
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}
