package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestPrintCandidateSignals(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintCandidateSignals(&types.CandidateSignals{
		Technical:       []string{"Python", "Django", "AWS", "Docker", "Kubernetes", "Terraform"},
		Tools:           []string{"Git"},
		ExperienceLevel: types.LevelSenior,
		TotalYears:      5,
		Confidence:      80,
		PersonalInfo:    types.PersonalInfo{Name: "Jane Doe"},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED CANDIDATE SIGNALS")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "senior")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "and 1 more")
}

func TestPrintCandidateSignals_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCandidateSignals(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatches([]types.EnhancedJobMatch{
		{
			Title:            "Backend Engineer",
			Company:          "Acme",
			FinalScore:       0.86,
			SkillMatches:     []string{"Python"},
			IsVerifiedActive: true,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "TOP JOB MATCHES")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "0.860")
	assert.Contains(t, out, "matched: Python")
	assert.Contains(t, out, "verified active")
}

func TestPrintMatches_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)

	assert.Empty(t, buf.String())
}
