package semantic

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Fusion of the two overlap signals. Skill coverage dominates; token
// similarity breaks ties between postings with equal coverage.
const (
	coverageWeight = 0.7
	jaccardWeight  = 0.3
)

var wordRe = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

// stopWords are excluded from token similarity. Short glue words would
// otherwise dominate the jaccard term on long descriptions.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "in": true, "is": true,
	"it": true, "of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "to": true, "we": true, "with": true, "you": true, "your": true,
}

// OverlapScorer is a deterministic Scorer built on keyword overlap. It
// needs no network access and backs the offline ranking path and tests.
type OverlapScorer struct{}

// NewOverlapScorer returns the keyword-overlap scorer.
func NewOverlapScorer() *OverlapScorer {
	return &OverlapScorer{}
}

// Score rates the fit as a blend of job-skill coverage and token
// similarity between the candidate text and the posting text.
func (s *OverlapScorer) Score(_ context.Context, candidate *types.RankCriteria, job *types.JobListing) (*Result, error) {
	jobText := strings.ToLower(job.SearchText())
	matches := matchSkills(candidate.Skills, job.Skills, jobText)

	coverage := 0.0
	switch {
	case len(job.Skills) > 0:
		coverage = float64(countJobSkillsCovered(candidate.Skills, job.Skills)) / float64(len(job.Skills))
	case len(candidate.Skills) > 0:
		coverage = float64(len(matches)) / float64(len(candidate.Skills))
	}

	candidateText := strings.Join(candidate.Skills, " ")
	if candidate.ResumeText != "" {
		candidateText += " " + candidate.ResumeText
	}
	similarity := jaccard(tokenSet(strings.ToLower(candidateText)), tokenSet(jobText))

	return &Result{
		Relevance:    clampUnit(coverageWeight*coverage + jaccardWeight*similarity),
		SkillMatches: matches,
	}, nil
}

// matchSkills returns the candidate skills the posting mentions, in
// candidate order, using the canonical skill names the candidate carries.
func matchSkills(candidateSkills, jobSkills []string, jobText string) []string {
	jobSet := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		jobSet[strings.ToLower(s)] = true
	}

	var matches []string
	for _, skill := range candidateSkills {
		lower := strings.ToLower(skill)
		if jobSet[lower] || strings.Contains(jobText, lower) {
			matches = append(matches, skill)
		}
	}
	return matches
}

func countJobSkillsCovered(candidateSkills, jobSkills []string) int {
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}
	covered := 0
	for _, s := range jobSkills {
		if have[strings.ToLower(s)] {
			covered++
		}
	}
	return covered
}

func tokenSet(lowerText string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range wordRe.FindAllString(lowerText, -1) {
		if len(tok) < 2 || stopWords[tok] {
			continue
		}
		set[tok] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
