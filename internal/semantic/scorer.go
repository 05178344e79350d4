// Package semantic scores how well a candidate profile fits a job
// posting. The Scorer interface is pluggable: the Gemini-backed scorer
// is the production path and the overlap scorer is the deterministic
// offline fallback.
package semantic

import (
	"context"

	"github.com/jonathan/job-matcher/internal/types"
)

// Result is the outcome of scoring one candidate against one job.
// Relevance is always in [0,1].
type Result struct {
	Relevance    float64  `json:"relevance"`
	SkillMatches []string `json:"skill_matches,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Scorer computes the semantic relevance of a job for a candidate.
type Scorer interface {
	Score(ctx context.Context, candidate *types.RankCriteria, job *types.JobListing) (*Result, error)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
