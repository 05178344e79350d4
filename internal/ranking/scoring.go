package ranking

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// Hybrid fusion weights. Semantic fit dominates; freshness, source
// trust and stated preferences adjust the ordering around it.
const (
	semanticWeight        = 0.45
	recencyWeight         = 0.25
	livenessWeight        = 0.20
	personalizationWeight = 0.10
)

// qualityFloor drops jobs whose semantic relevance is too weak to be
// worth surfacing at all, before fusion.
const qualityFloor = 0.6

const missingDateRecency = 0.5

// recencyScore is a step function of days since posting.
func recencyScore(postedAt, now time.Time) float64 {
	if postedAt.IsZero() {
		return missingDateRecency
	}
	age := now.Sub(postedAt)
	switch {
	case age < 24*time.Hour:
		return 1.0
	case age < 3*24*time.Hour:
		return 0.9
	case age < 7*24*time.Hour:
		return 0.8
	case age < 14*24*time.Hour:
		return 0.6
	case age < 30*24*time.Hour:
		return 0.4
	default:
		return 0.2
	}
}

// personalizationScore rates how well a listing matches the candidate's
// stated preferences, from a neutral 0.5 baseline.
func personalizationScore(criteria *types.RankCriteria, job *types.JobListing) float64 {
	score := 0.5
	if criteria.WorkType != "" && criteria.WorkType == job.WorkType {
		score += 0.2
	}
	if criteria.Industry != "" && strings.EqualFold(criteria.Industry, job.Industry) {
		score += 0.2
	}
	score += 0.1 * salaryCloseness(criteria.SalaryExpectation, salaryMidpoint(job))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// salaryCloseness is 1.0 when the job's midpoint equals the stated
// expectation, falling off linearly, 0 when either side is unknown.
func salaryCloseness(expectation, midpoint float64) float64 {
	if expectation <= 0 || midpoint <= 0 {
		return 0
	}
	closeness := 1 - math.Abs(expectation-midpoint)/expectation
	if closeness < 0 {
		return 0
	}
	return closeness
}

func salaryMidpoint(job *types.JobListing) float64 {
	switch {
	case job.SalaryMin > 0 && job.SalaryMax > 0:
		return (job.SalaryMin + job.SalaryMax) / 2
	case job.SalaryMax > 0:
		return job.SalaryMax
	default:
		return job.SalaryMin
	}
}

// fuseScores combines the four sub-scores into the final ranking score.
func fuseScores(semantic, recency, liveness, personalization float64) float64 {
	return semanticWeight*semantic +
		recencyWeight*recency +
		livenessWeight*liveness +
		personalizationWeight*personalization
}
