package ranking

import (
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	defaultTrustScore  = 50
	platformTrustScore = 100

	verifiedActiveTrustFloor = 85
	activeVerificationBonus  = 0.1
	activeVerificationWindow = 24 * time.Hour
	staleListingPenalty      = 0.3
)

// platformSources are the listing origins owned by this platform. They
// need no trust scoring: the listing exists because we created it.
var platformSources = map[string]bool{
	"platform": true,
	"internal": true,
}

// directSources identifies listings pulled straight from a company's
// own applicant tracking system rather than a reposting aggregator.
var directSources = map[string]bool{
	"platform":        true,
	"company_website": true,
	"greenhouse":      true,
	"lever":           true,
	"workday":         true,
	"ashby":           true,
}

// livenessScore derives a [0,1] confidence that an external listing is
// still genuinely open, plus the 0-100 trust score backing it. Platform
// listings are always fully live.
func livenessScore(job *types.JobListing, now time.Time) (float64, int) {
	if platformSources[job.Source] {
		return 1.0, platformTrustScore
	}

	trust := defaultTrustScore
	if job.TrustScore != nil {
		trust = *job.TrustScore
	}
	score := float64(trust) / 100

	if job.LivenessStatus == types.LivenessActive && checkedWithin(job, now, activeVerificationWindow) {
		score += activeVerificationBonus
		if score > 1.0 {
			score = 1.0
		}
	}

	score *= verificationDecay(job, now)

	if job.LivenessStatus == types.LivenessStale {
		score *= staleListingPenalty
	}
	return score, trust
}

// verificationDecay discounts listings whose last liveness probe is
// old. Tiers are cumulative with age, not with each other.
func verificationDecay(job *types.JobListing, now time.Time) float64 {
	if job.LastLivenessCheck == nil {
		return 1.0
	}
	age := now.Sub(*job.LastLivenessCheck)
	switch {
	case age > 14*24*time.Hour:
		return 0.55
	case age > 7*24*time.Hour:
		return 0.70
	case age > 3*24*time.Hour:
		return 0.85
	default:
		return 1.0
	}
}

func checkedWithin(job *types.JobListing, now time.Time, window time.Duration) bool {
	return job.LastLivenessCheck != nil && now.Sub(*job.LastLivenessCheck) <= window
}

// isVerifiedActive marks listings from well-trusted sources whose last
// probe confirmed they are open.
func isVerifiedActive(trust int, status types.LivenessStatus) bool {
	return trust >= verifiedActiveTrustFloor && status == types.LivenessActive
}

func isDirectFromCompany(source string) bool {
	return directSources[source]
}
