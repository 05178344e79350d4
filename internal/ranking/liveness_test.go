package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func trustPtr(v int) *int { return &v }

func TestLivenessScore_PlatformAlwaysFull(t *testing.T) {
	now := time.Now()
	low := 10
	stale := now.Add(-30 * 24 * time.Hour)
	job := &types.JobListing{
		ID:                "j1",
		Source:            "platform",
		TrustScore:        &low,
		LivenessStatus:    types.LivenessStale,
		LastLivenessCheck: &stale,
	}

	score, trust := livenessScore(job, now)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, 100, trust)
}

func TestLivenessScore_DefaultTrust(t *testing.T) {
	score, trust := livenessScore(&types.JobListing{ID: "j1", Source: "indeed"}, time.Now())

	assert.InDelta(t, 0.5, score, 1e-9)
	assert.Equal(t, 50, trust)
}

func TestLivenessScore_ActiveVerificationBonus(t *testing.T) {
	now := time.Now()
	checked := now.Add(-time.Hour)
	job := &types.JobListing{
		ID:                "j1",
		Source:            "indeed",
		TrustScore:        trustPtr(80),
		LivenessStatus:    types.LivenessActive,
		LastLivenessCheck: &checked,
	}

	score, _ := livenessScore(job, now)
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestLivenessScore_BonusCappedAtOne(t *testing.T) {
	now := time.Now()
	checked := now.Add(-time.Hour)
	job := &types.JobListing{
		ID:                "j1",
		Source:            "indeed",
		TrustScore:        trustPtr(95),
		LivenessStatus:    types.LivenessActive,
		LastLivenessCheck: &checked,
	}

	score, _ := livenessScore(job, now)
	assert.Equal(t, 1.0, score)
}

func TestLivenessScore_VerificationDecayTiers(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"fresh check", 2 * 24 * time.Hour, 0.8},
		{"four days old", 4 * 24 * time.Hour, 0.8 * 0.85},
		{"ten days old", 10 * 24 * time.Hour, 0.8 * 0.70},
		{"three weeks old", 21 * 24 * time.Hour, 0.8 * 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checked := now.Add(-tt.age)
			job := &types.JobListing{
				ID:                "j1",
				Source:            "indeed",
				TrustScore:        trustPtr(80),
				LivenessStatus:    types.LivenessUnknown,
				LastLivenessCheck: &checked,
			}

			score, _ := livenessScore(job, now)
			assert.InDelta(t, tt.want, score, 1e-9)
		})
	}
}

func TestLivenessScore_StalePenalty(t *testing.T) {
	job := &types.JobListing{
		ID:             "j1",
		Source:         "indeed",
		TrustScore:     trustPtr(80),
		LivenessStatus: types.LivenessStale,
	}

	score, _ := livenessScore(job, time.Now())
	assert.InDelta(t, 0.8*0.3, score, 1e-9)
}

func TestIsVerifiedActive(t *testing.T) {
	assert.True(t, isVerifiedActive(90, types.LivenessActive))
	assert.True(t, isVerifiedActive(85, types.LivenessActive))
	assert.False(t, isVerifiedActive(80, types.LivenessActive))
	assert.False(t, isVerifiedActive(90, types.LivenessStale))
	assert.False(t, isVerifiedActive(90, types.LivenessUnknown))
}

func TestIsDirectFromCompany(t *testing.T) {
	assert.True(t, isDirectFromCompany("greenhouse"))
	assert.True(t, isDirectFromCompany("lever"))
	assert.True(t, isDirectFromCompany("company_website"))
	assert.False(t, isDirectFromCompany("indeed"))
	assert.False(t, isDirectFromCompany(""))
}
