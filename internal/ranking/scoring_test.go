package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestRecencyScore_StepFunction(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"hours old", 6 * time.Hour, 1.0},
		{"two days", 2 * 24 * time.Hour, 0.9},
		{"five days", 5 * 24 * time.Hour, 0.8},
		{"ten days", 10 * 24 * time.Hour, 0.6},
		{"three weeks", 21 * 24 * time.Hour, 0.4},
		{"two months", 60 * 24 * time.Hour, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recencyScore(now.Add(-tt.age), now))
		})
	}
}

func TestRecencyScore_MissingDate(t *testing.T) {
	assert.Equal(t, 0.5, recencyScore(time.Time{}, time.Now()))
}

func TestPersonalizationScore_Baseline(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1"}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkOnsite}

	assert.Equal(t, 0.5, personalizationScore(criteria, job))
}

func TestPersonalizationScore_WorkTypeMatch(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", WorkType: types.WorkRemote}
	job := &types.JobListing{ID: "j1", WorkType: types.WorkRemote}

	assert.InDelta(t, 0.7, personalizationScore(criteria, job), 1e-9)
}

func TestPersonalizationScore_IndustryCaseInsensitive(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", Industry: "Healthcare"}
	job := &types.JobListing{ID: "j1", Industry: "healthcare"}

	assert.InDelta(t, 0.7, personalizationScore(criteria, job), 1e-9)
}

func TestPersonalizationScore_SalaryCloseness(t *testing.T) {
	criteria := &types.RankCriteria{CandidateID: "c1", SalaryExpectation: 100000}
	job := &types.JobListing{ID: "j1", SalaryMin: 90000, SalaryMax: 110000}

	// Midpoint equals expectation, full 0.1 bonus.
	assert.InDelta(t, 0.6, personalizationScore(criteria, job), 1e-9)
}

func TestPersonalizationScore_CappedAtOne(t *testing.T) {
	criteria := &types.RankCriteria{
		CandidateID:       "c1",
		WorkType:          types.WorkRemote,
		Industry:          "tech",
		SalaryExpectation: 100000,
	}
	job := &types.JobListing{
		ID:        "j1",
		WorkType:  types.WorkRemote,
		Industry:  "tech",
		SalaryMin: 100000,
		SalaryMax: 100000,
	}

	assert.Equal(t, 1.0, personalizationScore(criteria, job))
}

func TestSalaryCloseness(t *testing.T) {
	assert.Equal(t, 1.0, salaryCloseness(100000, 100000))
	assert.InDelta(t, 0.8, salaryCloseness(100000, 80000), 1e-9)
	assert.InDelta(t, 0.8, salaryCloseness(100000, 120000), 1e-9)
	assert.Equal(t, 0.0, salaryCloseness(100000, 250000))
	assert.Equal(t, 0.0, salaryCloseness(0, 100000))
	assert.Equal(t, 0.0, salaryCloseness(100000, 0))
}

func TestFuseScores_ExactWeights(t *testing.T) {
	// 0.45*0.8 + 0.25*1.0 + 0.20*1.0 + 0.10*0.5
	assert.InDelta(t, 0.86, fuseScores(0.8, 1.0, 1.0, 0.5), 1e-9)
}
