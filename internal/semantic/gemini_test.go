package semantic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestParseScoreResponse_ValidJSON(t *testing.T) {
	result, err := parseScoreResponse(`{"relevance": 0.72, "skill_matches": ["Python"], "explanation": "strong fit"}`)
	require.NoError(t, err)

	assert.InDelta(t, 0.72, result.Relevance, 1e-9)
	assert.Equal(t, []string{"Python"}, result.SkillMatches)
	assert.Equal(t, "strong fit", result.Explanation)
}

func TestParseScoreResponse_FencedJSON(t *testing.T) {
	result, err := parseScoreResponse("```json\n{\"relevance\": 0.5}\n```")
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.Relevance, 1e-9)
}

func TestParseScoreResponse_ClampsRelevance(t *testing.T) {
	high, err := parseScoreResponse(`{"relevance": 1.7}`)
	require.NoError(t, err)
	assert.Equal(t, 1.0, high.Relevance)

	low, err := parseScoreResponse(`{"relevance": -0.3}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.Relevance)
}

func TestParseScoreResponse_InvalidJSON(t *testing.T) {
	_, err := parseScoreResponse("the candidate seems fine")
	assert.Error(t, err)
}

func TestBuildScoringPrompt_IncludesCandidateAndJob(t *testing.T) {
	criteria := &types.RankCriteria{
		CandidateID:     "c1",
		Skills:          []string{"Python", "Django"},
		ExperienceLevel: types.LevelSenior,
	}
	job := &types.JobListing{
		ID:      "j1",
		Title:   "Backend Engineer",
		Company: "Acme",
		Skills:  []string{"Python"},
	}

	prompt := buildScoringPrompt(criteria, job)

	assert.Contains(t, prompt, "Python, Django")
	assert.Contains(t, prompt, "senior")
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "relevance")
}

func TestNewGeminiScorer_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiScorer(context.Background(), "", "")
	assert.Error(t, err)
}
