package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestValidateCandidateSignals_ValidDocument(t *testing.T) {
	signals := types.CandidateSignals{
		Technical:       []string{"Python", "Django"},
		Tools:           []string{"Git"},
		Soft:            []string{"Leadership"},
		ExperienceLevel: types.LevelSenior,
		TotalYears:      5,
		Confidence:      80,
	}
	doc, err := json.Marshal(signals)
	require.NoError(t, err)

	assert.NoError(t, ValidateCandidateSignals(doc))
}

func TestValidateCandidateSignals_BadLevel(t *testing.T) {
	doc := []byte(`{"technical": [], "tools": [], "soft": [], "experience_level": "wizard", "total_years": 0, "personal_info": {}, "confidence": 10}`)

	err := ValidateCandidateSignals(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateCandidateSignals_ConfidenceOutOfRange(t *testing.T) {
	doc := []byte(`{"technical": [], "tools": [], "soft": [], "experience_level": "entry", "total_years": 0, "personal_info": {}, "confidence": 100}`)

	assert.Error(t, ValidateCandidateSignals(doc))
}

func TestValidateJobMatches_ValidDocument(t *testing.T) {
	matches := []types.EnhancedJobMatch{{
		JobID:             "j1",
		Title:             "Engineer",
		Company:           "Acme",
		MatchScore:        0.9,
		ConfidenceLevel:   "high",
		SemanticRelevance: 0.9,
		RecencyScore:      1.0,
		LivenessScore:     1.0,
		FinalScore:        0.91,
		TrustScore:        100,
		LivenessStatus:    types.LivenessActive,
	}}
	doc, err := json.Marshal(matches)
	require.NoError(t, err)

	assert.NoError(t, ValidateJobMatches(doc))
}

func TestValidateJobMatches_BelowQualityFloor(t *testing.T) {
	doc := []byte(`[{"job_id": "j1", "semantic_relevance": 0.4, "final_score": 0.5}]`)

	assert.Error(t, ValidateJobMatches(doc))
}

func TestValidateJobMatches_MissingJobID(t *testing.T) {
	doc := []byte(`[{"semantic_relevance": 0.8, "final_score": 0.5}]`)

	assert.Error(t, ValidateJobMatches(doc))
}

func TestValidate_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateJobMatches([]byte(`not json`)))
}
