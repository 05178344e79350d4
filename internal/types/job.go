package types

import "time"

// WorkType describes where a job is performed.
type WorkType string

// Work type values accepted on both jobs and criteria.
const (
	WorkRemote WorkType = "remote"
	WorkHybrid WorkType = "hybrid"
	WorkOnsite WorkType = "onsite"
)

// LivenessStatus is the last known verification state of an external listing.
type LivenessStatus string

// Liveness states. Listings that have never been verified are unknown.
const (
	LivenessActive  LivenessStatus = "active"
	LivenessStale   LivenessStatus = "stale"
	LivenessUnknown LivenessStatus = "unknown"
)

// JobListing is a read-only job posting, either platform-native or
// aggregated from an external source. TrustScore is nil when the source
// has never been scored (defaults to 50 during ranking).
type JobListing struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Company           string         `json:"company"`
	Skills            []string       `json:"skills,omitempty"`
	Requirements      string         `json:"requirements,omitempty"`
	Description       string         `json:"description,omitempty"`
	Location          string         `json:"location,omitempty"`
	Industry          string         `json:"industry,omitempty"`
	WorkType          WorkType       `json:"work_type,omitempty"`
	SalaryMin         float64        `json:"salary_min,omitempty"`
	SalaryMax         float64        `json:"salary_max,omitempty"`
	Source            string         `json:"source"`
	TrustScore        *int           `json:"trust_score,omitempty"`
	LivenessStatus    LivenessStatus `json:"liveness_status,omitempty"`
	LastLivenessCheck *time.Time     `json:"last_liveness_check,omitempty"`
	PostedAt          time.Time      `json:"posted_at,omitempty"`
	ApplicationCount  int            `json:"application_count,omitempty"`
}

// SearchText returns the text used for semantic scoring against a candidate.
func (j *JobListing) SearchText() string {
	text := j.Title + "\n" + j.Company
	if len(j.Skills) > 0 {
		text += "\nSkills: "
		for i, s := range j.Skills {
			if i > 0 {
				text += ", "
			}
			text += s
		}
	}
	if j.Requirements != "" {
		text += "\n" + j.Requirements
	}
	if j.Description != "" {
		text += "\n" + j.Description
	}
	return text
}

// RankCriteria captures everything the ranking engine needs to know
// about a candidate and their stated preferences.
type RankCriteria struct {
	CandidateID       string          `json:"candidate_id" validate:"required"`
	Skills            []string        `json:"skills,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	Location          string          `json:"location,omitempty"`
	WorkType          WorkType        `json:"work_type,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`
	Industry          string          `json:"industry,omitempty"`
	SalaryExpectation float64         `json:"salary_expectation,omitempty" validate:"gte=0"`
	ResumeText        string          `json:"resume_text,omitempty"`
	Limit             int             `json:"limit,omitempty" validate:"gte=0"`
}

// CompatibilityFactors are per-dimension alignment scores reported
// alongside a match. They are informational and do not feed the fused
// final score.
type CompatibilityFactors struct {
	SkillAlignment    float64 `json:"skill_alignment"`
	ExperienceMatch   float64 `json:"experience_match"`
	LocationFit       float64 `json:"location_fit"`
	SalaryMatch       float64 `json:"salary_match"`
	IndustryRelevance float64 `json:"industry_relevance"`
}

// EnhancedJobMatch is one ranked result. All sub-scores are in [0,1];
// TrustScore is 0-100. Lists are ephemeral and recomputed on cache miss.
type EnhancedJobMatch struct {
	JobID                string               `json:"job_id"`
	Title                string               `json:"title"`
	Company              string               `json:"company"`
	MatchScore           float64              `json:"match_score"`
	ConfidenceLevel      string               `json:"confidence_level"`
	SkillMatches         []string             `json:"skill_matches,omitempty"`
	SemanticRelevance    float64              `json:"semantic_relevance"`
	RecencyScore         float64              `json:"recency_score"`
	LivenessScore        float64              `json:"liveness_score"`
	PersonalizationScore float64              `json:"personalization_score"`
	FinalScore           float64              `json:"final_score"`
	TrustScore           int                  `json:"trust_score"`
	LivenessStatus       LivenessStatus       `json:"liveness_status"`
	IsVerifiedActive     bool                 `json:"is_verified_active"`
	IsDirectFromCompany  bool                 `json:"is_direct_from_company"`
	CompatibilityFactors CompatibilityFactors `json:"compatibility_factors"`
}
