// Package extraction turns raw resume text into typed candidate
// signals without calling any external model. The pipeline is pure
// string and regex processing: segmentation, n-gram alias matching
// with section weighting, cluster expansion, skill-graph inference,
// classification, and the auxiliary experience, education,
// certification and identity extractors.
package extraction

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Confidence increments. The total is capped below 100: extraction
// from free text is never perfect information.
const (
	confManySkills = 40 // 5+ technical skills
	confSomeSkills = 20 // 2-4
	confAnySkill   = 10 // exactly 1
	confSignal     = 15 // each of: years, email, name, profile URL
)

// Extract runs the full signal-extraction pipeline over raw resume
// text. It never fails: malformed or empty input degrades to empty and
// zero-valued fields.
func Extract(rawText string) *types.CandidateSignals {
	rawText = strings.ReplaceAll(rawText, "\r\n", "\n")
	rawText = strings.ReplaceAll(rawText, "\r", "\n")

	segments := Segment(rawText)

	candidates := scanSegments(segments)
	expandClusters(rawText, candidates)
	inferParents(candidates)
	technical, tools := classifySkills(candidates)

	totalYears, explicitYears := extractYears(rawText)

	signals := &types.CandidateSignals{
		Technical:       technical,
		Tools:           tools,
		Soft:            extractSoftSkills(rawText),
		ExperienceLevel: extractLevel(rawText, totalYears, explicitYears),
		TotalYears:      totalYears,
		Positions:       extractPositions(segments),
		Education:       extractEducation(segments),
		Certifications:  extractCertifications(rawText),
		PersonalInfo:    extractPersonalInfo(rawText),
	}
	signals.Confidence = scoreConfidence(signals)
	return signals
}

// scoreConfidence produces a single 0-95 confidence value for the
// whole extraction: additive credit for technical skill volume plus
// flat credit per identity signal found.
func scoreConfidence(s *types.CandidateSignals) int {
	score := 0
	switch {
	case len(s.Technical) >= 5:
		score += confManySkills
	case len(s.Technical) >= 2:
		score += confSomeSkills
	case len(s.Technical) >= 1:
		score += confAnySkill
	}
	if s.TotalYears > 0 {
		score += confSignal
	}
	if s.PersonalInfo.Email != "" {
		score += confSignal
	}
	if s.PersonalInfo.Name != "" {
		score += confSignal
	}
	if s.PersonalInfo.LinkedIn != "" || s.PersonalInfo.GitHub != "" {
		score += confSignal
	}
	if score > types.MaxConfidence {
		score = types.MaxConfidence
	}
	return score
}
