// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel is a coarse seniority band derived from resume text.
type ExperienceLevel string

// Seniority bands, lowest to highest. There is deliberately no
// staff/principal tier between senior and executive.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// Caps applied to CandidateSignals collections. Extraction never emits
// more entries than these.
const (
	MaxTechnicalSkills = 25
	MaxTools           = 15
	MaxSoftSkills      = 8
	MaxPositions       = 8
	MaxEducation       = 4
	MaxCertifications  = 10
	MaxConfidence      = 95
)

// Position represents one job history entry parsed from the experience section
type Position struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Education represents one degree or program entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// PersonalInfo holds contact identifiers found in the resume header
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// CandidateSignals is the full structured output of signal extraction.
// Skill lists are ordered by descending extraction weight. A fresh upload
// replaces the whole value; fields are never mutated in place afterward.
type CandidateSignals struct {
	Technical       []string        `json:"technical"`
	Tools           []string        `json:"tools"`
	Soft            []string        `json:"soft"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	TotalYears      float64         `json:"total_years"`
	Positions       []Position      `json:"positions,omitempty"`
	Education       []Education     `json:"education,omitempty"`
	Certifications  []string        `json:"certifications,omitempty"`
	PersonalInfo    PersonalInfo    `json:"personal_info"`
	Confidence      int             `json:"confidence"`
}

// AllSkills returns technical skills and tools as a single list,
// technical first. Useful for building rank criteria.
func (s *CandidateSignals) AllSkills() []string {
	out := make([]string, 0, len(s.Technical)+len(s.Tools))
	out = append(out, s.Technical...)
	out = append(out, s.Tools...)
	return out
}
