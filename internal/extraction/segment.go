package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// Section identifies which resume section a block of text belongs to.
type Section string

// Known resume sections.
const (
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionSummary        Section = "summary"
	SectionCertifications Section = "certifications"
	SectionEducation      Section = "education"
	SectionUnknown        Section = "unknown"
)

// sectionWeights assigns a static extraction weight per section. Skills
// listed in an explicit skills section count for far more than the same
// word buried in an education entry.
var sectionWeights = map[Section]float64{
	SectionSkills:         3.0,
	SectionExperience:     2.0,
	SectionProjects:       1.8,
	SectionSummary:        1.5,
	SectionCertifications: 1.2,
	SectionEducation:      0.7,
	SectionUnknown:        1.0,
}

// sectionHeaders maps normalized header text to a section. Headers are
// matched case-insensitively after stripping surrounding punctuation.
var sectionHeaders = map[string]Section{
	"skills":                 SectionSkills,
	"technical skills":       SectionSkills,
	"core skills":            SectionSkills,
	"key skills":             SectionSkills,
	"core competencies":      SectionSkills,
	"competencies":           SectionSkills,
	"technologies":           SectionSkills,
	"technical proficiencies": SectionSkills,
	"areas of expertise":     SectionSkills,
	"experience":             SectionExperience,
	"work experience":        SectionExperience,
	"professional experience": SectionExperience,
	"employment":             SectionExperience,
	"employment history":     SectionExperience,
	"work history":           SectionExperience,
	"career history":         SectionExperience,
	"relevant experience":    SectionExperience,
	"projects":               SectionProjects,
	"personal projects":      SectionProjects,
	"side projects":          SectionProjects,
	"selected projects":      SectionProjects,
	"portfolio":              SectionProjects,
	"summary":                SectionSummary,
	"professional summary":   SectionSummary,
	"career summary":         SectionSummary,
	"objective":              SectionSummary,
	"career objective":       SectionSummary,
	"profile":                SectionSummary,
	"about":                  SectionSummary,
	"about me":               SectionSummary,
	"certifications":         SectionCertifications,
	"certificates":           SectionCertifications,
	"licenses":               SectionCertifications,
	"licenses and certifications": SectionCertifications,
	"certifications and licenses": SectionCertifications,
	"education":              SectionEducation,
	"academic background":    SectionEducation,
	"academics":              SectionEducation,
	"education and training": SectionEducation,
}

// TextSegment is a section-tagged block of consecutive resume lines.
type TextSegment struct {
	Section Section
	Lines   []string
	Weight  float64
}

// Text joins the segment lines; offsets into the result line up with
// per-line offsets plus newline separators, which the candidate scanner
// relies on for context windows.
func (s *TextSegment) Text() string {
	return strings.Join(s.Lines, "\n")
}

var headerTrimRe = regexp.MustCompile(`^[\s\-=_*#•|:]+|[\s\-=_*#•|:]+$`)

// Segment splits raw resume text into section-tagged segments. A line
// matching a known header starts a new segment with that section's
// weight. Short ALL-CAPS lines that match nothing still close the
// current segment so unrelated blocks are not merged.
func Segment(rawText string) []TextSegment {
	rawText = strings.ReplaceAll(rawText, "\r\n", "\n")
	rawText = strings.ReplaceAll(rawText, "\r", "\n")

	var segments []TextSegment
	current := TextSegment{Section: SectionUnknown, Weight: sectionWeights[SectionUnknown]}

	flush := func() {
		if len(current.Lines) > 0 {
			segments = append(segments, current)
		}
	}

	for _, line := range strings.Split(rawText, "\n") {
		if section, ok := matchSectionHeader(line); ok {
			flush()
			current = TextSegment{Section: section, Weight: sectionWeights[section]}
			continue
		}
		if isUnrecognizedBoundary(line) {
			flush()
			current = TextSegment{Section: SectionUnknown, Weight: sectionWeights[SectionUnknown]}
			// The boundary line itself still carries scannable text
			// (e.g. an ALL-CAPS company name).
			current.Lines = append(current.Lines, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return segments
}

// matchSectionHeader reports whether a line is a recognized section
// header. Headers are short lines whose normalized text appears in the
// header table, tolerating decorations like "=== SKILLS ===" or
// "Skills:".
func matchSectionHeader(line string) (Section, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 60 {
		return "", false
	}
	normalized := strings.ToLower(headerTrimRe.ReplaceAllString(trimmed, ""))
	normalized = strings.Join(strings.Fields(normalized), " ")
	if normalized == "" {
		return "", false
	}
	section, ok := sectionHeaders[normalized]
	return section, ok
}

// isUnrecognizedBoundary reports whether a line looks like a section
// boundary the header table does not know: short, ALL-CAPS, mostly
// letters.
func isUnrecognizedBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || len(trimmed) > 40 {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
