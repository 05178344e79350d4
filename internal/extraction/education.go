package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

var degreeRe = regexp.MustCompile(`(?i)\b(ph\.?\s?d\.?|doctorate|doctoral|m\.?b\.?a\.?|master(?:'s|s)?(?:\s+of\s+[a-z ]+)?|m\.?s\.?c?\.?|m\.?a\.?|m\.?eng\.?|bachelor(?:'s|s)?(?:\s+of\s+[a-z ]+)?|b\.?s\.?c?\.?|b\.?a\.?|b\.?eng\.?|b\.?tech\.?|associate(?:'s|s)?(?:\s+degree)?|diploma|certificate\s+in\s+[a-z ]+|g\.?e\.?d\.?)\b`)

// extractEducation parses degree entries from education segments. A
// line carrying a degree keyword becomes an entry; the institution is
// whatever else the line says, or the following line when the degree
// stands alone. The year is the first 4-digit year on the line or the
// next one.
func extractEducation(segments []TextSegment) []types.Education {
	var entries []types.Education
	for i := range segments {
		if segments[i].Section != SectionEducation {
			continue
		}
		lines := segments[i].Lines
		for j := 0; j < len(lines) && len(entries) < types.MaxEducation; j++ {
			loc := degreeRe.FindStringIndex(lines[j])
			if loc == nil {
				continue
			}
			degree := strings.TrimSpace(lines[j][loc[0]:loc[1]])
			remainder := strings.TrimSpace(lines[j][:loc[0]] + " " + lines[j][loc[1]:])
			remainder = strings.Trim(remainder, " \t,;|-–—")
			remainder = fourDigitYearRe.ReplaceAllString(remainder, "")
			remainder = strings.Trim(remainder, " \t,;|-–—()")

			entry := types.Education{Degree: degree, Institution: remainder}
			if entry.Institution == "" && j+1 < len(lines) && !degreeRe.MatchString(lines[j+1]) {
				entry.Institution = strings.TrimSpace(fourDigitYearRe.ReplaceAllString(lines[j+1], ""))
				entry.Institution = strings.Trim(entry.Institution, " \t,;|-–—()")
			}

			if year := fourDigitYearRe.FindString(lines[j]); year != "" {
				entry.Year = year
			} else if j+1 < len(lines) {
				entry.Year = fourDigitYearRe.FindString(lines[j+1])
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// certificationPatterns match well-known certification names anywhere
// in the text. Matched text is reported verbatim.
var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bAWS\s+Certified\s+[A-Za-z][A-Za-z &-]*[A-Za-z]`),
	regexp.MustCompile(`(?i)\bAzure\s+(?:Fundamentals|Administrator|Developer|Solutions\s+Architect|DevOps\s+Engineer)(?:\s+(?:Associate|Expert))?`),
	regexp.MustCompile(`(?i)\bGoogle\s+Cloud\s+(?:Certified\s+)?(?:Professional|Associate)\s+[A-Za-z][A-Za-z -]*[A-Za-z]`),
	regexp.MustCompile(`(?i)\bCertified\s+Kubernetes\s+(?:Administrator|Application\s+Developer)`),
	regexp.MustCompile(`(?i)\bCertified\s+Scrum\s?Master`),
	regexp.MustCompile(`(?i)\bCertified\s+Ethical\s+Hacker`),
	regexp.MustCompile(`(?i)\bCertified\s+Public\s+Accountant`),
	regexp.MustCompile(`(?i)\bCompTIA\s+(?:A\+|Network\+|Security\+|Linux\+|Cloud\+)`),
	regexp.MustCompile(`(?i)\bSix\s+Sigma\s+(?:White|Yellow|Green|Black)\s+Belt`),
	regexp.MustCompile(`(?i)\bITIL(?:\s+(?:v\d|Foundation))?\b`),
	regexp.MustCompile(`\bPMP\b`),
	regexp.MustCompile(`\bCAPM\b`),
	regexp.MustCompile(`\bCISSP\b`),
	regexp.MustCompile(`\bCISM\b`),
	regexp.MustCompile(`\bCISA\b`),
	regexp.MustCompile(`\bCCNA\b`),
	regexp.MustCompile(`\bCCNP\b`),
	regexp.MustCompile(`\bCKA\b`),
	regexp.MustCompile(`\bCKAD\b`),
	regexp.MustCompile(`\bCPA\b`),
	regexp.MustCompile(`\bCFA\b`),
	regexp.MustCompile(`\bSHRM-(?:CP|SCP)\b`),
	regexp.MustCompile(`\bRHCSA\b`),
	regexp.MustCompile(`\bRHCE\b`),
}

// extractCertifications matches the fixed certification patterns over
// the whole text, deduplicating case-insensitively.
func extractCertifications(rawText string) []string {
	var certs []string
	seen := make(map[string]bool)
	for _, re := range certificationPatterns {
		for _, match := range re.FindAllString(rawText, -1) {
			cleaned := strings.Join(strings.Fields(match), " ")
			key := strings.ToLower(cleaned)
			if seen[key] {
				continue
			}
			seen[key] = true
			certs = append(certs, cleaned)
			if len(certs) >= types.MaxCertifications {
				return certs
			}
		}
	}
	return certs
}
