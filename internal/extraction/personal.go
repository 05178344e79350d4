package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	headerLineLimit = 20 // lines searched for a location
	nameLineLimit   = 10 // non-empty lines searched for a name
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_\-%]+/?`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+/?`)
	websiteRe  = regexp.MustCompile(`(?i)https?://[A-Za-z0-9.\-]+\.[A-Za-z]{2,}(?:/\S*)?`)
	locationRe = regexp.MustCompile(`\b([A-Z][a-zA-Z.]+(?:[ \-][A-Z][a-zA-Z.]+)*),\s*([A-Z]{2})\b`)
	nameRe     = regexp.MustCompile(`^[A-Z][a-zA-Z'\-]+(?:\s+[A-Z]\.?)?(?:\s+[A-Z][a-zA-Z'\-]+){1,2}$`)
)

// titleWords disqualify a line from being a person's name.
var titleWords = []string{
	"resume", "curriculum", "vitae", "engineer", "developer", "manager",
	"analyst", "designer", "consultant", "director", "specialist",
	"technician", "nurse", "accountant", "administrator", "coordinator",
	"architect", "scientist", "assistant", "electrician", "driver", "cook",
}

// extractPersonalInfo pulls contact identifiers out of the resume:
// first email, first US-shaped phone number, profile URLs, a
// "City, ST" location near the top, and a heuristically chosen name.
func extractPersonalInfo(rawText string) types.PersonalInfo {
	info := types.PersonalInfo{
		Email:    emailRe.FindString(rawText),
		Phone:    strings.TrimSpace(phoneRe.FindString(rawText)),
		LinkedIn: linkedinRe.FindString(rawText),
		GitHub:   githubRe.FindString(rawText),
	}

	// Generic portfolio URL: first URL that is neither LinkedIn nor GitHub.
	for _, url := range websiteRe.FindAllString(rawText, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		info.Website = url
		break
	}

	lines := strings.Split(rawText, "\n")
	info.Location = findLocation(lines)
	info.Name = findName(lines)
	return info
}

// findLocation looks for a "City, ST" shape in the top of the resume.
func findLocation(lines []string) string {
	limit := headerLineLimit
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if m := locationRe.FindStringSubmatch(line); m != nil {
			return m[1] + ", " + m[2]
		}
	}
	return ""
}

// findName picks the first early line shaped like "Firstname Lastname"
// that carries no contact punctuation and no job-title word.
func findName(lines []string) string {
	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > nameLineLimit {
			return ""
		}
		if strings.ContainsAny(trimmed, "@:/|0123456789") {
			continue
		}
		if !nameRe.MatchString(trimmed) {
			continue
		}
		lower := strings.ToLower(trimmed)
		titled := false
		for _, word := range titleWords {
			if strings.Contains(lower, word) {
				titled = true
				break
			}
		}
		if titled {
			continue
		}
		return trimmed
	}
	return ""
}
