package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const maxPlausibleYears = 40

var (
	explicitYearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:\w+\s+){0,2}?experience\b`)
	fourDigitYearRe = regexp.MustCompile(`\b(19[5-9]\d|20[0-4]\d)\b`)
	dateRangeRe     = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+)?(19[5-9]\d|20[0-4]\d)\s*(?:[-–—]|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+)?((?:19[5-9]\d|20[0-4]\d)|present|current|now)\b`)

	// Acronym titles need word boundaries: "refactor" contains "cto".
	executiveAcronymRe = regexp.MustCompile(`(?i)\b(?:cto|ceo|coo|cfo|cpo|ciso|svp|evp)\b`)
)

// seniorityKeywords are scanned highest tier first; the first family
// with a hit wins.
var seniorityKeywords = []struct {
	level    types.ExperienceLevel
	keywords []string
}{
	{types.LevelExecutive, []string{
		"chief technology officer", "chief executive", "chief operating", "chief financial",
		"vice president", "vp of", "director of", "head of", "executive director", "founder",
	}},
	{types.LevelSenior, []string{
		"senior", "sr.", "sr ", "lead ", "principal", "staff engineer", "architect", "team lead", "tech lead",
	}},
	{types.LevelMid, []string{
		"mid-level", "mid level", "intermediate", "associate engineer", "software engineer ii",
	}},
	{types.LevelEntry, []string{
		"junior", "jr.", "jr ", "intern", "internship", "entry level", "entry-level",
		"graduate", "trainee", "apprentice",
	}},
}

// extractYears derives total years of experience. An explicit "N years
// of experience" statement wins and is flagged as explicit; otherwise
// the spread between the earliest and latest 4-digit year in the text
// is used, capped at 40.
func extractYears(rawText string) (years float64, explicit bool) {
	if m := explicitYearsRe.FindStringSubmatch(rawText); m != nil {
		parsed, err := strconv.ParseFloat(m[1], 64)
		if err == nil && parsed >= 0 {
			if parsed > maxPlausibleYears {
				parsed = maxPlausibleYears
			}
			return parsed, true
		}
	}

	matches := fourDigitYearRe.FindAllString(rawText, -1)
	if len(matches) < 2 {
		return 0, false
	}
	minYear, maxYear := 9999, 0
	for _, m := range matches {
		year, _ := strconv.Atoi(m)
		if year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}
	span := float64(maxYear - minYear)
	if span < 0 {
		return 0, false
	}
	if span > maxPlausibleYears {
		span = maxPlausibleYears
	}
	return span, false
}

// extractLevel determines the seniority band. Keyword families decide
// first; an explicit year count overrides via fixed thresholds. Ten or
// more years still maps to senior: the top numeric tier is flat.
func extractLevel(rawText string, totalYears float64, explicitYears bool) types.ExperienceLevel {
	level := types.LevelEntry
	lower := strings.ToLower(rawText)
	if executiveAcronymRe.MatchString(rawText) {
		level = types.LevelExecutive
	} else {
	scan:
		for _, family := range seniorityKeywords {
			for _, kw := range family.keywords {
				if strings.Contains(lower, kw) {
					level = family.level
					break scan
				}
			}
		}
	}

	if explicitYears && totalYears > 0 {
		switch {
		case totalYears >= 5:
			level = types.LevelSenior
		case totalYears >= 2:
			level = types.LevelMid
		default:
			level = types.LevelEntry
		}
	}
	return level
}

// extractPositions parses job history from experience segments only. A
// line containing a recognizable date range becomes a position; the
// rest of the line is treated as "title, company" and up to three
// following bullet-or-long lines become responsibilities.
func extractPositions(segments []TextSegment) []types.Position {
	var positions []types.Position
	for i := range segments {
		if segments[i].Section != SectionExperience {
			continue
		}
		lines := segments[i].Lines
		for j := 0; j < len(lines) && len(positions) < types.MaxPositions; j++ {
			loc := dateRangeRe.FindStringIndex(lines[j])
			if loc == nil {
				continue
			}
			duration := strings.TrimSpace(lines[j][loc[0]:loc[1]])
			remainder := strings.TrimSpace(lines[j][:loc[0]] + " " + lines[j][loc[1]:])
			remainder = strings.Trim(remainder, " \t|,;-–—()")
			title, company := splitTitleCompany(remainder)

			pos := types.Position{Title: title, Company: company, Duration: duration}
			for k := j + 1; k <= j+3 && k < len(lines); k++ {
				if dateRangeRe.MatchString(lines[k]) {
					break
				}
				if resp, ok := responsibilityLine(lines[k]); ok {
					pos.Responsibilities = append(pos.Responsibilities, resp)
				} else {
					break
				}
			}
			positions = append(positions, pos)
		}
	}
	return positions
}

// splitTitleCompany splits "Senior Engineer, Acme Corp" or
// "Senior Engineer at Acme Corp" into its two halves. With no
// separator the whole remainder is the title.
func splitTitleCompany(remainder string) (title, company string) {
	for _, sep := range []string{" at ", " @ ", ",", " | ", " - ", " – "} {
		if idx := strings.Index(remainder, sep); idx > 0 {
			title = strings.TrimSpace(remainder[:idx])
			company = strings.TrimSpace(remainder[idx+len(sep):])
			return title, company
		}
	}
	return strings.TrimSpace(remainder), ""
}

// responsibilityLine reports whether a line looks like a bullet or a
// long descriptive sentence, returning the cleaned text.
func responsibilityLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "— "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	if len(trimmed) > 40 {
		return trimmed, true
	}
	return "", false
}
