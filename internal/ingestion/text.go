package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw resume or job-posting text while preserving
// the structure the section segmenter relies on: headings stay on their
// own lines, bullets keep their markers and indentation.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes a single line. Markdown-style headings lose
// their leading indentation, bullets keep theirs, everything else gets
// internal runs of whitespace collapsed to single spaces.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if marker := bulletMarker(trimmed); marker != "" {
		indent := len(line) - len(trimmed)
		body := multiSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed[len(marker):]), " ")
		return strings.Repeat(" ", indent) + marker + body
	}

	indent := len(line) - len(trimmed)
	body := multiSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	return strings.Repeat(" ", indent) + body
}

// bulletMarker returns the list marker prefix of a line, or "" when
// the line is not a bullet.
func bulletMarker(trimmed string) string {
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, marker) {
			return marker
		}
	}
	return ""
}
