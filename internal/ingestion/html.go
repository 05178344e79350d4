package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlHintRe = regexp.MustCompile(`(?i)<\s*(?:html|body|div|p|br|ul|li|h[1-6]|span|table)\b`)

// blockTags are elements that end a line when flattened to text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"li": true, "tr": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// IsHTML reports whether content looks like markup rather than plain
// text. Plain resumes that merely mention angle brackets do not trip it.
func IsHTML(content string) bool {
	return htmlHintRe.MatchString(content)
}

// StripHTML flattens an HTML document to plain text. Script and style
// bodies are dropped, block elements become line breaks and list items
// keep a bullet marker so downstream segmentation still sees structure.
func StripHTML(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, head").Remove()

	var b strings.Builder
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, node *goquery.Selection) {
			if goquery.NodeName(node) == "#text" {
				b.WriteString(node.Text())
				return
			}
			tag := goquery.NodeName(node)
			if tag == "li" {
				b.WriteString("\n- ")
				walk(node)
				return
			}
			if blockTags[tag] {
				b.WriteString("\n")
			}
			walk(node)
			if blockTags[tag] {
				b.WriteString("\n")
			}
		})
	}
	walk(doc.Selection)

	return b.String(), nil
}
