package extraction

import (
	"regexp"
	"strings"
)

// SkillCandidate is one deduplicated skill accumulated during a scan.
// Weight and Count only ever increase within a single extraction pass.
type SkillCandidate struct {
	Name     string
	Weight   float64
	Count    int
	Inferred bool
}

// candidateSet is the shared candidate map keyed by canonical name,
// with insertion order preserved for deterministic classification.
type candidateSet struct {
	byName map[string]*SkillCandidate
	order  []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byName: make(map[string]*SkillCandidate)}
}

// add records an occurrence of a skill. An explicit mention of a skill
// previously known only by inference promotes it to explicit.
func (s *candidateSet) add(name string, weight float64, inferred bool) {
	if cand, ok := s.byName[name]; ok {
		cand.Weight += weight
		cand.Count++
		if !inferred {
			cand.Inferred = false
		}
		return
	}
	s.byName[name] = &SkillCandidate{Name: name, Weight: weight, Count: 1, Inferred: inferred}
	s.order = append(s.order, name)
}

func (s *candidateSet) get(name string) (*SkillCandidate, bool) {
	cand, ok := s.byName[name]
	return cand, ok
}

// all returns candidates in insertion order.
func (s *candidateSet) all() []*SkillCandidate {
	out := make([]*SkillCandidate, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

const (
	negationWindow = 60  // chars before the mention, same line
	contextWindow  = 100 // chars either side of an ambiguous token
	maxNGram       = 4
)

// negationRe matches a negation cue at a word boundary. It is applied
// to the window of text preceding a mention on the same line.
var negationRe = regexp.MustCompile(`(?:^|[^a-z])(?:no|not|never|lack of|without|excluding|unfamiliar with|limited experience in)\b`)

var pureNumberRe = regexp.MustCompile(`^[0-9.+]+$`)

// token is a scanned word with its byte offset in the source line.
type token struct {
	text  string
	start int
}

// tokenize splits a line on whitespace and punctuation while keeping
// hyphens and the tech-name characters + # . / inside tokens, so
// "c++", "node.js" and "ci/cd" survive as single tokens. Trailing
// sentence punctuation is trimmed.
func tokenize(line string) []token {
	var tokens []token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		text := strings.Trim(line[start:end], ".,-")
		if text != "" {
			tokens = append(tokens, token{text: text, start: start})
		}
		start = -1
	}
	for i, r := range line {
		isWord := r == '-' || r == '+' || r == '#' || r == '.' || r == '/' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
		if isWord {
			if start < 0 {
				start = i
			}
		} else {
			flush(i)
		}
	}
	flush(len(line))
	return tokens
}

// scanSegments runs the n-gram alias scan over every segment,
// accumulating weighted candidates into a fresh shared map.
func scanSegments(segments []TextSegment) *candidateSet {
	set := newCandidateSet()
	for i := range segments {
		scanSegment(&segments[i], set)
	}
	return set
}

func scanSegment(seg *TextSegment, set *candidateSet) {
	lowerSegText := strings.ToLower(seg.Text())
	base := 0
	for _, line := range seg.Lines {
		scanLine(line, base, lowerSegText, seg.Weight, set)
		base += len(line) + 1 // +1 for the joining newline
	}
}

// scanLine matches n-grams of length 1-4 against the alias table,
// longest first. A match consumes its tokens so "machine learning"
// does not also count a bare "machine".
func scanLine(line string, base int, lowerSegText string, weight float64, set *candidateSet) {
	tokens := tokenize(line)
	lowerLine := strings.ToLower(line)

	for i := 0; i < len(tokens); {
		consumed := 0
		maxN := maxNGram
		if rest := len(tokens) - i; rest < maxN {
			maxN = rest
		}
		for n := maxN; n >= 1; n-- {
			phrase := gramText(tokens[i : i+n])
			canonical, ok := skillAliases[phrase]
			if !ok {
				continue
			}
			if accept(phrase, tokens[i].start, base, lowerLine, lowerSegText) {
				set.add(canonical, weight, false)
			}
			consumed = n
			break
		}
		if consumed > 0 {
			i += consumed
		} else {
			i++
		}
	}
}

// gramText joins tokens into a lowercase lookup phrase.
func gramText(tokens []token) string {
	if len(tokens) == 1 {
		return strings.ToLower(tokens[0].text)
	}
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = strings.ToLower(t.text)
	}
	return strings.Join(parts, " ")
}

// accept applies the precision filters: minimum length, pure numbers,
// same-line negation, and the technical-context requirement for
// ambiguous short tokens.
func accept(phrase string, lineStart, base int, lowerLine, lowerSegText string) bool {
	if pureNumberRe.MatchString(phrase) {
		return false
	}
	if len(phrase) < 2 && !ambiguousTokens[phrase] {
		return false
	}
	if negated(lowerLine, lineStart) {
		return false
	}
	if ambiguousTokens[phrase] && !hasTechnicalContext(lowerSegText, base+lineStart, len(phrase)) {
		return false
	}
	return true
}

// negated reports whether a negation cue occurs in the preceding
// window on the same line.
func negated(lowerLine string, start int) bool {
	lo := start - negationWindow
	if lo < 0 {
		lo = 0
	}
	if start > len(lowerLine) {
		start = len(lowerLine)
	}
	return negationRe.MatchString(lowerLine[lo:start])
}

// hasTechnicalContext reports whether any technical-context keyword
// appears within the context window around an ambiguous token. The
// window may span lines within the segment.
func hasTechnicalContext(lowerSegText string, start, length int) bool {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := start + length + contextWindow
	if hi > len(lowerSegText) {
		hi = len(lowerSegText)
	}
	if lo >= hi {
		return false
	}
	window := lowerSegText[lo:hi]
	for _, kw := range contextKeywords {
		if strings.Contains(window, kw) {
			return true
		}
	}
	return false
}
