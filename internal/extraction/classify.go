package extraction

import (
	"regexp"
	"sort"

	"github.com/jonathan/job-matcher/internal/types"
)

// classifySkills orders candidates and partitions them into technical
// skills and tools. Explicit mentions always outrank purely inferred
// candidates regardless of accumulated weight; within each group the
// ordering is weight x count descending, name ascending as a stable
// final tie-break.
func classifySkills(set *candidateSet) (technical, tools []string) {
	candidates := set.all()
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Inferred != b.Inferred {
			return !a.Inferred
		}
		scoreA := a.Weight * float64(a.Count)
		scoreB := b.Weight * float64(b.Count)
		if scoreA != scoreB {
			return scoreA > scoreB
		}
		return a.Name < b.Name
	})

	for _, cand := range candidates {
		if toolNames[cand.Name] {
			if len(tools) < types.MaxTools {
				tools = append(tools, cand.Name)
			}
			continue
		}
		if len(technical) < types.MaxTechnicalSkills {
			technical = append(technical, cand.Name)
		}
	}
	return technical, tools
}

// softSkillRules map a pattern scanned over the whole resume to a soft
// skill label. Order fixes the output order for equal matches.
var softSkillRules = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)\bteam\s?work\b|\bcollaborat\w*`), "Teamwork"},
	{regexp.MustCompile(`(?i)\bleadership\b|\bled\s+(?:a\s+)?team\b|\bmentor\w*`), "Leadership"},
	{regexp.MustCompile(`(?i)\bcommunicat\w*`), "Communication"},
	{regexp.MustCompile(`(?i)\bproblem[\s-]solv\w*`), "Problem Solving"},
	{regexp.MustCompile(`(?i)\bproject\s+management\b|\bmanaged\s+projects?\b`), "Project Management"},
	{regexp.MustCompile(`(?i)\bagile\b|\bscrum\b|\bkanban\b`), "Agile Methodology"},
	{regexp.MustCompile(`(?i)\banalytical\b|\bcritical\s+thinking\b`), "Analytical Thinking"},
	{regexp.MustCompile(`(?i)\btime\s+management\b|\bprioriti[sz]\w*`), "Time Management"},
}

// extractSoftSkills scans the full text against the soft-skill rules,
// independent of the weighted candidate pipeline.
func extractSoftSkills(rawText string) []string {
	var soft []string
	for _, rule := range softSkillRules {
		if len(soft) >= types.MaxSoftSkills {
			break
		}
		if rule.re.MatchString(rawText) {
			soft = append(soft, rule.label)
		}
	}
	return soft
}
