package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestClassifySkills_ToolsPartitioned(t *testing.T) {
	set := scanText(t, "Skills\nPython, Git, Docker, Jira")

	technical, tools := classifySkills(set)
	assert.Contains(t, technical, "Python")
	assert.Contains(t, technical, "Docker")
	assert.Contains(t, tools, "Git")
	assert.Contains(t, tools, "Jira")
	assert.NotContains(t, technical, "Git")
}

func TestClassifySkills_ExplicitOutranksInferred(t *testing.T) {
	set := newCandidateSet()
	// An inferred candidate with a huge accumulated weight must still
	// sort below any explicit mention.
	set.add("MongoDB", 50.0, true)
	set.add("Python", 1.0, false)

	technical, _ := classifySkills(set)
	require.Len(t, technical, 2)
	assert.Equal(t, "Python", technical[0])
	assert.Equal(t, "MongoDB", technical[1])
}

func TestClassifySkills_WeightTimesCountOrdering(t *testing.T) {
	set := newCandidateSet()
	set.add("Java", 3.0, false)
	set.add("Python", 3.0, false)
	set.add("Python", 2.0, false) // weight 5, count 2

	technical, _ := classifySkills(set)
	require.Len(t, technical, 2)
	assert.Equal(t, "Python", technical[0])
}

func TestClassifySkills_Caps(t *testing.T) {
	set := newCandidateSet()
	for _, name := range strings.Fields("A B C D E F G H I J K L M N O P Q R0 S T U V W X Y Z AA BB CC DD") {
		set.add("Skill"+name, 1.0, false)
	}

	technical, tools := classifySkills(set)
	assert.LessOrEqual(t, len(technical), types.MaxTechnicalSkills)
	assert.LessOrEqual(t, len(tools), types.MaxTools)
}

func TestExtractSoftSkills_RuleLabels(t *testing.T) {
	text := "Led a team of five, strong communication and problem-solving in agile sprints. Collaborated cross-functionally, prioritized ruthlessly."

	soft := extractSoftSkills(text)
	assert.Contains(t, soft, "Leadership")
	assert.Contains(t, soft, "Communication")
	assert.Contains(t, soft, "Problem Solving")
	assert.Contains(t, soft, "Agile Methodology")
	assert.Contains(t, soft, "Teamwork")
	assert.Contains(t, soft, "Time Management")
	assert.LessOrEqual(t, len(soft), types.MaxSoftSkills)
}

func TestExtractSoftSkills_NoMatches(t *testing.T) {
	assert.Empty(t, extractSoftSkills("plain text with nothing relevant"))
}

func TestExtractSoftSkills_Deduplicated(t *testing.T) {
	text := "communication, communicating, communicated"
	soft := extractSoftSkills(text)
	count := 0
	for _, s := range soft {
		if s == "Communication" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
