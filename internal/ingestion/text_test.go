package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	result := CleanText("line one\r\nline two\rline three")
	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesInternalSpaces(t *testing.T) {
	result := CleanText("Python,    Django,\t AWS")
	assert.Equal(t, "Python, Django, AWS", result)
}

func TestCleanText_PreservesIndentedBullets(t *testing.T) {
	result := CleanText("  - Built   the pipeline\n  * Shipped  it")
	assert.Equal(t, "  - Built the pipeline\n  * Shipped it", result)
}

func TestCleanText_HeadingsLoseIndentation(t *testing.T) {
	result := CleanText("   ## Skills\nPython")
	assert.Equal(t, "## Skills\nPython", result)
}

func TestCleanText_LimitsBlankRuns(t *testing.T) {
	result := CleanText("SKILLS\n\n\n\n\nPython")
	assert.Equal(t, "SKILLS\n\nPython", result)
}

func TestCleanText_TrimsDocument(t *testing.T) {
	assert.Equal(t, "hello", CleanText("\n\n  hello  \n\n"))
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n \t \n"))
}

func TestCleanText_TrimsTrailingWhitespacePerLine(t *testing.T) {
	result := CleanText("SKILLS   \nPython\t")
	assert.Equal(t, "SKILLS\nPython", result)
}
