package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"full document", "<html><body><p>hi</p></body></html>", true},
		{"fragment", `<div class="posting">Engineer wanted</div>`, true},
		{"heading tag", "<h2>Skills</h2>", true},
		{"plain text", "Senior Engineer with 5 years experience", false},
		{"angle brackets in prose", "used map<string, int> daily", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHTML(tt.content))
		})
	}
}

func TestStripHTML_FlattensBlocks(t *testing.T) {
	html := `<html><body>
<h1>Jane Doe</h1>
<p>Senior Engineer</p>
<ul><li>Python</li><li>Django</li></ul>
</body></html>`

	text, err := StripHTML(html)
	require.NoError(t, err)

	cleaned := CleanText(text)
	assert.Contains(t, cleaned, "Jane Doe")
	assert.Contains(t, cleaned, "Senior Engineer")
	assert.Contains(t, cleaned, "- Python")
	assert.Contains(t, cleaned, "- Django")
}

func TestStripHTML_DropsScriptAndStyle(t *testing.T) {
	html := `<html><head><style>body { color: red }</style></head>
<body><script>tracker("load")</script><p>visible text</p></body></html>`

	text, err := StripHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "visible text")
	assert.NotContains(t, text, "tracker")
	assert.NotContains(t, text, "color: red")
}

func TestIngest_DetectsAndStripsHTML(t *testing.T) {
	cleaned, meta, err := Ingest("<html><body><p>Python developer</p></body></html>")
	require.NoError(t, err)

	assert.Equal(t, "Python developer", cleaned)
	assert.True(t, meta.WasHTML)
}

func TestIngest_PlainTextPassesThrough(t *testing.T) {
	cleaned, meta, err := Ingest("SKILLS\nPython,   Django")
	require.NoError(t, err)

	assert.Equal(t, "SKILLS\nPython, Django", cleaned)
	assert.False(t, meta.WasHTML)
	assert.NotEmpty(t, meta.Hash)
	assert.Equal(t, 2, meta.Lines)
}
