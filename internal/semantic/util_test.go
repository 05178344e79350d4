package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"relevance": 0.8}`, `{"relevance": 0.8}`},
		{"json fence", "```json\n{\"relevance\": 0.8}\n```", `{"relevance": 0.8}`},
		{"generic fence", "```\n{\"relevance\": 0.8}\n```", `{"relevance": 0.8}`},
		{"fence with language tag", "```javascript\n{\"relevance\": 0.8}\n```", `{"relevance": 0.8}`},
		{"surrounding whitespace", "  \n{\"relevance\": 0.8}\n  ", `{"relevance": 0.8}`},
		{"brace on fence line kept", "```{\"relevance\": 0.8}\n```", `{"relevance": 0.8}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}
