package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{"api_key": "key123", "top_n": 20, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, 20, cfg.TopN)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative top_n", Config{TopN: -1}},
		{"negative ttl", Config{CacheTTLSeconds: -5}},
		{"negative capacity", Config{CacheCapacity: -1}},
		{"negative timeout", Config{ScorerTimeoutSeconds: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := Config{Resume: filepath.Join(t.TempDir(), "nope.txt")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ZeroConfigOK(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit", TopN: 10}
	defaults := Config{
		APIKey:          "default",
		Model:           "gemini-2.5-flash-lite",
		TopN:            50,
		CacheTTLSeconds: 60,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit", merged.APIKey, "explicit values win")
	assert.Equal(t, 10, merged.TopN)
	assert.Equal(t, "gemini-2.5-flash-lite", merged.Model, "empty values filled")
	assert.Equal(t, 60, merged.CacheTTLSeconds)
}
