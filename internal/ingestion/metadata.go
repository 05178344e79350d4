package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an ingested document.
type Metadata struct {
	SourcePath string `json:"source_path,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339
	Hash       string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Bytes      int    `json:"bytes"`
	Lines      int    `json:"lines"`
	WasHTML    bool   `json:"was_html"`
}

// NewMetadata builds Metadata for cleaned text with the current UTC
// timestamp.
func NewMetadata(cleaned string, sourcePath string, wasHTML bool) *Metadata {
	lines := 0
	if cleaned != "" {
		lines = strings.Count(cleaned, "\n") + 1
	}
	return &Metadata{
		SourcePath: sourcePath,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(cleaned),
		Bytes:      len(cleaned),
		Lines:      lines,
		WasHTML:    wasHTML,
	}
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
