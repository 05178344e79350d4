// Package ingestion turns raw resume files into clean plain text the
// extraction pipeline can segment.
package ingestion

import (
	"fmt"
	"os"
)

// Ingest cleans raw content, stripping markup first when the content
// looks like HTML.
func Ingest(content string) (string, *Metadata, error) {
	wasHTML := IsHTML(content)
	if wasHTML {
		stripped, err := StripHTML(content)
		if err != nil {
			return "", nil, err
		}
		content = stripped
	}
	cleaned := CleanText(content)
	return cleaned, NewMetadata(cleaned, "", wasHTML), nil
}

// IngestFromFile reads a file and runs Ingest over its contents.
func IngestFromFile(path string) (string, *Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	cleaned, meta, err := Ingest(string(raw))
	if err != nil {
		return "", nil, err
	}
	meta.SourcePath = path
	return cleaned, meta, nil
}
