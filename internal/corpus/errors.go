// Package corpus aggregates job listings from multiple sources into a
// single ranking corpus. Sources fail independently: one slow or broken
// provider degrades coverage instead of failing the whole fetch.
package corpus

import "fmt"

// SourceError represents a failure fetching from one provider.
type SourceError struct {
	Source string
	Cause  error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("source %s failed", e.Source)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// AggregateError is returned when every configured provider failed.
type AggregateError struct {
	Errors []*SourceError
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("all %d sources failed: %v", len(e.Errors), e.Errors[0])
}

func (e *AggregateError) Unwrap() error {
	return e.Errors[0]
}
