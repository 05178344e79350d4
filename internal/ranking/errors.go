package ranking

import "fmt"

// RankError represents an unrecoverable ranking failure, as opposed to
// per-job transient failures which are logged and skipped.
type RankError struct {
	Message string
	Cause   error
}

func (e *RankError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ranking error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ranking error: %s", e.Message)
}

func (e *RankError) Unwrap() error {
	return e.Cause
}
