package analyzer

import "fmt"

// KeywordError represents a keyword that could not be turned into a match
// pattern. Extraction skips the keyword and continues; the error exists so the
// degraded path is a typed outcome rather than a swallowed panic.
type KeywordError struct {
	Keyword string
	Message string
	Cause   error
}

func (e *KeywordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keyword %q: %s: %v", e.Keyword, e.Message, e.Cause)
	}
	return fmt.Sprintf("keyword %q: %s", e.Keyword, e.Message)
}

func (e *KeywordError) Unwrap() error {
	return e.Cause
}
