// Package templates resolves and fills the CV/cover-letter template pair for a
// classified role category.
package templates

import "fmt"

// TemplateError represents an error parsing or executing a LaTeX template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// UnknownCategoryError is returned when a template pair is requested for a
// category key the registry does not know.
type UnknownCategoryError struct {
	Key string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown role category: %q", e.Key)
}
