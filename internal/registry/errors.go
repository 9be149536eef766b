package registry

import "fmt"

// ConfigError represents an invalid registry configuration. It is raised once
// at construction time; classification calls never see it.
type ConfigError struct {
	Category string
	Message  string
	Cause    error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Category != "" {
		msg = fmt.Sprintf("category %q: %s", e.Category, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("registry config error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("registry config error: %s", msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// LoadError represents a failure to read or parse a registry file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load registry %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load registry %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
