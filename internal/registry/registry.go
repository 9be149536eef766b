// Package registry holds the static role-category table that drives
// classification and template selection. A Registry is built once at startup,
// validated eagerly, and never mutated afterwards, so it is safe to share
// across goroutines without locking.
package registry

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-classifier/internal/types"
)

// DefaultFallbackKey is the category returned by Fallback when nothing
// excludes it. DevOps/cloud is the broadest template family in the default
// table, which makes it the safest "no idea" answer.
const DefaultFallbackKey = "devops_cloud"

var validate = validator.New()

// Registry is an immutable, ordered collection of role categories.
// Declaration order matters: it is the tie-break order for best-match
// selection, breakdown sorting, and fallback resolution.
type Registry struct {
	categories  []types.RoleCategory
	byKey       map[string]int
	fallbackKey string
}

// New builds a Registry from the given categories. It fails fast on
// configuration errors: duplicate keys, non-positive priorities, or a fallback
// key that is not in the table.
func New(categories []types.RoleCategory, fallbackKey string) (*Registry, error) {
	if len(categories) == 0 {
		return nil, &ConfigError{Message: "at least one category is required"}
	}

	byKey := make(map[string]int, len(categories))
	for i, cat := range categories {
		if err := validate.Struct(cat); err != nil {
			return nil, &ConfigError{
				Category: cat.Key,
				Message:  "invalid category definition",
				Cause:    err,
			}
		}
		if _, exists := byKey[cat.Key]; exists {
			return nil, &ConfigError{
				Category: cat.Key,
				Message:  "duplicate category key",
			}
		}
		byKey[cat.Key] = i
	}

	if fallbackKey == "" {
		fallbackKey = DefaultFallbackKey
	}
	if _, ok := byKey[fallbackKey]; !ok {
		return nil, &ConfigError{
			Category: fallbackKey,
			Message:  "fallback key not present in category table",
		}
	}

	return &Registry{
		categories:  categories,
		byKey:       byKey,
		fallbackKey: fallbackKey,
	}, nil
}

// Categories returns the categories in declaration order. Callers must treat
// the returned slice as read-only.
func (r *Registry) Categories() []types.RoleCategory {
	return r.categories
}

// Keys returns all category keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.categories))
	for i, cat := range r.categories {
		keys[i] = cat.Key
	}
	return keys
}

// Lookup returns the category for the given key.
func (r *Registry) Lookup(key string) (types.RoleCategory, bool) {
	idx, ok := r.byKey[key]
	if !ok {
		return types.RoleCategory{}, false
	}
	return r.categories[idx], true
}

// Priority returns the configured priority for a key, or 0 if unknown.
func (r *Registry) Priority(key string) int {
	if cat, ok := r.Lookup(key); ok {
		return cat.Priority
	}
	return 0
}

// Templates resolves the CV/cover-letter template pair for a category key.
func (r *Registry) Templates(key string) (types.TemplatePair, bool) {
	cat, ok := r.Lookup(key)
	if !ok {
		return types.TemplatePair{}, false
	}
	return cat.Templates, true
}

// FallbackKey returns the configured default fallback category.
func (r *Registry) FallbackKey() string {
	return r.fallbackKey
}

// Len returns the number of categories.
func (r *Registry) Len() int {
	return len(r.categories)
}
