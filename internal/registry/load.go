package registry

import (
	"encoding/json"
	"log"
	"os"

	"github.com/jonathan/job-classifier/internal/schemas"
	"github.com/jonathan/job-classifier/internal/types"
)

// registryFile mirrors the on-disk JSON layout of a registry config.
type registryFile struct {
	Fallback   string               `json:"fallback,omitempty"`
	Categories []types.RoleCategory `json:"categories"`
}

// Load reads a registry from a JSON file. The file is checked against the
// registry JSON Schema when the schema can be located; construction-time
// validation (unique keys, positive priorities) applies either way.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.RegistrySchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	} else {
		log.Printf("registry schema not found, skipping schema validation for %s", path)
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	return New(file.Categories, file.Fallback)
}
