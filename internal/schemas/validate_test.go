package schemas

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["key", "priority"],
	"properties": {
		"key": {"type": "string", "minLength": 1},
		"priority": {"type": "integer", "minimum": 1}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"key": "devops_cloud", "priority": 1}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"key": "devops_cloud"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"key": "devops_cloud", "priority": "high"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_FindsRegistrySchema(t *testing.T) {
	// The registry schema lives two levels up from this package.
	path := ResolveSchemaPath(RegistrySchemaPath)
	require.NotEmpty(t, path)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.json"))
}

func TestRegistrySchema_AcceptsValidRegistry(t *testing.T) {
	schemaPath := ResolveSchemaPath(RegistrySchemaPath)
	require.NotEmpty(t, schemaPath)

	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	err = ValidateJSONString(string(schema), `{
		"fallback": "devops_cloud",
		"categories": [
			{
				"key": "devops_cloud",
				"keywords": ["kubernetes", "terraform"],
				"priority": 1,
				"templates": {"cv": "cv.tex", "cover_letter": "cover.tex"}
			}
		]
	}`)
	assert.NoError(t, err)
}

func TestRegistrySchema_RejectsBadKey(t *testing.T) {
	schemaPath := ResolveSchemaPath(RegistrySchemaPath)
	require.NotEmpty(t, schemaPath)

	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	err = ValidateJSONString(string(schema), `{
		"categories": [
			{
				"key": "Not A Key",
				"priority": 1,
				"templates": {"cv": "cv.tex", "cover_letter": "cover.tex"}
			}
		]
	}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
