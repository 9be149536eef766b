package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeTempRegistry(t, `{
		"fallback": "devops_cloud",
		"categories": [
			{
				"key": "android_developer",
				"keywords": ["android", "kotlin"],
				"priority": 1,
				"templates": {"cv": "cv_android.tex", "cover_letter": "cover_android.tex"}
			},
			{
				"key": "devops_cloud",
				"keywords": ["kubernetes"],
				"priority": 2,
				"templates": {"cv": "cv_devops.tex", "cover_letter": "cover_devops.tex"}
			}
		]
	}`)

	reg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"android_developer", "devops_cloud"}, reg.Keys())
	assert.Equal(t, "devops_cloud", reg.FallbackKey())
	assert.Equal(t, 2, reg.Priority("devops_cloud"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempRegistry(t, `{not json`)

	_, err := Load(path)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_InvalidPriority(t *testing.T) {
	path := writeTempRegistry(t, `{
		"categories": [
			{
				"key": "devops_cloud",
				"keywords": ["kubernetes"],
				"priority": 0,
				"templates": {"cv": "cv.tex", "cover_letter": "cover.tex"}
			}
		]
	}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_DuplicateKeys(t *testing.T) {
	path := writeTempRegistry(t, `{
		"categories": [
			{
				"key": "devops_cloud",
				"keywords": ["kubernetes"],
				"priority": 1,
				"templates": {"cv": "cv.tex", "cover_letter": "cover.tex"}
			},
			{
				"key": "devops_cloud",
				"keywords": ["terraform"],
				"priority": 2,
				"templates": {"cv": "cv.tex", "cover_letter": "cover.tex"}
			}
		]
	}`)

	_, err := Load(path)
	assert.Error(t, err)
}
