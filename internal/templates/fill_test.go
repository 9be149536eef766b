package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-classifier/internal/registry"
	"github.com/jonathan/job-classifier/internal/types"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New([]types.RoleCategory{
		{
			Key:      "devops_cloud",
			Priority: 1,
			Keywords: []string{"kubernetes"},
			Templates: types.TemplatePair{
				CV:          "templates/cv_devops.tex",
				CoverLetter: "templates/cover_devops.tex",
			},
		},
	}, "devops_cloud")
	require.NoError(t, err)
	return reg
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.tex")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve_KnownCategory(t *testing.T) {
	pair, err := Resolve(testRegistry(t), "devops_cloud")
	require.NoError(t, err)

	assert.Equal(t, "templates/cv_devops.tex", pair.CV)
	assert.Equal(t, "templates/cover_devops.tex", pair.CoverLetter)
}

func TestResolve_UnknownCategory(t *testing.T) {
	_, err := Resolve(testRegistry(t), "astronaut")

	var unknownErr *UnknownCategoryError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "astronaut", unknownErr.Key)
}

func TestFill_SubstitutesFields(t *testing.T) {
	path := writeTemplate(t, `\name{[[.Name]]} \email{[[.Email]]} \role{[[.Role]]}`)

	result, err := Fill(path, Candidate{Name: "Ada Lovelace", Email: "ada@example.com"}, "devops_cloud", nil)
	require.NoError(t, err)

	assert.Contains(t, result, `\name{Ada Lovelace}`)
	assert.Contains(t, result, `\email{ada@example.com}`)
	assert.Contains(t, result, `\role{devops\_cloud}`)
}

func TestFill_EscapesCandidateFields(t *testing.T) {
	path := writeTemplate(t, `[[.Name]]`)

	result, err := Fill(path, Candidate{Name: "100% Match & Co"}, "devops_cloud", nil)
	require.NoError(t, err)

	assert.Equal(t, `100\% Match \& Co`, result)
}

func TestFill_KeywordsRange(t *testing.T) {
	path := writeTemplate(t, `[[range .Keywords]]\item [[.]]
[[end]]`)

	result, err := Fill(path, Candidate{}, "devops_cloud", []string{"kubernetes", "ci/cd"})
	require.NoError(t, err)

	assert.Contains(t, result, `\item kubernetes`)
	assert.Contains(t, result, `\item ci/cd`)
}

func TestFill_LaTeXBracesSurviveDelimiters(t *testing.T) {
	// LaTeX's own braces must pass through untouched since the template
	// delimiters are [[ ]].
	path := writeTemplate(t, `\section{Experience} [[.Name]]`)

	result, err := Fill(path, Candidate{Name: "Ada"}, "devops_cloud", nil)
	require.NoError(t, err)

	assert.Contains(t, result, `\section{Experience}`)
}

func TestFill_MissingTemplateFile(t *testing.T) {
	_, err := Fill(filepath.Join(t.TempDir(), "missing.tex"), Candidate{}, "devops_cloud", nil)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, err.Error(), "not found")
}

func TestFill_MalformedTemplate(t *testing.T) {
	path := writeTemplate(t, `[[.Name`)

	_, err := Fill(path, Candidate{}, "devops_cloud", nil)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
}
