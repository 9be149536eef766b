package templates

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/job-classifier/internal/registry"
	"github.com/jonathan/job-classifier/internal/types"
)

// Candidate holds the applicant fields filled into a template. All fields are
// LaTeX-escaped during fill.
type Candidate struct {
	Name  string
	Email string
	Phone string
}

// FillData is the data structure passed to a LaTeX template.
type FillData struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	Keywords []string
}

// Resolve looks up the CV/cover-letter template pair for a category key.
func Resolve(reg *registry.Registry, key string) (types.TemplatePair, error) {
	pair, ok := reg.Templates(key)
	if !ok {
		return types.TemplatePair{}, &UnknownCategoryError{Key: key}
	}
	return pair, nil
}

// Fill reads a LaTeX template file and executes it with the candidate fields
// and the matched keywords for the winning role. Delimiters are [[ ]] so the
// template engine never trips over LaTeX braces. PDF compilation is the
// caller's problem; this only produces the .tex source.
func Fill(templatePath string, candidate Candidate, role string, keywords []string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
			}
		}
		return "", &TemplateError{
			Message: "failed to read template",
			Cause:   err,
		}
	}

	tmpl, err := template.New(templatePath).Delims("[[", "]]").Parse(string(content))
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	escapedKeywords := make([]string, len(keywords))
	for i, kw := range keywords {
		escapedKeywords[i] = EscapeLaTeX(kw)
	}

	data := FillData{
		Name:     EscapeLaTeX(candidate.Name),
		Email:    EscapeLaTeX(candidate.Email),
		Phone:    EscapeLaTeX(candidate.Phone),
		Role:     EscapeLaTeX(role),
		Keywords: escapedKeywords,
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}
