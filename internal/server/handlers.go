package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-classifier/internal/ingestion"
	"github.com/jonathan/job-classifier/internal/types"
)

// ingestTimeout bounds how long a classify-by-URL request may spend fetching.
const ingestTimeout = 30 * time.Second

var validate = validator.New()

// ClassifyRequest represents the request body for /classify.
// Exactly one of job_text and job_url must be set.
type ClassifyRequest struct {
	JobText string `json:"job_text,omitempty"`
	JobURL  string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// ClassifyResponse represents the response for /classify. Fallback carries the
// category a caller should use when confidence is too low to trust the result.
type ClassifyResponse struct {
	Result   *types.ClassificationResult `json:"result"`
	Fallback string                      `json:"fallback,omitempty"`
}

// CategoryResponse represents one registry entry for the categories endpoints.
type CategoryResponse struct {
	Key       string             `json:"key"`
	Priority  int                `json:"priority"`
	Keywords  []string           `json:"keywords"`
	Templates types.TemplatePair `json:"templates"`
}

// handleClassify classifies a job description supplied as text or by URL
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.JobText == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_text or job_url is required")
		return
	}
	if req.JobText != "" && req.JobURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "job_text and job_url are mutually exclusive")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		ctx, cancel := context.WithTimeout(r.Context(), ingestTimeout)
		defer cancel()

		fetched, err := ingestion.FromURL(ctx, req.JobURL, false)
		if err != nil {
			if errors.Is(err, ingestion.ErrEmptyContent) {
				s.errorResponse(w, http.StatusUnprocessableEntity, "No usable text at URL")
				return
			}
			log.Printf("Failed to ingest %s: %v", req.JobURL, err)
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting")
			return
		}
		jobText = fetched
	}

	result := s.classifier.Classify(jobText)

	resp := ClassifyResponse{Result: result}
	if result.BestCategory == "" {
		resp.Fallback = s.classifier.Fallback(nil)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListCategories returns the registry in declaration order
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.classifier.Registry().Categories()
	resp := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = CategoryResponse{
			Key:       cat.Key,
			Priority:  cat.Priority,
			Keywords:  cat.Keywords,
			Templates: cat.Templates,
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetCategory returns one registry entry by key
func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	cat, ok := s.classifier.Registry().Lookup(key)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Unknown category: "+key)
		return
	}

	s.jsonResponse(w, http.StatusOK, CategoryResponse{
		Key:       cat.Key,
		Priority:  cat.Priority,
		Keywords:  cat.Keywords,
		Templates: cat.Templates,
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
