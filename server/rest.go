package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/feynman/pkg/domain"
	"github.com/umputun/feynman/pkg/matcher"
)

// sanitizer strips html from free-text fields before they reach storage
var sanitizer = bluemonday.StrictPolicy()

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to count annotations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":      "ok",
		"version":     s.version,
		"time":        time.Now().UTC(),
		"annotations": count,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// saveRequest is the annotation save payload, the canonical record shape
// minus the server-assigned fields
type saveRequest struct {
	Question      string                `json:"question"`
	AnswerFinal   string                `json:"answer_final"`
	FeynmanMethod *domain.FeynmanMethod `json:"feynman_method"`
	StyleFeatures []domain.StyleFeature `json:"styleFeatures"`
	Quality       domain.Quality        `json:"quality"`
	Notes         string                `json:"notes"`
	Source        string                `json:"source"`
}

// saveAnnotationHandler validates and appends a new annotation record.
// Validation failures are the only error class surfaced to the user.
func (s *Server) saveAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if !req.Quality.Valid() {
		renderError(w, r, fmt.Errorf("invalid quality %q", req.Quality), http.StatusBadRequest)
		return
	}

	rec := &domain.AnnotationRecord{
		Question:      sanitizer.Sanitize(req.Question),
		AnswerFinal:   sanitizer.Sanitize(req.AnswerFinal),
		FeynmanMethod: req.FeynmanMethod,
		StyleFeatures: req.StyleFeatures,
		Quality:       req.Quality,
		Notes:         sanitizer.Sanitize(req.Notes),
		Source:        sanitizer.Sanitize(req.Source),
		Annotator:     s.config.GetAnnotator(),
	}

	if err := s.store.Append(r.Context(), rec); err != nil {
		if errors.Is(err, domain.ErrMissingRequiredField) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to save annotation: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, rec)
}

// listAnnotationsHandler returns annotations in reverse-chronological order,
// optionally filtered by substring query and quality
func (s *Server) listAnnotationsHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListFilter{
		Query:   r.URL.Query().Get("q"),
		Quality: domain.Quality(r.URL.Query().Get("quality")),
	}
	if !filter.Quality.Valid() {
		renderError(w, r, fmt.Errorf("invalid quality %q", filter.Quality), http.StatusBadRequest)
		return
	}

	recs, err := s.store.List(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to list annotations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"annotations": recs,
		"count":       len(recs),
	})
}

// deleteAnnotationHandler removes a record by id, unknown id is a no-op
func (s *Server) deleteAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.Remove(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete annotation %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// exportHandler offers the filtered or full collection as a date-named
// pretty-printed JSON download
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListFilter{
		Query:   r.URL.Query().Get("q"),
		Quality: domain.Quality(r.URL.Query().Get("quality")),
	}
	if !filter.Quality.Valid() {
		renderError(w, r, fmt.Errorf("invalid quality %q", filter.Quality), http.StatusBadRequest)
		return
	}

	fname := fmt.Sprintf("feynman-annotations-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))

	if err := s.store.Export(r.Context(), w, filter); err != nil {
		// headers are already sent, best effort from here
		log.Printf("[ERROR] failed to export annotations: %v", err)
	}
}

// importHandler accepts a JSON array of records in either historical shape
// and appends them, migrating legacy records
func (s *Server) importHandler(w http.ResponseWriter, r *http.Request) {
	imported, err := s.store.ImportJSON(r.Context(), r.Body)
	if err != nil {
		log.Printf("[ERROR] failed to import annotations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"imported": imported})
}

// suggestRequest is the suggestion payload
type suggestRequest struct {
	Text string `json:"text"`
}

// suggestHandler runs the pattern matcher over the submitted text and returns
// the top ranked suggestions. Text below the minimum-length gate yields an
// empty list without invoking the matcher.
func (s *Server) suggestHandler(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	matches := s.suggester.Suggest(req.Text)
	if matches == nil {
		matches = []domain.PatternMatch{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// applyRequest carries a partial template and the current draft to merge
type applyRequest struct {
	Template domain.FeynmanMethod `json:"template"`
	Draft    domain.FeynmanMethod `json:"draft"`
}

// applyTemplateHandler merges a suggestion template into the current draft,
// template fields win when present, draft fields are kept otherwise
func (s *Server) applyTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	merged := matcher.ApplyTemplate(req.Template, req.Draft)
	merged.RenumberSteps()
	renderJSON(w, r, http.StatusOK, merged)
}
