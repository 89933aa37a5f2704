package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/applytrack/internal/ingest"
	"github.com/jonathan/applytrack/internal/parsing"
	"github.com/jonathan/applytrack/internal/types"
)

// parseJobRequest carries either pasted posting text or a posting URL.
type parseJobRequest struct {
	JobText string `json:"jobText,omitempty"`
	URL     string `json:"url,omitempty"`
}

// envelope is the success/data/error response shape of the AI-facing
// endpoints.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleParseJob extracts structured job fields from pasted text or a
// fetched posting URL. The caller's input is never persisted here, so
// a failed parse can be retried without data loss.
func (s *Server) handleParseJob(w http.ResponseWriter, r *http.Request) {
	var req parseJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid JSON body"})
		return
	}

	text := req.JobText
	if strings.TrimSpace(text) == "" && req.URL != "" {
		fetched, err := ingest.FromURL(r.Context(), req.URL, s.cfg.UseBrowser, s.cfg.Verbose)
		if err != nil {
			log.Printf("[jobs] failed to ingest posting URL: %v", err)
			s.jsonResponse(w, HTTPStatus(err), envelope{Success: false, Error: "failed to fetch job posting"})
			return
		}
		text = fetched
	}

	text = ingest.CleanText(text)
	if err := ingest.ValidateJobText(text); err != nil {
		s.jsonResponse(w, HTTPStatus(err), envelope{Success: false, Error: err.Error()})
		return
	}

	job, err := parsing.ParseJobText(r.Context(), s.client, text)
	if err != nil {
		log.Printf("[jobs] extraction failed: %v", err)
		s.jsonResponse(w, HTTPStatus(err), envelope{Success: false, Error: "failed to parse job posting"})
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: job})
}

// handleListJobs lists stored job descriptions.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	jobs, err := s.store.ListJobs(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []types.JobDescription{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleCreateJob stores a job description supplied by the caller.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var job types.JobDescription
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(job.Company) == "" && strings.TrimSpace(job.Role) == "" {
		s.errorResponse(w, http.StatusBadRequest, "company or role is required")
		return
	}

	if err := s.store.CreateJob(r.Context(), &job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleGetJob returns one job description.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob replaces a stored job description.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var job types.JobDescription
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	job.ID = id

	if err := s.store.UpdateJob(r.Context(), &job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob deletes a job description. Applications referencing
// it keep their company/role snapshot.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.DeleteJob(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}
