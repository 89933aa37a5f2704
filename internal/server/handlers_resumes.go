package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/applytrack/internal/types"
)

// handleGetResume returns the stored master resume for a user.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	stored, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load resume")
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handlePutResume replaces the stored master resume.
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var resume types.MasterResume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.store.SaveResume(r.Context(), id, resume); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "saved": true})
}

// handlePatchResume accepts a partial edit and hands it to the
// debounced auto-saver. The write happens after the quiet window, so
// the response only acknowledges receipt.
func (s *Server) handlePatchResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(fields) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	s.autosaver.Schedule(id, fields)
	s.jsonResponse(w, http.StatusAccepted, map[string]any{"id": id, "scheduled": true})
}
