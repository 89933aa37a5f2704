package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/applytrack/internal/render"
	"github.com/jonathan/applytrack/internal/types"
)

// exportRequest is the POST /export payload: generated text plus the
// optional structured resume for section-aware rendering.
type exportRequest struct {
	ResumeText      string              `json:"resumeText,omitempty"`
	CoverLetterText string              `json:"coverLetterText,omitempty"`
	CompanyName     string              `json:"companyName,omitempty"`
	RoleName        string              `json:"roleName,omitempty"`
	Resume          *types.MasterResume `json:"resume,omitempty"`
	Target          string              `json:"target,omitempty"`
	Format          string              `json:"format,omitempty"`
}

// handleExport renders the supplied content into a downloadable
// document.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	target, err := render.ParseTarget(req.Target)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	format, err := render.ParseFormat(req.Format)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Resume == nil && req.ResumeText == "" && req.CoverLetterText == "" {
		s.errorResponse(w, http.StatusBadRequest, "nothing to export")
		return
	}

	s.writeArtifact(w, render.Request{
		ResumeText:      req.ResumeText,
		CoverLetterText: req.CoverLetterText,
		CompanyName:     req.CompanyName,
		RoleName:        req.RoleName,
		Resume:          req.Resume,
	}, target, format)
}

// handleExportStored renders a stored master resume identified by the
// resumeId query parameter.
func (s *Server) handleExportStored(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("resumeId")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "resumeId query parameter is required")
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resumeId must be a valid UUID")
		return
	}

	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	target, err := render.ParseTarget(r.URL.Query().Get("target"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
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

	s.writeArtifact(w, render.Request{
		Resume:      &stored.Resume,
		CompanyName: r.URL.Query().Get("company"),
	}, target, format)
}

// writeArtifact runs the renderer and streams the artifact as an
// attachment.
func (s *Server) writeArtifact(w http.ResponseWriter, req render.Request, target render.Target, format render.Format) {
	artifact, err := render.Render(req, target, format)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
