package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/applytrack/internal/generate"
	"github.com/jonathan/applytrack/internal/types"
)

// generateRequest is the full payload of POST /generate. DraftID lets
// clients that retry (double-click, network replay) collapse into one
// in-flight generation.
type generateRequest struct {
	MasterResume   types.MasterResume       `json:"masterResume"`
	JobDescription types.JobDescription     `json:"jobDescription"`
	Settings       types.GenerationSettings `json:"settings"`
	DraftID        string                   `json:"draftId,omitempty"`
}

// handleGenerate runs one tailoring request against the generation
// service and returns the resulting documents.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid JSON body"})
		return
	}

	genReq := generate.Request{
		Resume:   req.MasterResume,
		Job:      req.JobDescription,
		Settings: req.Settings.WithDefaults(),
	}

	run := func() (any, error) {
		return generate.Generate(r.Context(), s.client, genReq)
	}

	var result *generate.Result
	var err error
	if req.DraftID != "" {
		var v any
		v, err, _ = s.genGroup.Do(req.DraftID, run)
		if err == nil {
			result = v.(*generate.Result)
		}
	} else {
		var v any
		v, err = run()
		if err == nil {
			result = v.(*generate.Result)
		}
	}

	if err != nil {
		status := HTTPStatus(err)
		msg := err.Error()
		if status >= 500 {
			log.Printf("[generate] generation failed: %v", err)
			msg = "generation failed"
		}
		s.jsonResponse(w, status, envelope{Success: false, Error: msg})
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: result})
}
