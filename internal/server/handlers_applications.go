package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/applytrack/internal/db"
	"github.com/jonathan/applytrack/internal/types"
)

// handleListApplications lists applications, optionally filtered by
// status and company.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	filters := db.ApplicationFilters{
		Status:  r.URL.Query().Get("status"),
		Company: r.URL.Query().Get("company"),
	}
	if filters.Status != "" && !types.ValidStatus(filters.Status) {
		s.errorResponse(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	apps, err := s.store.ListApplications(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list applications")
		return
	}
	if apps == nil {
		apps = []types.Application{}
	}
	s.jsonResponse(w, http.StatusOK, apps)
}

// handleCreateApplication creates an application. Company and role are
// snapshotted from the referenced job when the caller omits them.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var app types.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if app.JobDescriptionID != nil && (app.Company == "" || app.Role == "") {
		job, err := s.store.GetJob(r.Context(), *app.JobDescriptionID)
		if err == nil && job != nil {
			if app.Company == "" {
				app.Company = job.Company
			}
			if app.Role == "" {
				app.Role = job.Role
			}
			if app.Location == "" {
				app.Location = job.Location
			}
		}
	}

	if strings.TrimSpace(app.Company) == "" && strings.TrimSpace(app.Role) == "" {
		s.errorResponse(w, http.StatusBadRequest, "company or role is required")
		return
	}

	if err := s.store.CreateApplication(r.Context(), &app); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

// handleGetApplication returns one application.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	app, err := s.store.GetApplication(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "application not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateApplication applies a partial field update.
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
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

	app, err := s.store.UpdateApplication(r.Context(), id, fields)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleDeleteApplication deletes an application.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.DeleteApplication(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleAddInterview appends an interview to an application.
func (s *Server) handleAddInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var interview types.InterviewSchedule
	if err := json.NewDecoder(r.Body).Decode(&interview); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	if interview.Date == "" || interview.Type == "" {
		s.errorResponse(w, http.StatusBadRequest, "date and type are required")
		return
	}

	app, err := s.store.GetApplication(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "application not found")
		return
	}

	interviews := append(app.Interviews, interview)
	updated, err := s.store.UpdateApplication(r.Context(), id, map[string]any{"interviews": interviews})
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, updated)
}

// handleAddReminder appends a follow-up reminder to an application.
func (s *Server) handleAddReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var reminder types.FollowUpReminder
	if err := json.NewDecoder(r.Body).Decode(&reminder); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	if reminder.Date == "" || reminder.Type == "" {
		s.errorResponse(w, http.StatusBadRequest, "date and type are required")
		return
	}

	app, err := s.store.GetApplication(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "application not found")
		return
	}

	reminders := append(app.Reminders, reminder)
	updated, err := s.store.UpdateApplication(r.Context(), id, map[string]any{"reminders": reminders})
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, updated)
}
