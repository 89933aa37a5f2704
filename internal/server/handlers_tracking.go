package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/applytrack/internal/db"
	"github.com/jonathan/applytrack/internal/tracking"
)

// handleTrackingSummary aggregates the stored applications into the
// dashboard payload: status breakdown, response rates, monthly
// timeline, and weekly activity.
func (s *Server) handleTrackingSummary(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.ListApplications(r.Context(), db.ApplicationFilters{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"byStatus": tracking.StatusBreakdown(apps),
		"rates":    tracking.ResponseRates(apps),
		"timeline": tracking.MonthlyTimeline(apps),
		"weekly":   tracking.WeeklyActivity(apps, time.Now()),
	})
}

// handleTrackingUpcoming lists pending interviews and reminders,
// soonest first.
func (s *Server) handleTrackingUpcoming(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.ListApplications(r.Context(), db.ApplicationFilters{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list applications")
		return
	}

	items := tracking.UpcomingItems(apps, time.Now())
	if items == nil {
		items = []tracking.UpcomingItem{}
	}
	s.jsonResponse(w, http.StatusOK, items)
}

// handleTrackingExport streams the application list as a spreadsheet.
func (s *Server) handleTrackingExport(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.ListApplications(r.Context(), db.ApplicationFilters{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list applications")
		return
	}

	data, err := tracking.ExportXLSX(apps)
	if err != nil {
		log.Printf("[tracking] spreadsheet export failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to build spreadsheet")
		return
	}

	filename := fmt.Sprintf("applications_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
