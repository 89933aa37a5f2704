// Package tracking derives read-side analytics over the application
// collection. All functions are pure: they operate on snapshots passed
// by value and never mutate stored state.
package tracking

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/applytrack/internal/dates"
	"github.com/jonathan/applytrack/internal/types"
)

// StatusCount is one row of the status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// StatusBreakdown counts applications per status. Every status in the
// enum set appears, including zero counts, so charts stay stable.
func StatusBreakdown(apps []types.Application) []StatusCount {
	counts := make(map[string]int, len(types.Statuses))
	for _, app := range apps {
		counts[app.Status]++
	}

	breakdown := make([]StatusCount, 0, len(types.Statuses))
	for _, status := range types.Statuses {
		breakdown = append(breakdown, StatusCount{
			Status: status,
			Label:  types.StatusLabel(status),
			Count:  counts[status],
		})
	}
	return breakdown
}

// Rates holds response-rate metrics as whole percents.
type Rates struct {
	Total        int            `json:"total"`
	ResponseRate int            `json:"responseRate"`
	PositiveRate int            `json:"positiveRate"`
	ByStatus     map[string]int `json:"byStatus"`
}

// respondedStatuses are the statuses that mean the company reacted.
var respondedStatuses = map[string]bool{
	types.StatusInterview: true,
	types.StatusOffer:     true,
	types.StatusRejected:  true,
}

// positiveStatuses are the statuses that mean a positive reaction.
var positiveStatuses = map[string]bool{
	types.StatusInterview: true,
	types.StatusOffer:     true,
}

// ResponseRates computes response, positive, and per-status rates as
// percents rounded to the nearest integer. All rates are 0 when there
// are no applications.
func ResponseRates(apps []types.Application) Rates {
	rates := Rates{
		Total:    len(apps),
		ByStatus: make(map[string]int, len(types.Statuses)),
	}
	for _, status := range types.Statuses {
		rates.ByStatus[status] = 0
	}
	if len(apps) == 0 {
		return rates
	}

	responded := 0
	positive := 0
	counts := make(map[string]int)
	for _, app := range apps {
		counts[app.Status]++
		if respondedStatuses[app.Status] {
			responded++
		}
		if positiveStatuses[app.Status] {
			positive++
		}
	}

	rates.ResponseRate = percent(responded, rates.Total)
	rates.PositiveRate = percent(positive, rates.Total)
	for status, count := range counts {
		rates.ByStatus[status] = percent(count, rates.Total)
	}
	return rates
}

// percent rounds count/total to the nearest whole percent.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}

// MonthCount is one bucket of the monthly timeline.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// MonthlyTimeline groups applications by the calendar month of their
// application date, ascending, keeping the most recent 6 buckets.
// Applications without a parseable date are skipped.
func MonthlyTimeline(apps []types.Application) []MonthCount {
	counts := make(map[string]int)
	for _, app := range apps {
		t, err := dates.ParseLocal(app.ApplicationDate)
		if err != nil {
			continue
		}
		counts[dates.MonthKey(t)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 6 {
		keys = keys[len(keys)-6:]
	}

	timeline := make([]MonthCount, 0, len(keys))
	for _, k := range keys {
		timeline = append(timeline, MonthCount{Month: k, Count: counts[k]})
	}
	return timeline
}

// WeekCount is one seven-day activity window.
type WeekCount struct {
	Start string `json:"start"` // YYYY-MM-DD, inclusive
	End   string `json:"end"`   // YYYY-MM-DD, inclusive
	Count int    `json:"count"`
}

// WeeklyActivity counts applications in the last 4 seven-day windows
// ending at now, oldest window first.
func WeeklyActivity(apps []types.Application, now time.Time) []WeekCount {
	today := dates.StartOfDay(now)

	windows := make([]WeekCount, 0, 4)
	for i := 3; i >= 0; i-- {
		end := today.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -6)

		count := 0
		for _, app := range apps {
			t, err := dates.ParseLocal(app.ApplicationDate)
			if err != nil {
				continue
			}
			if !t.Before(start) && !t.After(end) {
				count++
			}
		}

		windows = append(windows, WeekCount{
			Start: start.Format(dates.Layout),
			End:   end.Format(dates.Layout),
			Count: count,
		})
	}
	return windows
}

// Display states for upcoming items.
const (
	StateOverdue  = "overdue"
	StateDueToday = "due_today"
	StateUpcoming = "upcoming"
)

// Item kinds for upcoming items.
const (
	KindInterview = "interview"
	KindReminder  = "reminder"
)

// UpcomingItem is one incomplete interview or reminder, annotated with
// its display state relative to today.
type UpcomingItem struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	Company       string    `json:"company"`
	Role          string    `json:"role"`
	Kind          string    `json:"kind"`
	Type          string    `json:"type"`
	Date          string    `json:"date"`
	Detail        string    `json:"detail,omitempty"`
	State         string    `json:"state"`
}

// UpcomingItems returns the union of incomplete interviews and
// reminders across all applications, sorted by date ascending. Items
// dated strictly before today are overdue; items dated today are due
// today.
func UpcomingItems(apps []types.Application, now time.Time) []UpcomingItem {
	today := dates.StartOfDay(now)

	var items []UpcomingItem
	for _, app := range apps {
		for _, iv := range app.Interviews {
			if iv.Completed {
				continue
			}
			item, ok := buildItem(app, KindInterview, iv.Type, iv.Date, iv.Notes, today)
			if ok {
				items = append(items, item)
			}
		}
		for _, rem := range app.Reminders {
			if rem.Completed {
				continue
			}
			item, ok := buildItem(app, KindReminder, rem.Type, rem.Date, rem.Message, today)
			if ok {
				items = append(items, item)
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date < items[j].Date
	})
	return items
}

func buildItem(app types.Application, kind, itemType, date, detail string, today time.Time) (UpcomingItem, bool) {
	t, err := dates.ParseLocal(date)
	if err != nil {
		return UpcomingItem{}, false
	}

	state := StateUpcoming
	switch {
	case dates.SameDay(t, today):
		state = StateDueToday
	case t.Before(today):
		state = StateOverdue
	}

	return UpcomingItem{
		ApplicationID: app.ID,
		Company:       app.Company,
		Role:          app.Role,
		Kind:          kind,
		Type:          itemType,
		Date:          t.Format(dates.Layout),
		Detail:        detail,
		State:         state,
	}, true
}
