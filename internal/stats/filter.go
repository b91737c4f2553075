// Package stats holds the pure task aggregation and filtering engine: list
// filtering, project statistics, and calendar bucketing. Every function here
// is a synchronous transform over in-memory slices; nothing does I/O and
// nothing reads the clock implicitly.
package stats

import (
	"strings"
	"time"

	"taskmaster/internal/model"
)

// Priority and status filter dimensions accept a small set of label synonyms
// because tasks may carry raw enum spellings or localized labels depending on
// which backend wrote them.
var priorityLabels = map[string][]string{
	model.PriorityHigh:   {"alta", "high", "high_priority", "highpriority"},
	model.PriorityMedium: {"media", "medium", "medium_priority", "mediumpriority"},
	model.PriorityLow:    {"baja", "low", "low_priority", "lowpriority"},
}

var statusLabels = map[string][]string{
	model.StatusToDo:       {"Por hacer", "To Do", "TO_DO"},
	model.StatusInProgress: {"En progreso", "IN_PROGRESS", "In Progress"},
	model.StatusDone:       {"Completada", "Done", "DONE"},
}

// Filter is one predicate set for Apply. Zero-value fields mean "match
// everything" on that dimension.
type Filter struct {
	Query    string
	Priority string // model.PriorityHigh/Medium/Low, or empty
	Status   string // model.StatusToDo/InProgress/Done, or empty
	MemberID *int64
	DateFrom string // ISO date, bounds the task end date (inclusive)
	DateTo   string
}

// Apply returns the tasks matching all active dimensions, in input order.
func (f Filter) Apply(tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) matches(t model.Task) bool {
	return f.matchesQuery(t) &&
		f.matchesPriority(t) &&
		f.matchesStatus(t) &&
		f.matchesMember(t) &&
		f.matchesDateRange(t)
}

func (f Filter) matchesQuery(t model.Task) bool {
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

func (f Filter) matchesPriority(t model.Task) bool {
	if f.Priority == "" {
		return true
	}
	p := strings.ToLower(strings.TrimSpace(t.Priority))
	for _, label := range priorityLabels[f.Priority] {
		if p == label {
			return true
		}
	}
	return false
}

func (f Filter) matchesStatus(t model.Task) bool {
	if f.Status == "" {
		return true
	}
	st := strings.ToUpper(t.Status)
	for _, label := range statusLabels[f.Status] {
		if st == strings.ToUpper(label) {
			return true
		}
	}
	return false
}

func (f Filter) matchesMember(t model.Task) bool {
	if f.MemberID == nil {
		return true
	}
	return t.AssignedTo(*f.MemberID)
}

// matchesDateRange bounds the task end date (date portion only) by
// [DateFrom, DateTo] inclusive. Unparseable dates on either side fail open:
// a filter must never hide a task because of a malformed date.
func (f Filter) matchesDateRange(t model.Task) bool {
	end := t.EndDate
	if end == "" {
		return true
	}
	return f.boundOK(end, f.DateFrom, false) && f.boundOK(end, f.DateTo, true)
}

func (f Filter) boundOK(taskEnd, bound string, upper bool) bool {
	if strings.TrimSpace(bound) == "" {
		return true
	}
	endDay, err := parseDay(taskEnd)
	if err != nil {
		return true
	}
	boundDay, err := parseDay(bound)
	if err != nil {
		return true
	}
	if upper {
		return !endDay.After(boundDay)
	}
	return !endDay.Before(boundDay)
}

// parseDay parses the date portion (first 10 characters) of an ISO string.
func parseDay(s string) (time.Time, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	return time.Parse("2006-01-02", s)
}
