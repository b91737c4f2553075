package stats

import (
	"fmt"
	"time"

	"taskmaster/internal/model"
)

// Project budget figures are not served by the API yet; the stats endpoint
// of the original backend is still pending. Until then the panel shows
// fixed placeholders.
const (
	placeholderBudget     = 15000.0
	placeholderUsedBudget = 4500.0
)

// noMember is the label shown when no member qualifies for a ranking.
const noMember = "Ninguno"

// UserLookup resolves a user id to its record. A nil lookup or a miss
// degrades to the "Usuario {id}" label, it never fails the computation.
type UserLookup interface {
	UserByID(id int64) (model.User, bool)
}

// UserLookupFunc adapts a function to UserLookup.
type UserLookupFunc func(id int64) (model.User, bool)

func (f UserLookupFunc) UserByID(id int64) (model.User, bool) { return f(id) }

// End-date parse formats tried in priority order when deciding overdue.
var endDateFormats = []string{
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02",
}

// ProjectStats computes the aggregate panel for one project's tasks. The
// current instant is an explicit argument so the result is deterministic.
func ProjectStats(tasks []model.Task, users UserLookup, now time.Time) model.ProjectStats {
	s := model.ProjectStats{
		TotalTasks: len(tasks),
		Budget:     placeholderBudget,
		UsedBudget: placeholderUsedBudget,
	}

	for _, t := range tasks {
		if isOverdue(t, now) {
			s.OverdueTasks++
		}
		switch t.Status {
		case model.StatusToDo:
			s.TodoTasks++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusDone:
			s.DoneTasks++
		}
		switch t.Priority {
		case model.PriorityHigh:
			s.HighPriority++
		case model.PriorityMedium:
			s.MedPriority++
		case model.PriorityLow:
			s.LowPriority++
		}
	}

	s.BestMember = bestMember(tasks, users)
	s.WorstMember = worstMember(tasks)
	return s
}

// isOverdue reports whether the task's end date is strictly before now and
// the task is not done. Unparseable end dates are never overdue: by contrast
// with filtering, a malformed date must not inflate the overdue count.
func isOverdue(t model.Task, now time.Time) bool {
	if t.Status == model.StatusDone {
		return false
	}
	end, ok := parseEndDate(t.EndDate)
	return ok && end.Before(now)
}

func parseEndDate(s string) (time.Time, bool) {
	for _, layout := range endDateFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// bestMember ranks assignees by completed-task count and resolves the winner
// to a display name. Ties break to the assignee seen first in input order.
func bestMember(tasks []model.Task, users UserLookup) string {
	winner, ok := topAssignee(tasks, func(status string) bool {
		return status == model.StatusDone
	})
	if !ok {
		return noMember
	}
	if users != nil {
		if u, found := users.UserByID(winner); found {
			return u.FullName()
		}
	}
	return fmt.Sprintf("Usuario %d", winner)
}

// worstMember ranks assignees by open-task count (to-do plus in-progress).
// Unlike bestMember the winner is never resolved to a display name; the
// panel has always shown the raw id label here and product wants it kept
// that way until the stats screen is revisited.
func worstMember(tasks []model.Task) string {
	winner, ok := topAssignee(tasks, func(status string) bool {
		return status == model.StatusToDo || status == model.StatusInProgress
	})
	if !ok {
		return noMember
	}
	return fmt.Sprintf("Usuario %d", winner)
}

// topAssignee counts, per assignee, tasks whose status passes the predicate
// (a task counts once per assignee) and returns the assignee with the
// highest count. First-seen order decides ties, so the result does not
// depend on map iteration.
func topAssignee(tasks []model.Task, match func(status string) bool) (int64, bool) {
	counts := make(map[int64]int)
	var order []int64

	for _, t := range tasks {
		if !match(t.Status) {
			continue
		}
		for _, id := range t.AssignedUserIDs {
			if _, seen := counts[id]; !seen {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	if len(order) == 0 {
		return 0, false
	}
	best := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best, true
}

// UserTaskStats computes the per-member overview over that member's tasks.
func UserTaskStats(tasks []model.Task) model.UserTaskStats {
	s := model.UserTaskStats{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusToDo:
			s.TodoTasks++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusDone:
			s.DoneTasks++
		}
		switch t.Priority {
		case model.PriorityHigh:
			s.HighPriority++
		case model.PriorityMedium:
			s.MedPriority++
		case model.PriorityLow:
			s.LowPriority++
		}
	}
	return s
}
