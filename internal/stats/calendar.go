package stats

import (
	"time"

	"taskmaster/internal/model"
)

// gridDays is six full weeks, enough to cover any month layout.
const gridDays = 42

// MonthGrid produces the 42 consecutive day buckets for the month view.
// The grid starts on the most recent Sunday on or before the 1st of the
// month and each bucket carries the tasks whose date-only [start, end]
// range contains the bucket's date. Tasks with unparseable dates appear in
// no bucket.
func MonthGrid(year int, month time.Month, tasks []model.Task) []model.CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]model.CalendarDay, 0, gridDays)
	for i := 0; i < gridDays; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, model.CalendarDay{
			Day:            date.Day(),
			Date:           date,
			IsCurrentMonth: date.Month() == month && date.Year() == year,
			Tasks:          tasksContaining(date, tasks),
		})
	}
	return days
}

func tasksContaining(date time.Time, tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		from, err := parseDay(t.StartDate)
		if err != nil {
			continue
		}
		to, err := parseDay(t.EndDate)
		if err != nil {
			continue
		}
		if !date.Before(from) && !date.After(to) {
			out = append(out, t)
		}
	}
	return out
}

// TasksOn is the selected-day view: the tasks whose date range contains the
// given ISO date. Comparison is lexicographic on the zero-padded date
// portion, which orders the same as the calendar dates the grid parses, so
// both views agree on edge dates.
func TasksOn(date string, tasks []model.Task) []model.Task {
	if len(date) > 10 {
		date = date[:10]
	}
	var out []model.Task
	for _, t := range tasks {
		from := datePart(t.StartDate)
		to := datePart(t.EndDate)
		if date >= from && date <= to {
			out = append(out, t)
		}
	}
	return out
}

func datePart(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
