package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/model"
)

func task(id int64, mut ...func(*model.Task)) model.Task {
	t := model.Task{
		ID:          id,
		TaskID:      id,
		ProjectID:   1,
		Title:       "Task",
		Description: "",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-10",
		Status:      model.StatusToDo,
		Priority:    model.PriorityMedium,
	}
	for _, m := range mut {
		m(&t)
	}
	return t
}

func TestApplyQueryMatchesTitleOrDescription(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Title = "Fix login screen" }),
		task(2, func(t *model.Task) { t.Description = "update LOGIN token flow" }),
		task(3, func(t *model.Task) { t.Title = "Unrelated" }),
	}

	got := Filter{Query: "login"}.Apply(tasks)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestApplyEmptyFilterIsIdentity(t *testing.T) {
	tasks := []model.Task{task(1), task(2), task(3)}
	got := Filter{}.Apply(tasks)
	assert.Equal(t, tasks, got)
}

func TestApplyPrioritySynonyms(t *testing.T) {
	cases := []struct {
		raw   string
		match bool
	}{
		{"HIGH", true},
		{"high", true},
		{"Alta", true},
		{" high_priority ", true},
		{"highpriority", true},
		{"MEDIUM", false},
		{"baja", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			tasks := []model.Task{task(1, func(t *model.Task) { t.Priority = tc.raw })}
			got := Filter{Priority: model.PriorityHigh}.Apply(tasks)
			assert.Equal(t, tc.match, len(got) == 1, "priority %q", tc.raw)
		})
	}
}

func TestApplyStatusSynonyms(t *testing.T) {
	cases := []struct {
		raw    string
		status string
		match  bool
	}{
		{"TO_DO", model.StatusToDo, true},
		{"Por hacer", model.StatusToDo, true},
		{"to do", model.StatusToDo, true}, // "To Do" uppercased
		{"En progreso", model.StatusInProgress, true},
		{"IN_PROGRESS", model.StatusInProgress, true},
		{"Completada", model.StatusDone, true},
		{"DONE", model.StatusDone, true},
		{"CANCELED", model.StatusDone, false},
		{"DONE", model.StatusToDo, false},
	}
	for _, tc := range cases {
		tasks := []model.Task{task(1, func(t *model.Task) { t.Status = tc.raw })}
		got := Filter{Status: tc.status}.Apply(tasks)
		assert.Equal(t, tc.match, len(got) == 1, "status %q vs %s", tc.raw, tc.status)
	}
}

func TestApplyMember(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.AssignedUserIDs = model.Int64List{5, 7} }),
		task(2, func(t *model.Task) { t.AssignedUserIDs = model.Int64List{9} }),
		task(3),
	}
	member := int64(7)
	got := Filter{MemberID: &member}.Apply(tasks)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplyDateRange(t *testing.T) {
	tasks := []model.Task{task(1, func(t *model.Task) { t.EndDate = "2024-03-10" })}

	got := Filter{DateFrom: "2024-03-01", DateTo: "2024-03-15"}.Apply(tasks)
	assert.Len(t, got, 1, "inside range")

	got = Filter{DateFrom: "2024-03-11"}.Apply(tasks)
	assert.Empty(t, got, "after lower bound")

	got = Filter{DateTo: "2024-03-09"}.Apply(tasks)
	assert.Empty(t, got, "before upper bound")

	got = Filter{DateFrom: "2024-03-10", DateTo: "2024-03-10"}.Apply(tasks)
	assert.Len(t, got, 1, "bounds are inclusive")
}

func TestApplyDateRangeTruncatesTimestamps(t *testing.T) {
	tasks := []model.Task{task(1, func(t *model.Task) { t.EndDate = "2024-03-10T23:59:00Z" })}
	got := Filter{DateFrom: "2024-03-10", DateTo: "2024-03-10"}.Apply(tasks)
	assert.Len(t, got, 1)
}

func TestApplyDateRangeFailsOpen(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.EndDate = "not-a-date" }),
		task(2, func(t *model.Task) { t.EndDate = "" }),
	}
	got := Filter{DateFrom: "2024-03-01", DateTo: "2024-03-15"}.Apply(tasks)
	assert.Len(t, got, 2, "unparseable or blank end dates must be included")

	got = Filter{DateFrom: "garbage"}.Apply(tasks)
	assert.Len(t, got, 2, "unparseable bound must not exclude")
}

func TestApplyIsSubsetAndOrderPreserving(t *testing.T) {
	tasks := []model.Task{
		task(3, func(t *model.Task) { t.Priority = "HIGH" }),
		task(1, func(t *model.Task) { t.Priority = "LOW" }),
		task(2, func(t *model.Task) { t.Priority = "alta" }),
	}
	got := Filter{Priority: model.PriorityHigh}.Apply(tasks)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestApplyAbsentDimensionEqualsNoFilter(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Title = "alpha"; t.Status = "DONE" }),
		task(2, func(t *model.Task) { t.Title = "beta" }),
	}
	withAbsent := Filter{Query: "a", Priority: ""}.Apply(tasks)
	without := Filter{Query: "a"}.Apply(tasks)
	assert.Equal(t, without, withAbsent)
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, Filter{Query: "x"}.Apply(nil))
}
