package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskmaster/internal/model"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type userDir map[int64]model.User

func (d userDir) UserByID(id int64) (model.User, bool) {
	u, ok := d[id]
	return u, ok
}

func TestProjectStatsEmptyInput(t *testing.T) {
	s := ProjectStats(nil, nil, testNow)

	assert.Zero(t, s.TotalTasks)
	assert.Zero(t, s.OverdueTasks)
	assert.Zero(t, s.TodoTasks+s.InProgress+s.DoneTasks)
	assert.Equal(t, "Ninguno", s.BestMember)
	assert.Equal(t, "Ninguno", s.WorstMember)
	assert.Equal(t, 15000.0, s.Budget)
	assert.Equal(t, 4500.0, s.UsedBudget)
}

func TestProjectStatsCounts(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusToDo; t.Priority = model.PriorityHigh }),
		task(2, func(t *model.Task) { t.Status = model.StatusToDo; t.Priority = model.PriorityLow }),
		task(3, func(t *model.Task) { t.Status = model.StatusInProgress; t.Priority = model.PriorityMedium }),
		task(4, func(t *model.Task) { t.Status = model.StatusDone; t.Priority = model.PriorityHigh }),
		task(5, func(t *model.Task) { t.Status = model.StatusCanceled; t.Priority = model.PriorityLow }),
	}

	s := ProjectStats(tasks, nil, testNow)

	assert.Equal(t, 5, s.TotalTasks)
	assert.Equal(t, 2, s.TodoTasks)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 1, s.DoneTasks)
	assert.Equal(t, 2, s.HighPriority)
	assert.Equal(t, 1, s.MedPriority)
	assert.Equal(t, 2, s.LowPriority)

	canceled := 0
	for _, tk := range tasks {
		if tk.Status == model.StatusCanceled {
			canceled++
		}
	}
	assert.Equal(t, s.TotalTasks, s.TodoTasks+s.InProgress+s.DoneTasks+canceled)
}

func TestOverdue(t *testing.T) {
	cases := []struct {
		name    string
		end     string
		status  string
		overdue bool
	}{
		{"past and open", "2024-06-01", model.StatusToDo, true},
		{"past but done", "2024-06-01", model.StatusDone, false},
		{"future", "2024-07-01", model.StatusToDo, false},
		{"past with offset timestamp", "2024-06-01T08:00:00+02:00", model.StatusInProgress, true},
		{"past with millis offset", "2024-06-01T08:00:00.000Z", model.StatusToDo, true},
		{"past without offset", "2024-06-01T08:00:00", model.StatusToDo, true},
		{"past millis without offset", "2024-06-01T08:00:00.000", model.StatusInProgress, true},
		{"past local millis", "2024-06-01 08:00:00.000", model.StatusToDo, true},
		{"unparseable fails closed", "junk", model.StatusToDo, false},
		{"empty fails closed", "", model.StatusInProgress, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := task(1, func(t *model.Task) { t.EndDate = tc.end; t.Status = tc.status })
			s := ProjectStats([]model.Task{tk}, nil, testNow)
			want := 0
			if tc.overdue {
				want = 1
			}
			assert.Equal(t, want, s.OverdueTasks)
		})
	}
}

func TestBestMemberResolvesName(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{5} }),
		task(2, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{5} }),
		task(3, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{7} }),
	}
	users := userDir{5: {ID: 5, Name: "Ana", LastName: "Lopez"}}

	s := ProjectStats(tasks, users, testNow)
	assert.Equal(t, "Ana Lopez", s.BestMember)
}

func TestBestMemberLookupMissFallsBack(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{9} }),
	}
	s := ProjectStats(tasks, userDir{}, testNow)
	assert.Equal(t, "Usuario 9", s.BestMember)
}

func TestWorstMemberNeverResolvesName(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusToDo; t.AssignedUserIDs = model.Int64List{5} }),
		task(2, func(t *model.Task) { t.Status = model.StatusInProgress; t.AssignedUserIDs = model.Int64List{5} }),
		task(3, func(t *model.Task) { t.Status = model.StatusToDo; t.AssignedUserIDs = model.Int64List{7} }),
	}
	users := userDir{5: {ID: 5, Name: "Ana", LastName: "Lopez"}}

	s := ProjectStats(tasks, users, testNow)
	assert.Equal(t, "Usuario 5", s.WorstMember)
}

func TestRankingTieBreaksToFirstSeen(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{7} }),
		task(2, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{5} }),
	}
	for i := 0; i < 100; i++ {
		s := ProjectStats(tasks, nil, testNow)
		assert.Equal(t, "Usuario 7", s.BestMember)
	}
}

func TestRankingCountsTaskOncePerAssignee(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{5, 7} }),
		task(2, func(t *model.Task) { t.Status = model.StatusDone; t.AssignedUserIDs = model.Int64List{7} }),
	}
	s := ProjectStats(tasks, nil, testNow)
	assert.Equal(t, "Usuario 7", s.BestMember)
}

func TestUserTaskStats(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.Status = model.StatusToDo; t.Priority = model.PriorityHigh }),
		task(2, func(t *model.Task) { t.Status = model.StatusDone; t.Priority = model.PriorityLow }),
		task(3, func(t *model.Task) { t.Status = model.StatusDone; t.Priority = model.PriorityMedium }),
	}
	s := UserTaskStats(tasks)

	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 1, s.TodoTasks)
	assert.Equal(t, 0, s.InProgress)
	assert.Equal(t, 2, s.DoneTasks)
	assert.Equal(t, 1, s.HighPriority)
	assert.Equal(t, 1, s.MedPriority)
	assert.Equal(t, 1, s.LowPriority)
}
