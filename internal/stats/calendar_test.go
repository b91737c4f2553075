package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/model"
)

func TestMonthGridShape(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		days := MonthGrid(2024, month, nil)
		require.Len(t, days, 42, "month %s", month)

		assert.Equal(t, time.Sunday, days[0].Date.Weekday(), "month %s", month)
		assert.False(t, days[0].Date.After(time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC)))

		for i := 1; i < len(days); i++ {
			assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), days[i].Date,
				"grid for %s must be contiguous", month)
		}
	}
}

func TestMonthGridStartsOnFirstWhenMonthOpensOnSunday(t *testing.T) {
	// 2024-09-01 is a Sunday.
	days := MonthGrid(2024, time.September, nil)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.True(t, days[0].IsCurrentMonth)
}

func TestMonthGridCurrentMonthFlag(t *testing.T) {
	days := MonthGrid(2024, time.March, nil)
	for _, d := range days {
		assert.Equal(t, d.Date.Month() == time.March, d.IsCurrentMonth, "date %s", d.Date)
		assert.Equal(t, d.Date.Day(), d.Day)
	}
}

func TestMonthGridBucketsTasksByRange(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.StartDate = "2024-03-05"; t.EndDate = "2024-03-07" }),
		task(2, func(t *model.Task) { t.StartDate = "2024-02-01"; t.EndDate = "2024-02-02" }),
	}
	days := MonthGrid(2024, time.March, tasks)

	byDate := make(map[string][]model.Task)
	for _, d := range days {
		byDate[d.Date.Format("2006-01-02")] = d.Tasks
	}

	assert.Empty(t, byDate["2024-03-04"])
	require.Len(t, byDate["2024-03-05"], 1, "range start is included")
	require.Len(t, byDate["2024-03-06"], 1)
	require.Len(t, byDate["2024-03-07"], 1, "range end is included")
	assert.Empty(t, byDate["2024-03-08"])
}

func TestMonthGridSkipsUnparseableTaskDates(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.StartDate = "junk"; t.EndDate = "2024-03-07" }),
	}
	for _, d := range MonthGrid(2024, time.March, tasks) {
		assert.Empty(t, d.Tasks)
	}
}

func TestTasksOnAgreesWithGridOnEdgeDates(t *testing.T) {
	tasks := []model.Task{
		task(1, func(t *model.Task) { t.StartDate = "2024-03-05T09:00:00Z"; t.EndDate = "2024-03-07T17:00:00Z" }),
	}

	assert.Empty(t, TasksOn("2024-03-04", tasks))
	assert.Len(t, TasksOn("2024-03-05", tasks), 1)
	assert.Len(t, TasksOn("2024-03-07", tasks), 1)
	assert.Empty(t, TasksOn("2024-03-08", tasks))

	days := MonthGrid(2024, time.March, tasks)
	for _, d := range days {
		want := TasksOn(d.Date.Format("2006-01-02"), tasks)
		assert.Equal(t, len(want), len(d.Tasks), "date %s", d.Date)
	}
}

func TestTasksOnEmptyInput(t *testing.T) {
	assert.Empty(t, TasksOn("2024-03-05", nil))
}
