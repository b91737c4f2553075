package model

import "time"

// ProjectStats is the aggregate panel for one project. Derived, never
// persisted.
type ProjectStats struct {
	TotalTasks   int     `json:"totalTasks"`
	OverdueTasks int     `json:"overdueTasks"`
	BestMember   string  `json:"bestMember"`
	WorstMember  string  `json:"worstMember"`
	TodoTasks    int     `json:"todoTasks"`
	InProgress   int     `json:"inProgressTasks"`
	DoneTasks    int     `json:"doneTasks"`
	HighPriority int     `json:"highPriorityTasks"`
	MedPriority  int     `json:"mediumPriorityTasks"`
	LowPriority  int     `json:"lowPriorityTasks"`
	Budget       float64 `json:"budget"`
	UsedBudget   float64 `json:"usedBudget"`
}

// UserTaskStats is the per-member overview panel.
type UserTaskStats struct {
	TotalTasks   int `json:"totalTasks"`
	TodoTasks    int `json:"todoTasks"`
	InProgress   int `json:"inProgressTasks"`
	DoneTasks    int `json:"doneTasks"`
	HighPriority int `json:"highPriorityTasks"`
	MedPriority  int `json:"mediumPriorityTasks"`
	LowPriority  int `json:"lowPriorityTasks"`
}

// CalendarDay is one slot of the 42-day month grid.
type CalendarDay struct {
	Day            int       `json:"day"`
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	Tasks          []Task    `json:"tasks"`
}
