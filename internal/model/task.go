package model

// Task statuses as they appear on the wire.
const (
	StatusToDo       = "TO_DO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
	StatusCanceled   = "CANCELED"
)

// Task priorities as they appear on the wire.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Task is a unit of work in a project. Dates are ISO-8601 strings from the
// API; date-only comparisons use the first 10 characters.
type Task struct {
	ID              int64     `json:"id"`
	TaskID          int64     `json:"taskId"`
	ProjectID       int64     `json:"projectId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	AssignedUserIDs Int64List `json:"assignedUserIds"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// AssignedTo reports whether the task is assigned to the given user.
func (t Task) AssignedTo(userID int64) bool {
	for _, id := range t.AssignedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type TaskCreateRequest struct {
	ProjectID       int64   `json:"projectId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	AssignedUserIDs []int64 `json:"assignedUserIds"`
}

type TaskUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type TaskAssignRequest struct {
	UserID int64 `json:"userId"`
}

type TaskStatusUpdateRequest struct {
	Status string `json:"status"`
}
