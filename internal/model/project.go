package model

type Project struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"projectId"`
	Key         string  `json:"key"`
	LeaderID    int64   `json:"leaderId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
}

type ProjectCreateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Budget      float64 `json:"budget"`
	EndDate     string  `json:"endDate"`
}

type ProjectUpdateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	EndDate     string  `json:"endDate"`
}

type ProjectCodeRequest struct {
	Code string `json:"code"`
}
