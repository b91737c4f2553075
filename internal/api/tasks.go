package api

import (
	"context"
	"fmt"
	"net/http"

	"taskmaster/internal/model"
)

func (c *Client) Tasks(ctx context.Context) ([]model.Task, error) {
	var ts []model.Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, &ts)
	return ts, err
}

func (c *Client) CreateTask(ctx context.Context, req model.TaskCreateRequest) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPost, "/tasks", req, &t)
	return t, err
}

func (c *Client) Task(ctx context.Context, taskID int64) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), nil, &t)
	return t, err
}

func (c *Client) UpdateTask(ctx context.Context, taskID int64, req model.TaskUpdateRequest) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", taskID), req, &t)
	return t, err
}

func (c *Client) DeleteTask(ctx context.Context, taskID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", taskID), nil, nil)
}

func (c *Client) AssignTask(ctx context.Context, taskID, userID int64) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/assign", taskID),
		model.TaskAssignRequest{UserID: userID}, &t)
	return t, err
}

func (c *Client) UnassignTask(ctx context.Context, taskID, userID int64) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/unassign", taskID),
		model.TaskAssignRequest{UserID: userID}, &t)
	return t, err
}

func (c *Client) UpdateTaskStatus(ctx context.Context, taskID int64, status string) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/status", taskID),
		model.TaskStatusUpdateRequest{Status: status}, &t)
	return t, err
}

func (c *Client) TasksByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var ts []model.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/user/%d", userID), nil, &ts)
	return ts, err
}

func (c *Client) TasksByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	var ts []model.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/project/%d", projectID), nil, &ts)
	return ts, err
}

func (c *Client) TasksByProjectAndUser(ctx context.Context, projectID, userID int64) ([]model.Task, error) {
	var ts []model.Task
	err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/tasks/project/%d/user/%d", projectID, userID), nil, &ts)
	return ts, err
}

func (c *Client) TasksByProjectAndStatus(ctx context.Context, projectID int64, status string) ([]model.Task, error) {
	var ts []model.Task
	err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/tasks/project/%d/status/%s", projectID, status), nil, &ts)
	return ts, err
}

func (c *Client) TasksByProjectAndPriority(ctx context.Context, projectID int64, priority string) ([]model.Task, error) {
	var ts []model.Task
	err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/tasks/project/%d/priority/%s", projectID, priority), nil, &ts)
	return ts, err
}
