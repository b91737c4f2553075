package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"taskmaster/internal/model"
)

func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	var ps []model.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &ps)
	return ps, err
}

func (c *Client) CreateProject(ctx context.Context, req model.ProjectCreateRequest) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPost, "/projects", req, &p)
	return p, err
}

func (c *Client) Project(ctx context.Context, projectID int64) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", projectID), nil, &p)
	return p, err
}

func (c *Client) UpdateProject(ctx context.Context, projectID int64, req model.ProjectUpdateRequest) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", projectID), req, &p)
	return p, err
}

func (c *Client) DeleteProject(ctx context.Context, projectID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", projectID), nil, nil)
}

// SetProjectCode changes the human-readable join key of a project.
func (c *Client) SetProjectCode(ctx context.Context, projectID int64, code string) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d/code", projectID),
		model.ProjectCodeRequest{Code: code}, &p)
	return p, err
}

func (c *Client) ProjectsByMember(ctx context.Context, memberID int64) ([]model.Project, error) {
	var ps []model.Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/member/%d", memberID), nil, &ps)
	return ps, err
}

func (c *Client) ProjectsByLeader(ctx context.Context, leaderID int64) ([]model.Project, error) {
	var ps []model.Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/leader/%d", leaderID), nil, &ps)
	return ps, err
}

// JoinProjectByKey adds the authenticated user to the project with the
// given join key.
func (c *Client) JoinProjectByKey(ctx context.Context, key string) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodGet, "/projects/join/"+url.PathEscape(key), nil, &p)
	return p, err
}

func (c *Client) RemoveMember(ctx context.Context, projectID, memberID int64) error {
	return c.do(ctx, http.MethodDelete,
		fmt.Sprintf("/projects/%d/members/%d", projectID, memberID), nil, nil)
}
