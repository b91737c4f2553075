package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"taskmaster/internal/model"
)

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *Client) UserByID(ctx context.Context, userID int64) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, &u)
	return u, err
}

func (c *Client) UserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodGet, "/users/email/"+url.PathEscape(email), nil, &u)
	return u, err
}

// UpdateUser updates the authenticated user's profile.
func (c *Client) UpdateUser(ctx context.Context, req model.UserUpdateRequest) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodPut, "/users", req, &u)
	return u, err
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil, nil)
}

// MyNotifications lists notifications addressed to the authenticated user.
func (c *Client) MyNotifications(ctx context.Context) ([]model.Notification, error) {
	var ns []model.Notification
	err := c.do(ctx, http.MethodGet, "/notifications/me", nil, &ns)
	return ns, err
}
