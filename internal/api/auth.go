package api

import (
	"context"
	"net/http"
	"strings"

	"taskmaster/internal/model"
)

// SignIn exchanges credentials for a session token and installs it on the
// client.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp model.LoginResponse
	err := c.do(ctx, http.MethodPost, "/authentication/sign-in",
		model.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

func (c *Client) SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodPost, "/authentication/sign-up", req, &u)
	return u, err
}

// SignUpWithUsername registers a leader account from a single display-name
// field: the first word becomes the name, the rest the last name.
func (c *Client) SignUpWithUsername(ctx context.Context, username, email, password string) (model.User, error) {
	name, lastName := SplitUsername(username)
	return c.SignUp(ctx, model.SignUpRequest{
		Name:     name,
		LastName: lastName,
		Email:    email,
		Password: password,
		Roles:    []string{model.RoleLeader},
	})
}

func SplitUsername(username string) (name, lastName string) {
	parts := strings.Fields(username)
	switch len(parts) {
	case 0:
		return "Usuario", "Nuevo"
	case 1:
		return parts[0], "Nuevo"
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
