package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/api"
	"taskmaster/internal/model"
	"taskmaster/internal/stub"
)

func newTestClient(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(stub.NewServer(stub.NewStore(), []byte("test-secret")).Router())
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second)
}

func signUpAndIn(t *testing.T, c *api.Client, username, email string) model.User {
	t.Helper()
	ctx := context.Background()
	u, err := c.SignUpWithUsername(ctx, username, email, "secret123")
	require.NoError(t, err)

	token, err := c.SignIn(ctx, email, "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return u
}

func TestSignUpAndSignIn(t *testing.T) {
	c := newTestClient(t)
	u := signUpAndIn(t, c, "Ana Lopez Garcia", "ana@example.com")

	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "Lopez Garcia", u.LastName)
	assert.Equal(t, []string{model.RoleLeader}, u.Roles)
	assert.NotEmpty(t, c.Token())
}

func TestSignInWrongPassword(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	_, err := c.SignUpWithUsername(ctx, "Ana", "ana@example.com", "secret123")
	require.NoError(t, err)

	_, err = c.SignIn(ctx, "ana@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized), "got %v", err)
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	c := newTestClient(t)
	_, err := c.Projects(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized), "got %v", err)
}

func TestProjectLifecycle(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	leader := signUpAndIn(t, c, "Ana Lopez", "ana@example.com")

	p, err := c.CreateProject(ctx, model.ProjectCreateRequest{
		Name:        "Website",
		Description: "Relaunch",
		Budget:      1000,
		EndDate:     "2026-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, leader.ID, p.LeaderID)
	assert.NotEmpty(t, p.Key)

	got, err := c.Project(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website", got.Name)

	updated, err := c.UpdateProject(ctx, p.ID, model.ProjectUpdateRequest{
		Name: "Website v2", Description: p.Description, Budget: 2000,
		Status: "ACTIVE", EndDate: p.EndDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Website v2", updated.Name)
	assert.Equal(t, 2000.0, updated.Budget)

	byLeader, err := c.ProjectsByLeader(ctx, leader.ID)
	require.NoError(t, err)
	assert.Len(t, byLeader, 1)

	require.NoError(t, c.DeleteProject(ctx, p.ID))
	_, err = c.Project(ctx, p.ID)
	assert.True(t, api.IsStatus(err, http.StatusNotFound), "got %v", err)
}

func TestJoinProjectByKey(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	signUpAndIn(t, c, "Ana Lopez", "ana@example.com")

	p, err := c.CreateProject(ctx, model.ProjectCreateRequest{Name: "Website"})
	require.NoError(t, err)

	// Second session on the same stub.
	member, err := c.SignUp(ctx, model.SignUpRequest{
		Name: "Beto", LastName: "Perez", Email: "beto@example.com",
		Password: "secret123", Roles: []string{model.RoleMember},
	})
	require.NoError(t, err)
	_, err = c.SignIn(ctx, "beto@example.com", "secret123")
	require.NoError(t, err)

	joined, err := c.JoinProjectByKey(ctx, p.Key)
	require.NoError(t, err)
	assert.Equal(t, p.ID, joined.ID)

	users, err := c.Users(ctx)
	require.NoError(t, err)
	members := model.MembersOf(users, p.ID)
	require.Len(t, members, 1)
	assert.Equal(t, member.ID, members[0].ID)

	ns, err := c.MyNotifications(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ns)
	assert.Equal(t, "Nuevo proyecto", ns[0].Title)

	require.NoError(t, c.RemoveMember(ctx, p.ID, member.ID))
	users, err = c.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, model.MembersOf(users, p.ID))
}

func TestTaskLifecycle(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	leader := signUpAndIn(t, c, "Ana Lopez", "ana@example.com")

	p, err := c.CreateProject(ctx, model.ProjectCreateRequest{Name: "Website"})
	require.NoError(t, err)

	task, err := c.CreateTask(ctx, model.TaskCreateRequest{
		ProjectID:   p.ID,
		Title:       "Design landing page",
		Description: "Hero plus pricing",
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-20",
		Priority:    model.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusToDo, task.Status, "status defaults to TO_DO")

	task, err = c.AssignTask(ctx, task.TaskID, leader.ID)
	require.NoError(t, err)
	assert.True(t, task.AssignedTo(leader.ID))

	task, err = c.UpdateTaskStatus(ctx, task.TaskID, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, task.Status)

	byProject, err := c.TasksByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	byStatus, err := c.TasksByProjectAndStatus(ctx, p.ID, model.StatusInProgress)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	byPriority, err := c.TasksByProjectAndPriority(ctx, p.ID, model.PriorityHigh)
	require.NoError(t, err)
	assert.Len(t, byPriority, 1)

	byUser, err := c.TasksByUser(ctx, leader.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	task, err = c.UnassignTask(ctx, task.TaskID, leader.ID)
	require.NoError(t, err)
	assert.False(t, task.AssignedTo(leader.ID))

	require.NoError(t, c.DeleteTask(ctx, task.TaskID))
	_, err = c.Task(ctx, task.TaskID)
	assert.True(t, api.IsStatus(err, http.StatusNotFound), "got %v", err)
}

func TestUpdateUserProfile(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	u := signUpAndIn(t, c, "Ana Lopez", "ana@example.com")

	salary := 42.5
	updated, err := c.UpdateUser(ctx, model.UserUpdateRequest{
		Name: "Ana Maria", LastName: "Lopez", Salary: &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, updated.ID)
	assert.Equal(t, "Ana Maria Lopez", updated.FullName())
	require.NotNil(t, updated.Salary)
	assert.Equal(t, salary, *updated.Salary)

	byEmail, err := c.UserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", byEmail.Name)
}

func TestSplitUsername(t *testing.T) {
	cases := []struct {
		in, name, last string
	}{
		{"Ana Lopez", "Ana", "Lopez"},
		{"Ana Lopez Garcia", "Ana", "Lopez Garcia"},
		{"Ana", "Ana", "Nuevo"},
		{"  ", "Usuario", "Nuevo"},
	}
	for _, tc := range cases {
		name, last := api.SplitUsername(tc.in)
		assert.Equal(t, tc.name, name, "input %q", tc.in)
		assert.Equal(t, tc.last, last, "input %q", tc.in)
	}
}
