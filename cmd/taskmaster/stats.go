package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"taskmaster/internal/model"
	"taskmaster/internal/render"
	"taskmaster/internal/stats"
)

func (a *app) cmdStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	project := fs.Int64("project", 0, "project statistics for this project id")
	user := fs.Int64("user", 0, "member statistics for this user id")
	fs.Parse(args)

	if (*project == 0) == (*user == 0) {
		return fmt.Errorf("exactly one of -project or -user is required")
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	if *user != 0 {
		return a.userStats(ctx, *user)
	}
	return a.projectStats(ctx, *project)
}

func (a *app) projectStats(ctx context.Context, projectID int64) error {
	p, err := a.client.Project(ctx, projectID)
	if err != nil {
		return err
	}
	tasks, err := a.client.TasksByProject(ctx, projectID)
	if err != nil {
		return err
	}

	// Member names resolve through one users fetch; a miss just leaves the
	// id label in the panel.
	lookup := stats.UserLookupFunc(func(id int64) (model.User, bool) {
		return model.User{}, false
	})
	if users, err := a.client.Users(ctx); err == nil {
		byID := make(map[int64]model.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}
		lookup = stats.UserLookupFunc(func(id int64) (model.User, bool) {
			u, ok := byID[id]
			return u, ok
		})
	}

	s := stats.ProjectStats(tasks, lookup, time.Now())
	render.ProjectStats(os.Stdout, p.Name, s)
	return nil
}

func (a *app) userStats(ctx context.Context, userID int64) error {
	tasks, err := a.client.TasksByUser(ctx, userID)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("Usuario %d", userID)
	if u, err := a.client.UserByID(ctx, userID); err == nil {
		label = u.FullName()
	}

	render.UserStats(os.Stdout, label, stats.UserTaskStats(tasks))
	return nil
}

func (a *app) cmdNotifications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	fs.Parse(args)

	if err := a.ensureSession(ctx); err != nil {
		return err
	}
	ns, err := a.client.MyNotifications(ctx)
	if err != nil {
		return err
	}
	render.Notifications(os.Stdout, ns)
	return nil
}
