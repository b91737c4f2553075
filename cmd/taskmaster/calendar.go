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

func (a *app) cmdCalendar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ExitOnError)
	month := fs.String("month", "", "month to show (YYYY-MM, default current)")
	day := fs.String("day", "", "list the tasks active on this date (YYYY-MM-DD)")
	project := fs.Int64("project", 0, "only tasks of this project")
	fs.Parse(args)

	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	var (
		tasks []model.Task
		err   error
	)
	if *project != 0 {
		tasks, err = a.client.TasksByProject(ctx, *project)
	} else {
		tasks, err = a.client.Tasks(ctx)
	}
	if err != nil {
		return err
	}

	if *day != "" {
		if _, err := time.Parse("2006-01-02", *day); err != nil {
			return fmt.Errorf("invalid -day %q, want YYYY-MM-DD", *day)
		}
		fmt.Printf("Tareas del %s:\n\n", *day)
		render.Tasks(os.Stdout, stats.TasksOn(*day, tasks))
		return nil
	}

	target := time.Now()
	if *month != "" {
		target, err = time.Parse("2006-01", *month)
		if err != nil {
			return fmt.Errorf("invalid -month %q, want YYYY-MM", *month)
		}
	}

	days := stats.MonthGrid(target.Year(), target.Month(), tasks)
	render.Calendar(os.Stdout, target.Year(), target.Month(), days)
	return nil
}
