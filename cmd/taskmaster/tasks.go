package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"taskmaster/internal/model"
	"taskmaster/internal/render"
	"taskmaster/internal/stats"
)

const tasksUsage = `taskmaster tasks SUBCOMMAND [flags]

Subcommands:
  list      tasks with optional filters (-project, -user, -query,
            -priority, -status, -member, -from, -to)
  show      one task (-id)
  create    new task (-project, -title, plus optional fields)
  update    change a task (-id plus the fields to set)
  delete    remove a task (-id)
  assign    assign a user (-id, -user)
  unassign  unassign a user (-id, -user)
  status    set the status (-id, -status)
`

func (a *app) cmdTasks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, tasksUsage)
		return fmt.Errorf("missing subcommand")
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.tasksList(ctx, rest)
	case "show":
		return a.tasksShow(ctx, rest)
	case "create":
		return a.tasksCreate(ctx, rest)
	case "update":
		return a.tasksUpdate(ctx, rest)
	case "delete":
		return a.tasksDelete(ctx, rest)
	case "assign":
		return a.tasksAssign(ctx, rest, true)
	case "unassign":
		return a.tasksAssign(ctx, rest, false)
	case "status":
		return a.tasksStatus(ctx, rest)
	default:
		fmt.Fprint(os.Stderr, tasksUsage)
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

// tasksList fetches the narrowest server-side list available and applies
// the remaining filter dimensions client-side.
func (a *app) tasksList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks list", flag.ExitOnError)
	project := fs.Int64("project", 0, "only tasks of this project")
	user := fs.Int64("user", 0, "only tasks assigned to this user")
	query := fs.String("query", "", "text search over title and description")
	priority := fs.String("priority", "", "LOW, MEDIUM or HIGH")
	status := fs.String("status", "", "TO_DO, IN_PROGRESS or DONE")
	member := fs.Int64("member", 0, "only tasks assigned to this member id")
	from := fs.String("from", "", "earliest end date (YYYY-MM-DD)")
	to := fs.String("to", "", "latest end date (YYYY-MM-DD)")
	fs.Parse(args)

	var (
		tasks []model.Task
		err   error
	)
	switch {
	case *project != 0 && *user != 0:
		tasks, err = a.client.TasksByProjectAndUser(ctx, *project, *user)
	case *project != 0:
		tasks, err = a.client.TasksByProject(ctx, *project)
	case *user != 0:
		tasks, err = a.client.TasksByUser(ctx, *user)
	default:
		tasks, err = a.client.Tasks(ctx)
	}
	if err != nil {
		return err
	}

	filter := stats.Filter{
		Query:    *query,
		Priority: strings.ToUpper(*priority),
		Status:   strings.ToUpper(*status),
		DateFrom: *from,
		DateTo:   *to,
	}
	if *member != 0 {
		filter.MemberID = member
	}

	render.Tasks(os.Stdout, filter.Apply(tasks))
	return nil
}

func (a *app) tasksShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks show", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	t, err := a.client.Task(ctx, *id)
	if err != nil {
		return err
	}
	render.Tasks(os.Stdout, []model.Task{t})
	if t.Description != "" {
		fmt.Printf("\n%s\n", t.Description)
	}
	return nil
}

func (a *app) tasksCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks create", flag.ExitOnError)
	project := fs.Int64("project", 0, "project id")
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	priority := fs.String("priority", model.PriorityMedium, "LOW, MEDIUM or HIGH")
	status := fs.String("status", model.StatusToDo, "initial status")
	assign := fs.Int64("assign", 0, "assign this user id on creation")
	fs.Parse(args)
	if *project == 0 || *title == "" {
		return fmt.Errorf("-project and -title are required")
	}

	req := model.TaskCreateRequest{
		ProjectID:   *project,
		Title:       *title,
		Description: *description,
		StartDate:   *start,
		EndDate:     *end,
		Status:      strings.ToUpper(*status),
		Priority:    strings.ToUpper(*priority),
	}
	if *assign != 0 {
		req.AssignedUserIDs = []int64{*assign}
	}

	t, err := a.client.CreateTask(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Tarea creada: %s (id %d)\n", t.Title, t.TaskID)
	return nil
}

func (a *app) tasksUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks update", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	priority := fs.String("priority", "", "LOW, MEDIUM or HIGH")
	status := fs.String("status", "", "TO_DO, IN_PROGRESS, DONE or CANCELED")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	current, err := a.client.Task(ctx, *id)
	if err != nil {
		return err
	}
	req := model.TaskUpdateRequest{
		Title:       pick(*title, current.Title),
		Description: pick(*description, current.Description),
		StartDate:   pick(*start, current.StartDate),
		EndDate:     pick(*end, current.EndDate),
		Priority:    pick(strings.ToUpper(*priority), current.Priority),
		Status:      pick(strings.ToUpper(*status), current.Status),
	}

	t, err := a.client.UpdateTask(ctx, *id, req)
	if err != nil {
		return err
	}
	fmt.Printf("Tarea actualizada: %s\n", t.Title)
	return nil
}

func (a *app) tasksDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if err := a.client.DeleteTask(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Tarea eliminada.")
	return nil
}

func (a *app) tasksAssign(ctx context.Context, args []string, assign bool) error {
	name := "tasks unassign"
	if assign {
		name = "tasks assign"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	user := fs.Int64("user", 0, "user id")
	fs.Parse(args)
	if *id == 0 || *user == 0 {
		return fmt.Errorf("-id and -user are required")
	}

	var (
		t   model.Task
		err error
	)
	if assign {
		t, err = a.client.AssignTask(ctx, *id, *user)
	} else {
		t, err = a.client.UnassignTask(ctx, *id, *user)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Tarea %s: asignados %v\n", t.Title, []int64(t.AssignedUserIDs))
	return nil
}

func (a *app) tasksStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks status", flag.ExitOnError)
	id := fs.Int64("id", 0, "task id")
	status := fs.String("status", "", "TO_DO, IN_PROGRESS, DONE or CANCELED")
	fs.Parse(args)
	if *id == 0 || *status == "" {
		return fmt.Errorf("-id and -status are required")
	}

	t, err := a.client.UpdateTaskStatus(ctx, *id, strings.ToUpper(*status))
	if err != nil {
		return err
	}
	fmt.Printf("Tarea %s ahora está %s\n", t.Title, t.Status)
	return nil
}
