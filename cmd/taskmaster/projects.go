package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"taskmaster/internal/model"
	"taskmaster/internal/render"
)

const projectsUsage = `taskmaster projects SUBCOMMAND [flags]

Subcommands:
  list           all projects (or -leader ID / -member ID)
  show           one project (-id)
  create         new project (-name, -description, -budget, -end, -image)
  update         change a project (-id plus the fields to set)
  delete         remove a project (-id)
  join           join a project by key (-key)
  set-code       change the join key (-id, -code)
  members        list ROLE_MEMBER users of a project (-id)
  remove-member  drop a member from a project (-id, -member)
`

func (a *app) cmdProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, projectsUsage)
		return fmt.Errorf("missing subcommand")
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.projectsList(ctx, rest)
	case "show":
		return a.projectsShow(ctx, rest)
	case "create":
		return a.projectsCreate(ctx, rest)
	case "update":
		return a.projectsUpdate(ctx, rest)
	case "delete":
		return a.projectsDelete(ctx, rest)
	case "join":
		return a.projectsJoin(ctx, rest)
	case "set-code":
		return a.projectsSetCode(ctx, rest)
	case "members":
		return a.projectsMembers(ctx, rest)
	case "remove-member":
		return a.projectsRemoveMember(ctx, rest)
	default:
		fmt.Fprint(os.Stderr, projectsUsage)
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) projectsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects list", flag.ExitOnError)
	leader := fs.Int64("leader", 0, "only projects led by this user id")
	member := fs.Int64("member", 0, "only projects this user id belongs to")
	fs.Parse(args)

	var (
		projects []model.Project
		err      error
	)
	switch {
	case *leader != 0:
		projects, err = a.client.ProjectsByLeader(ctx, *leader)
	case *member != 0:
		projects, err = a.client.ProjectsByMember(ctx, *member)
	default:
		projects, err = a.client.Projects(ctx)
	}
	if err != nil {
		return err
	}
	render.Projects(os.Stdout, projects)
	return nil
}

func (a *app) projectsShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects show", flag.ExitOnError)
	id := fs.Int64("id", 0, "project id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	p, err := a.client.Project(ctx, *id)
	if err != nil {
		return err
	}
	render.Projects(os.Stdout, []model.Project{p})
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}

func (a *app) projectsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects create", flag.ExitOnError)
	name := fs.String("name", "", "project name")
	description := fs.String("description", "", "project description")
	image := fs.String("image", "", "image URL")
	budget := fs.Float64("budget", 0, "project budget")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	fs.Parse(args)
	if *name == "" {
		return fmt.Errorf("-name is required")
	}

	p, err := a.client.CreateProject(ctx, model.ProjectCreateRequest{
		Name:        *name,
		Description: *description,
		ImageURL:    *image,
		Budget:      *budget,
		EndDate:     *end,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Proyecto creado: %s (id %d, clave %s)\n", p.Name, p.ID, p.Key)
	return nil
}

func (a *app) projectsUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects update", flag.ExitOnError)
	id := fs.Int64("id", 0, "project id")
	name := fs.String("name", "", "project name")
	description := fs.String("description", "", "project description")
	image := fs.String("image", "", "image URL")
	budget := fs.Float64("budget", 0, "project budget")
	status := fs.String("status", "", "project status")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	// The update endpoint replaces the whole record, so unset flags keep
	// the current values.
	current, err := a.client.Project(ctx, *id)
	if err != nil {
		return err
	}
	req := model.ProjectUpdateRequest{
		Name:        pick(*name, current.Name),
		Description: pick(*description, current.Description),
		ImageURL:    pick(*image, current.ImageURL),
		Budget:      current.Budget,
		Status:      pick(*status, current.Status),
		EndDate:     pick(*end, current.EndDate),
	}
	if *budget != 0 {
		req.Budget = *budget
	}

	p, err := a.client.UpdateProject(ctx, *id, req)
	if err != nil {
		return err
	}
	fmt.Printf("Proyecto actualizado: %s\n", p.Name)
	return nil
}

func (a *app) projectsDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "project id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if err := a.client.DeleteProject(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Proyecto eliminado.")
	return nil
}

func (a *app) projectsJoin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects join", flag.ExitOnError)
	key := fs.String("key", "", "project join key")
	fs.Parse(args)
	if *key == "" {
		return fmt.Errorf("-key is required")
	}
	p, err := a.client.JoinProjectByKey(ctx, *key)
	if err != nil {
		return err
	}
	fmt.Printf("Te uniste al proyecto %s.\n", p.Name)
	return nil
}

func (a *app) projectsSetCode(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects set-code", flag.ExitOnError)
	id := fs.Int64("id", 0, "project id")
	code := fs.String("code", "", "new join key")
	fs.Parse(args)
	if *id == 0 || *code == "" {
		return fmt.Errorf("-id and -code are required")
	}
	p, err := a.client.SetProjectCode(ctx, *id, *code)
	if err != nil {
		return err
	}
	fmt.Printf("Clave del proyecto %s: %s\n", p.Name, p.Key)
	return nil
}

func (a *app) projectsMembers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects members", flag.ExitOnError)
	id := fs.Int64("id", 0, "project id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	users, err := a.client.Users(ctx)
	if err != nil {
		return err
	}
	render.Users(os.Stdout, model.MembersOf(users, *id))
	return nil
}

func (a *app) projectsRemoveMember(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects remove-member", flag.ExitOnError)
	id := fs.Int64("id", 0, "project id")
	member := fs.Int64("member", 0, "member user id")
	fs.Parse(args)
	if *id == 0 || *member == 0 {
		return fmt.Errorf("-id and -member are required")
	}
	if err := a.client.RemoveMember(ctx, *id, *member); err != nil {
		return err
	}
	fmt.Println("Miembro eliminado del proyecto.")
	return nil
}

// pick returns v unless it is empty, then fallback.
func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
