package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"taskmaster/internal/api"
	"taskmaster/internal/logger"
	"taskmaster/internal/model"
	"taskmaster/internal/render"
	"taskmaster/internal/session"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	token, err := a.client.SignIn(ctx, *email, *password)
	if err != nil {
		return err
	}

	err = a.store.Save(session.Credentials{Email: *email, Password: *password, Token: token})
	if err != nil {
		return err
	}

	logger.Info("login.ok", "email", *email)
	fmt.Println("Sesión iniciada.")
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	username := fs.String("username", "", "display name, first word becomes the name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *username == "" || *email == "" || *password == "" {
		return fmt.Errorf("-username, -email and -password are required")
	}

	u, err := a.client.SignUpWithUsername(ctx, *username, *email, *password)
	if err != nil {
		return err
	}

	logger.Info("signup.ok", "uid", u.ID, "email", u.Email)
	fmt.Printf("Cuenta creada: %s <%s>\n", u.FullName(), u.Email)
	return nil
}

func (a *app) cmdLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	fs.Parse(args)

	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Println("Sesión cerrada.")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	fs.Parse(args)

	email, err := a.currentUserEmail()
	if err != nil {
		return err
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	u, err := a.client.UserByEmail(ctx, email)
	if err != nil {
		return err
	}
	render.Users(os.Stdout, []model.User{u})
	return nil
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	username := fs.String("username", "", "new display name, first word becomes the name")
	imageURL := fs.String("image", "", "avatar URL")
	salary := fs.Float64("salary", 0, "hourly salary")
	fs.Parse(args)

	if *username == "" {
		return fmt.Errorf("-username is required")
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	name, lastName := api.SplitUsername(*username)
	req := model.UserUpdateRequest{Name: name, LastName: lastName, ImageURL: *imageURL}
	if *salary > 0 {
		req.Salary = salary
	}

	u, err := a.client.UpdateUser(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Perfil actualizado: %s\n", u.FullName())
	return nil
}
