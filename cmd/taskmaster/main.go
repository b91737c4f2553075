package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"taskmaster/internal/api"
	"taskmaster/internal/config"
	"taskmaster/internal/logger"
	"taskmaster/internal/session"
)

const usage = `taskmaster - project and task management client

Usage:
  taskmaster [-config FILE] COMMAND [flags]

Commands:
  login          sign in and store the session
  signup         register a new leader account
  logout         drop the stored session
  whoami         show the signed-in profile
  profile        update the signed-in profile
  projects       list and manage projects
  tasks          list, filter and manage tasks
  calendar       month grid and per-day task view
  stats          project or member statistics
  notifications  list my notifications

Run 'taskmaster COMMAND -h' for command flags.
`

// tokenGrace forces a re-login when the stored token is this close to
// expiry, so a command does not die halfway through its requests.
const tokenGrace = time.Minute

type app struct {
	cfg    *config.Config
	client *api.Client
	store  session.Store
}

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/taskmaster.yaml)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	godotenv.Load()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	a := &app{
		cfg:    cfg,
		client: api.New(cfg.API.BaseURL, cfg.API.Timeout),
		store:  session.NewFileStore(cfg.Auth.CredentialsFile),
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "logout":
		return a.cmdLogout(args)
	case "whoami":
		return a.cmdWhoami(ctx, args)
	case "profile":
		return a.cmdProfile(ctx, args)
	case "projects":
		return a.cmdProjects(ctx, args)
	case "tasks":
		return a.cmdTasks(ctx, args)
	case "calendar":
		return a.cmdCalendar(ctx, args)
	case "stats":
		return a.cmdStats(ctx, args)
	case "notifications":
		return a.cmdNotifications(ctx, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q, run 'taskmaster help'", command)
	}
}

// ensureSession installs a usable token on the client: the stored one when
// still valid, otherwise a fresh sign-in with the stored credentials.
func (a *app) ensureSession(ctx context.Context) error {
	creds, err := a.store.Load()
	if err != nil {
		return err
	}

	if session.TokenValid(creds.Token, tokenGrace) {
		a.client.SetToken(creds.Token)
		return nil
	}

	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("no session, run 'taskmaster login' first")
	}

	logger.Debug("session.refresh", "email", creds.Email)
	token, err := a.client.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("session expired and re-login failed: %w", err)
	}
	creds.Token = token
	return a.store.Save(creds)
}

// currentUser resolves the signed-in account from the stored email.
func (a *app) currentUserEmail() (string, error) {
	creds, err := a.store.Load()
	if err != nil {
		return "", err
	}
	if creds.Email == "" {
		return "", fmt.Errorf("no session, run 'taskmaster login' first")
	}
	return creds.Email, nil
}
