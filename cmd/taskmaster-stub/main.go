package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"taskmaster/internal/config"
	"taskmaster/internal/logger"
	"taskmaster/internal/stub"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	configFile := flag.String("config", "", "config file path (e.g. etc/taskmaster.yaml)")
	flag.Parse()

	godotenv.Load()

	cfg := config.Load(*configFile)
	cfg.Log.Console = true
	logger.Init(cfg.Log)

	secret := os.Getenv("TASKMASTER_STUB_SECRET")
	if secret == "" {
		secret = "taskmaster-stub-secret"
	}

	srv := stub.NewServer(stub.NewStore(), []byte(secret))
	addr := fmt.Sprintf(":%d", *port)

	logger.Info("stub.start", "addr", addr)
	if err := srv.Router().Run(addr); err != nil {
		logger.Error("stub.exit", "err", err)
		os.Exit(1)
	}
}
