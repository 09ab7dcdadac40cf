package main

import (
	"log"

	"github.com/joho/godotenv"

	"metrotracker"
	"metrotracker/config"
)

func main() {
	metrotracker.InitLogging()

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := metrotracker.NewApp(cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	srv := metrotracker.NewServer(app)
	srv.Start()
	srv.WaitForShutdown()
}
