package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/devpals/devpals-go/internal/application"
	"github.com/devpals/devpals-go/internal/config"
	"github.com/devpals/devpals-go/internal/config/db"
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/sweep"
)

// Standalone sweep process. Run this instead of SWEEP_ENABLED=true on the
// API server when the sweep should live outside the request path.
func main() {
	config.LoadConfig()
	db.Init()

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, application.NewGomailMailer(), nil)

	sweeper := sweep.NewSweeper(
		repos.Project,
		svc.Project,
		time.Duration(config.SweepInterval)*time.Hour,
		config.SweepConcurrency,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper.Start(ctx)
	log.Println("Sweeper exited")
}
