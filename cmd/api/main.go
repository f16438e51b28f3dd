package main

import (
	"context"
	"log"
	"time"

	"github.com/devpals/devpals-go/internal/api/handlers"
	"github.com/devpals/devpals-go/internal/api/middleware"
	"github.com/devpals/devpals-go/internal/api/routes"
	"github.com/devpals/devpals-go/internal/application"
	"github.com/devpals/devpals-go/internal/config"
	"github.com/devpals/devpals-go/internal/config/db"
	"github.com/devpals/devpals-go/internal/domain/applicant"
	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/internal/domain/tag"
	"github.com/devpals/devpals-go/internal/domain/user"
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/storage"
	"github.com/devpals/devpals-go/internal/sweep"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	err := db.DB.AutoMigrate(
		&user.User{},
		&tag.SkillTag{},
		&tag.PositionTag{},
		&tag.Method{},
		&project.Project{},
		&tag.ProjectSkillTag{},
		&tag.ProjectPositionTag{},
		&tag.UserSkillTag{},
		&applicant.Applicant{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	repos := repository.NewRepositories(db.DB)

	images, err := storage.NewMinioStore()
	if err != nil {
		log.Fatal("Failed to init object storage:", err)
	}

	svc := application.New(repos, application.NewGomailMailer(), images)
	h := handlers.New(svc)

	if config.SweepEnabled {
		sweeper := sweep.NewSweeper(
			repos.Project,
			svc.Project,
			time.Duration(config.SweepInterval)*time.Hour,
			config.SweepConcurrency,
		)
		go sweeper.Start(context.Background())
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(r, h)

	log.Printf("Server listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
