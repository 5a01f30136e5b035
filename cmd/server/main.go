package main

import (
	"log"

	"github.com/NaniCherry131202/Internship-Task/db"
	"github.com/NaniCherry131202/Internship-Task/internal/auth"
	"github.com/NaniCherry131202/Internship-Task/internal/config"
	"github.com/NaniCherry131202/Internship-Task/internal/handlers"
	"github.com/NaniCherry131202/Internship-Task/internal/repository"
	"github.com/NaniCherry131202/Internship-Task/internal/router"
	"github.com/NaniCherry131202/Internship-Task/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()

	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	conn, err := db.ConnectDatabase(cfg.DatabaseDSN)

	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.MigrateDatabase(conn); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	accounts := service.NewAccountService(repository.NewGormAccountRepository(conn))
	projects := service.NewProjectService(repository.NewGormProjectRepository(conn))

	authHandler := &handlers.AuthHandler{Accounts: accounts, Tokens: tokens, Logger: logger}
	projectHandler := &handlers.ProjectHandler{Projects: projects, Logger: logger}
	taskHandler := &handlers.TaskHandler{Projects: projects, Logger: logger}

	r := router.NewRouter(authHandler, projectHandler, taskHandler, tokens, cfg.CORSOrigins(), logger)

	logger.Info("starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
