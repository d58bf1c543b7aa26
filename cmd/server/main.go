package main

import (
	"time"

	"github.com/bearh141/todo-list/internal/application/services"
	"github.com/bearh141/todo-list/internal/config"
	"github.com/bearh141/todo-list/internal/delivery/handler"
	"github.com/bearh141/todo-list/internal/infrastructure"
	"github.com/bearh141/todo-list/internal/infrastructure/db"
	"github.com/bearh141/todo-list/internal/logging"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.Load()
	logging.InitLogger(cfg.LogDir)

	gormDB, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logging.Logger.Fatalf("Failed to connect to the database: %v", err)
	}

	userRepo := db.NewUserRepository(gormDB)
	projectRepo := db.NewProjectRepository(gormDB)
	taskRepo := db.NewTaskRepository(gormDB)
	tagRepo := db.NewTagRepository(gormDB)
	shareRepo := db.NewProjectShareRepository(gormDB)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	redisService := infrastructure.NewRedisService()
	defer redisService.Close()
	rateLimiter := infrastructure.NewRateLimiter(time.Minute, 5)
	mailer := infrastructure.NewSendgridMailer()

	avatarStore, err := infrastructure.NewAvatarStore(cfg.UploadDir)
	if err != nil {
		logging.Logger.Fatalf("Failed to prepare upload directory: %v", err)
	}

	permissions := services.NewPermissionService(shareRepo)
	authService := services.NewAuthService(userRepo, jwtService, redisService, rateLimiter)
	userService := services.NewUserService(userRepo, avatarStore)
	projectService := services.NewProjectService(projectRepo, taskRepo, shareRepo, userRepo, permissions)
	taskService := services.NewTaskService(taskRepo, tagRepo, projectRepo, permissions)
	reminderService := services.NewReminderService(taskRepo, userRepo, mailer, cfg.ReminderWindow)

	e := echo.New()
	e.HideBanner = true

	handler.RegisterRoutes(e, handler.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Profile:  handler.NewProfileHandler(userService),
		Admin:    handler.NewAdminHandler(userService),
		Project:  handler.NewProjectHandler(projectService),
		Task:     handler.NewTaskHandler(taskService),
		Reminder: handler.NewReminderHandler(reminderService),
	}, jwtService, redisService)

	logging.Logger.Infof("Server running on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logging.Logger.Fatal(err)
	}
}
