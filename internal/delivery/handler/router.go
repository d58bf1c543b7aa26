package handler

import (
	"github.com/bearh141/todo-list/internal/infrastructure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Admin    *AdminHandler
	Project  *ProjectHandler
	Task     *TaskHandler
	Reminder *ReminderHandler
}

func RegisterRoutes(
	e *echo.Echo,
	handlers Handlers,
	jwtService *infrastructure.JWTService,
	redisService *infrastructure.RedisService,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	authed := e.Group("", RequireAuth(jwtService, redisService))
	authed.POST("/auth/logout", handlers.Auth.Logout)

	authed.GET("/profile", handlers.Profile.GetProfile)
	authed.PUT("/profile", handlers.Profile.UpdateProfile)
	authed.POST("/profile/avatar", handlers.Profile.UploadAvatar)

	authed.GET("/projects", handlers.Project.Dashboard)
	authed.POST("/projects", handlers.Project.CreateProject)
	authed.GET("/projects/:id", handlers.Project.GetProject)
	authed.PUT("/projects/:id", handlers.Project.UpdateProject)
	authed.DELETE("/projects/:id", handlers.Project.DeleteProject)
	authed.POST("/projects/:id/shares", handlers.Project.Invite)
	authed.DELETE("/projects/:id/shares/:userId", handlers.Project.RemoveShare)
	authed.GET("/projects/:id/export", handlers.Project.ExportCSV)
	authed.POST("/projects/:id/tasks", handlers.Task.CreateTask)

	authed.GET("/tasks/:id", handlers.Task.GetTask)
	authed.PUT("/tasks/:id", handlers.Task.UpdateTask)
	authed.POST("/tasks/:id/toggle", handlers.Task.ToggleCompletion)
	authed.PUT("/tasks/:id/completion", handlers.Task.SetCompletion)
	authed.DELETE("/tasks/:id", handlers.Task.DeleteTask)

	admin := authed.Group("/admin", RequireAdmin)
	admin.GET("/users", handlers.Admin.ListUsers)
	admin.PUT("/users/:id/admin", handlers.Admin.SetAdmin)
	admin.DELETE("/users/:id", handlers.Admin.DeleteUser)
	admin.POST("/reminders/sweep", handlers.Reminder.Sweep)
}
