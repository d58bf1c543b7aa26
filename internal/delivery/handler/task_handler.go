package handler

import (
	"net/http"
	"time"

	"github.com/bearh141/todo-list/internal/application/services"
	"github.com/labstack/echo/v4"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type taskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Priority    string   `json:"priority"`
	ParentId    *uint    `json:"parent_id"`
	Tags        []string `json:"tags"`
}

func (r *taskRequest) toInput() (services.TaskInput, error) {
	input := services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		ParentId:    r.ParentId,
		Tags:        r.Tags,
	}

	if r.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", r.DueDate)
		if err != nil {
			return input, err
		}
		input.DueDate = &dueDate
	}
	return input, nil
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "due date must be YYYY-MM-DD"})
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), currentUserId(c), projectId, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	taskId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), currentUserId(c), taskId)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	taskId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "due date must be YYYY-MM-DD"})
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), currentUserId(c), taskId, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

// ToggleCompletion flips completion and cascades the new state down the
// subtask tree.
func (h *TaskHandler) ToggleCompletion(c echo.Context) error {
	taskId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.ToggleCompletion(c.Request().Context(), currentUserId(c), taskId)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

type completionRequest struct {
	Completed bool `json:"completed"`
}

func (h *TaskHandler) SetCompletion(c echo.Context) error {
	taskId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req completionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	task, err := h.taskService.SetCompletion(c.Request().Context(), currentUserId(c), taskId, req.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	taskId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), currentUserId(c), taskId); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}
