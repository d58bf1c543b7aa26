package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/bearh141/todo-list/internal/application/services"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), currentUserId(c), req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, newProjectResponse(project))
}

func (h *ProjectHandler) Dashboard(c echo.Context) error {
	summaries, err := h.projectService.Dashboard(c.Request().Context(), currentUserId(c))
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]projectResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, newProjectSummaryResponse(summary))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	filter := services.TaskFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}

	detail, err := h.projectService.GetProject(c.Request().Context(), currentUserId(c), projectId, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newProjectDetailResponse(detail))
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), currentUserId(c), projectId, req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), currentUserId(c), projectId); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project deleted"})
}

type inviteRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *ProjectHandler) Invite(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	share, err := h.projectService.Invite(c.Request().Context(), currentUserId(c), projectId, req.Username, req.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, shareResponse{
		ProjectId: share.ProjectId,
		UserId:    share.UserId,
		Username:  req.Username,
		Role:      string(share.Role),
	})
}

func (h *ProjectHandler) RemoveShare(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	targetUserId, err := paramUint(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.projectService.RemoveShare(c.Request().Context(), currentUserId(c), projectId, targetUserId); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "share removed"})
}

func (h *ProjectHandler) ExportCSV(c echo.Context) error {
	projectId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := h.projectService.ExportCSV(c.Request().Context(), currentUserId(c), projectId, &buf); err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=project-%d-tasks.csv", projectId))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
