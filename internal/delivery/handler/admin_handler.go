package handler

import (
	"net/http"

	"github.com/bearh141/todo-list/internal/application/services"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	userService *services.UserService
}

func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, newUserResponse(user))
	}
	return c.JSON(http.StatusOK, responses)
}

type setAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

func (h *AdminHandler) SetAdmin(c echo.Context) error {
	userId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req setAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	user, err := h.userService.SetAdmin(c.Request().Context(), userId, req.IsAdmin)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userId, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.userService.DeleteUser(c.Request().Context(), currentUserId(c), userId); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
