package handler

import (
	"net/http"

	"github.com/bearh141/todo-list/internal/application/services"
	"github.com/labstack/echo/v4"
)

type ReminderHandler struct {
	reminderService *services.ReminderService
}

func NewReminderHandler(reminderService *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Sweep is triggered externally (cron or admin) and reports how many
// reminder mails went out.
func (h *ReminderHandler) Sweep(c echo.Context) error {
	sent, err := h.reminderService.Sweep(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"sent": sent})
}
