package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/infrastructure"
	"github.com/bearh141/todo-list/internal/logging"
	"github.com/labstack/echo/v4"
)

const (
	contextUserId  = "user_id"
	contextIsAdmin = "is_admin"
	contextToken   = "token"
)

// RequireAuth validates the bearer token and places the authenticated
// user id and admin flag on the request context.
func RequireAuth(jwtService *infrastructure.JWTService, redisService *infrastructure.RedisService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authorization token required"})
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			if redisService.TokenRevoked(c.Request().Context(), token) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
			}

			c.Set(contextUserId, claims.UserId)
			c.Set(contextIsAdmin, claims.IsAdmin)
			c.Set(contextToken, token)
			return next(c)
		}
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, _ := c.Get(contextIsAdmin).(bool)
		if !isAdmin {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
		}
		return next(c)
	}
}

func currentUserId(c echo.Context) uint {
	userId, _ := c.Get(contextUserId).(uint)
	return userId
}

func paramUint(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, common.Validationf("invalid %s", name)
	}
	return uint(value), nil
}

// respondError maps the application error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is logged and answered generically.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, common.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	logging.Logger.Errorf("Request failed: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
