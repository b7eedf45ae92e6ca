package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"
)

const defaultNotificationLimit = 20

// NotificationHandler exposes the in-app notification history.
type NotificationHandler struct {
	notifications service.NotificationService
	logger        *logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

// RegisterRoutes registers the notification routes to the Echo group.
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.DELETE("", h.Clear)
}

// List godoc
// @Summary List recent notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum number of notifications" default(20)
// @Success 200 {array} notifier.Notification
// @Failure 400 {object} dto.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	limit := defaultNotificationLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
		}
		limit = n
	}
	return c.JSON(http.StatusOK, h.notifications.Recent(limit))
}

// Clear godoc
// @Summary Clear the notification history
// @Tags notifications
// @Success 204
// @Router /notifications [delete]
func (h *NotificationHandler) Clear(c echo.Context) error {
	h.notifications.Clear()
	return c.NoContent(http.StatusNoContent)
}
