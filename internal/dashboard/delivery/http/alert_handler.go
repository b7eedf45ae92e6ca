package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// AlertHandler handles price alert thresholds and delivery methods.
type AlertHandler struct {
	alerts service.AlertMonitor
	logger *logger.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alerts service.AlertMonitor, logger *logger.Logger) *AlertHandler {
	return &AlertHandler{alerts: alerts, logger: logger}
}

// RegisterRoutes registers the alert routes to the Echo group.
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListThresholds)
	g.GET("/methods", h.GetMethods)
	g.PUT("/methods", h.UpdateMethods)
	g.PUT("/:direction", h.SetThreshold)
	g.DELETE("/:direction", h.ClearThreshold)
}

// ListThresholds godoc
// @Summary List pending alert thresholds
// @Tags alerts
// @Produce json
// @Success 200 {array} entity.AlertThreshold
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts [get]
func (h *AlertHandler) ListThresholds(c echo.Context) error {
	thresholds, err := h.alerts.Thresholds(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, thresholds)
}

// SetThreshold godoc
// @Summary Set an alert threshold
// @Description Replaces the pending threshold for the direction. The threshold fires once and is then removed.
// @Tags alerts
// @Accept json
// @Produce json
// @Param direction path string true "buy-below or sell-above"
// @Param threshold body dto.AlertThresholdRequest true "Threshold price"
// @Success 200 {object} entity.AlertThreshold
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{direction} [put]
func (h *AlertHandler) SetThreshold(c echo.Context) error {
	direction, err := entity.ParseAlertDirection(c.Param("direction"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	var req dto.AlertThresholdRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	threshold, err := h.alerts.SetThreshold(c.Request().Context(), direction, string(req.Price))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, threshold)
}

// ClearThreshold godoc
// @Summary Clear an alert threshold
// @Tags alerts
// @Param direction path string true "buy-below or sell-above"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{direction} [delete]
func (h *AlertHandler) ClearThreshold(c echo.Context) error {
	direction, err := entity.ParseAlertDirection(c.Param("direction"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if err := h.alerts.ClearThreshold(c.Request().Context(), direction); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMethods godoc
// @Summary Get alert delivery methods
// @Tags alerts
// @Produce json
// @Success 200 {object} dto.AlertMethodsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/methods [get]
func (h *AlertHandler) GetMethods(c echo.Context) error {
	methods, err := h.alerts.Methods(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.AlertMethodsResponse{Methods: methods})
}

// UpdateMethods godoc
// @Summary Save alert delivery methods
// @Tags alerts
// @Accept json
// @Produce json
// @Param methods body dto.AlertMethodsRequest true "Delivery methods"
// @Success 200 {object} dto.AlertMethodsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/methods [put]
func (h *AlertHandler) UpdateMethods(c echo.Context) error {
	var req dto.AlertMethodsRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	methods, err := h.alerts.SetMethods(c.Request().Context(), req.Methods)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.AlertMethodsResponse{Methods: methods})
}
