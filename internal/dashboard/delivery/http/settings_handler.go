package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// SettingsHandler handles the auto-refresh settings.
type SettingsHandler struct {
	refresh service.RefreshService
	logger  *logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(refresh service.RefreshService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{refresh: refresh, logger: logger}
}

// RegisterRoutes registers the settings routes to the Echo group.
func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/auto-refresh", h.GetAutoRefresh)
	g.PUT("/auto-refresh", h.UpdateAutoRefresh)
}

// GetAutoRefresh godoc
// @Summary Get auto-refresh settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.AutoRefreshResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings/auto-refresh [get]
func (h *SettingsHandler) GetAutoRefresh(c echo.Context) error {
	cfg, err := h.refresh.Settings(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, h.toResponse(cfg))
}

// UpdateAutoRefresh godoc
// @Summary Update auto-refresh settings
// @Description Persists the settings and starts, restarts or stops the refresh timer accordingly
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.AutoRefreshRequest true "Auto-refresh settings"
// @Success 200 {object} dto.AutoRefreshResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings/auto-refresh [put]
func (h *SettingsHandler) UpdateAutoRefresh(c echo.Context) error {
	var req dto.AutoRefreshRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	cfg, err := h.refresh.UpdateSettings(c.Request().Context(), entity.AutoRefreshConfig{
		Enabled:  req.Enabled,
		Interval: req.Interval,
		Period:   entity.Period(req.Period),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, h.toResponse(cfg))
}

func (h *SettingsHandler) toResponse(cfg entity.AutoRefreshConfig) dto.AutoRefreshResponse {
	return dto.AutoRefreshResponse{
		Enabled:  cfg.Enabled,
		Interval: cfg.Interval,
		Period:   string(cfg.Period),
		State:    string(h.refresh.State()),
	}
}
