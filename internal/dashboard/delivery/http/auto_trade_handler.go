package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// AutoTradeHandler handles the simulated auto-trade loop.
type AutoTradeHandler struct {
	autoTrade service.AutoTradeService
	logger    *logger.Logger
}

// NewAutoTradeHandler creates a new AutoTradeHandler.
func NewAutoTradeHandler(autoTrade service.AutoTradeService, logger *logger.Logger) *AutoTradeHandler {
	return &AutoTradeHandler{autoTrade: autoTrade, logger: logger}
}

// RegisterRoutes registers the auto-trade routes to the Echo group.
func (h *AutoTradeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
	g.GET("/strategies", h.ListStrategies)
	g.POST("/start", h.Start)
	g.POST("/stop", h.Stop)
	g.POST("/run", h.RunOnce)
	g.GET("/status", h.Status)
	g.GET("/trades", h.Trades)
}

// GetSettings godoc
// @Summary Get auto-trade settings
// @Tags auto-trade
// @Produce json
// @Success 200 {object} entity.AutoTradeConfig
// @Failure 500 {object} dto.ErrorResponse
// @Router /auto-trade/settings [get]
func (h *AutoTradeHandler) GetSettings(c echo.Context) error {
	cfg, err := h.autoTrade.Settings(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateSettings godoc
// @Summary Save auto-trade settings
// @Tags auto-trade
// @Accept json
// @Produce json
// @Param settings body dto.AutoTradeSettingsRequest true "Auto-trade settings"
// @Success 200 {object} entity.AutoTradeConfig
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auto-trade/settings [put]
func (h *AutoTradeHandler) UpdateSettings(c echo.Context) error {
	var req dto.AutoTradeSettingsRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	cfg, err := h.autoTrade.UpdateSettings(c.Request().Context(), entity.AutoTradeConfig{
		Enabled:     req.Enabled,
		Strategy:    req.Strategy,
		TradeAmount: req.TradeAmount,
		MaxPosition: req.MaxPosition,
		MinChange:   req.MinChange,
		MinVolume:   req.MinVolume,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// ListStrategies godoc
// @Summary List registered trade strategies
// @Tags auto-trade
// @Produce json
// @Success 200 {array} string
// @Router /auto-trade/strategies [get]
func (h *AutoTradeHandler) ListStrategies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.autoTrade.Strategies())
}

// Start godoc
// @Summary Enable auto-trade
// @Tags auto-trade
// @Produce json
// @Success 200 {object} service.AutoTradeStatus
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auto-trade/start [post]
func (h *AutoTradeHandler) Start(c echo.Context) error {
	if _, err := h.autoTrade.Enable(c.Request().Context()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, h.autoTrade.Status())
}

// Stop godoc
// @Summary Disable auto-trade
// @Tags auto-trade
// @Produce json
// @Success 200 {object} service.AutoTradeStatus
// @Failure 500 {object} dto.ErrorResponse
// @Router /auto-trade/stop [post]
func (h *AutoTradeHandler) Stop(c echo.Context) error {
	if _, err := h.autoTrade.Disable(c.Request().Context()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, h.autoTrade.Status())
}

// RunOnce godoc
// @Summary Run one auto-trade pass
// @Description Evaluates the configured strategy against the latest day ranking. Returns 204 when no trade was made.
// @Tags auto-trade
// @Produce json
// @Success 200 {object} entity.Trade
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auto-trade/run [post]
func (h *AutoTradeHandler) RunOnce(c echo.Context) error {
	trade, err := h.autoTrade.RunOnce(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if trade == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, trade)
}

// Status godoc
// @Summary Get auto-trade status
// @Tags auto-trade
// @Produce json
// @Success 200 {object} service.AutoTradeStatus
// @Router /auto-trade/status [get]
func (h *AutoTradeHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.autoTrade.Status())
}

// Trades godoc
// @Summary List simulated trades
// @Tags auto-trade
// @Produce json
// @Success 200 {array} entity.Trade
// @Router /auto-trade/trades [get]
func (h *AutoTradeHandler) Trades(c echo.Context) error {
	return c.JSON(http.StatusOK, h.autoTrade.Trades())
}
