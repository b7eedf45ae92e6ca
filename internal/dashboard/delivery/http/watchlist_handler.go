package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"
)

// WatchlistHandler handles the user's watchlist.
type WatchlistHandler struct {
	watchlist service.WatchlistService
	logger    *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlist service.WatchlistService, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Add)
	g.DELETE("/:code", h.Remove)
}

// List godoc
// @Summary List the watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {array} entity.WatchlistEntry
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) List(c echo.Context) error {
	entries, err := h.watchlist.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Add godoc
// @Summary Add a stock to the watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param stock body dto.AddWatchlistRequest true "Stock to add"
// @Success 201 {object} entity.WatchlistEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [post]
func (h *WatchlistHandler) Add(c echo.Context) error {
	var req dto.AddWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	entry, err := h.watchlist.Add(c.Request().Context(), req.Name, req.Code)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// Remove godoc
// @Summary Remove a stock from the watchlist
// @Tags watchlist
// @Param code path string true "Stock code"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist/{code} [delete]
func (h *WatchlistHandler) Remove(c echo.Context) error {
	if err := h.watchlist.Remove(c.Request().Context(), c.Param("code")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
