package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/analyzer"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// MarketHandler serves index cards and the volume ranking.
type MarketHandler struct {
	market  service.MarketService
	refresh service.RefreshService
	logger  *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(market service.MarketService, refresh service.RefreshService, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{market: market, refresh: refresh, logger: logger}
}

// RegisterRoutes registers the market and ranking routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/market", h.GetMarket)
	g.GET("/rankings", h.GetRankings)
	g.POST("/rankings/refresh", h.RefreshRankings)
	g.POST("/rankings/analyze", h.Analyze)
}

// GetMarket godoc
// @Summary Get index cards
// @Tags market
// @Produce json
// @Success 200 {array} entity.MarketTicker
// @Router /market [get]
func (h *MarketHandler) GetMarket(c echo.Context) error {
	return c.JSON(http.StatusOK, h.market.List())
}

// GetRankings godoc
// @Summary Get the volume ranking
// @Description Returns the latest ranking snapshot for the period, refreshing it when none exists yet
// @Tags rankings
// @Produce json
// @Param period query string false "day, week or month" default(day)
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /rankings [get]
func (h *MarketHandler) GetRankings(c echo.Context) error {
	period, err := entity.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	rows, err := h.refresh.Latest(c.Request().Context(), period)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.RankingResponse{Period: period, Rows: rows})
}

// RefreshRankings godoc
// @Summary Refresh the volume ranking
// @Tags rankings
// @Produce json
// @Param period query string false "day, week or month" default(day)
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /rankings/refresh [post]
func (h *MarketHandler) RefreshRankings(c echo.Context) error {
	period, err := entity.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	rows, err := h.refresh.Refresh(c.Request().Context(), period)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.RankingResponse{Period: period, Rows: rows})
}

// Analyze godoc
// @Summary Classify a sample
// @Tags rankings
// @Accept json
// @Produce json
// @Param sample body dto.AnalyzeRequest true "Sample to classify"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /rankings/analyze [post]
func (h *MarketHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if req.Code == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "code is required", Field: "code"})
	}

	sample := entity.Sample{
		Price:         req.Price,
		ChangePercent: req.ChangePercent,
		Volume:        req.Volume,
		Period:        entity.Period(req.Period),
	}
	symbol, analysis, err := h.refresh.Analyze(c.Request().Context(), req.Code, sample, req.BasePrice)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	period, _ := entity.ParsePeriod(req.Period)
	return c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Symbol:     symbol,
		Analysis:   analysis,
		Percentile: analyzer.Percentile(req.Price, symbol.BasePrice),
		HighVolume: req.Volume > analyzer.VolumeThreshold(period),
	})
}
