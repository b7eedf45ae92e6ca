package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// ScraperHandler handles the news scraper.
type ScraperHandler struct {
	scraper service.ScraperService
	logger  *logger.Logger
}

// NewScraperHandler creates a new ScraperHandler.
func NewScraperHandler(scraper service.ScraperService, logger *logger.Logger) *ScraperHandler {
	return &ScraperHandler{scraper: scraper, logger: logger}
}

// RegisterRoutes registers the scraper routes to the Echo group.
func (h *ScraperHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/sources", h.ListSources)
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
	g.POST("/start", h.Start)
	g.POST("/stop", h.Stop)
	g.POST("/test", h.Test)
	g.POST("/run", h.RunOnce)
	g.GET("/status", h.Status)
}

// ListSources godoc
// @Summary List configured news sources
// @Tags scraper
// @Produce json
// @Success 200 {array} dto.ScraperSourceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraper/sources [get]
func (h *ScraperHandler) ListSources(c echo.Context) error {
	cfg, err := h.scraper.Settings(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	selected := make(map[string]bool, len(cfg.Sources))
	for _, key := range cfg.Sources {
		selected[key] = true
	}

	sources := h.scraper.Sources()
	resp := make([]dto.ScraperSourceResponse, 0, len(sources))
	for _, src := range sources {
		resp = append(resp, dto.ScraperSourceResponse{
			Key:      src.Key,
			Name:     src.Name,
			Kind:     src.Kind,
			Selected: selected[src.Key],
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSettings godoc
// @Summary Get scraper settings
// @Tags scraper
// @Produce json
// @Success 200 {object} entity.ScraperConfig
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraper/settings [get]
func (h *ScraperHandler) GetSettings(c echo.Context) error {
	cfg, err := h.scraper.Settings(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateSettings godoc
// @Summary Save scraper settings
// @Tags scraper
// @Accept json
// @Produce json
// @Param settings body dto.ScraperSettingsRequest true "Scraper settings"
// @Success 200 {object} entity.ScraperConfig
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraper/settings [put]
func (h *ScraperHandler) UpdateSettings(c echo.Context) error {
	var req dto.ScraperSettingsRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	cfg, err := h.scraper.UpdateSettings(c.Request().Context(), entity.ScraperConfig{
		Sources:  req.Sources,
		Interval: req.Interval,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// Start godoc
// @Summary Start the scraper
// @Tags scraper
// @Produce json
// @Success 200 {object} service.ScraperStatus
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraper/start [post]
func (h *ScraperHandler) Start(c echo.Context) error {
	if err := h.scraper.Enable(c.Request().Context()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, h.scraper.Status())
}

// Stop godoc
// @Summary Stop the scraper
// @Tags scraper
// @Produce json
// @Success 200 {object} service.ScraperStatus
// @Router /scraper/stop [post]
func (h *ScraperHandler) Stop(c echo.Context) error {
	h.scraper.Disable(c.Request().Context())
	return c.JSON(http.StatusOK, h.scraper.Status())
}

// Test godoc
// @Summary Probe the selected sources
// @Tags scraper
// @Produce json
// @Success 200 {object} service.ScrapeTestResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraper/test [post]
func (h *ScraperHandler) Test(c echo.Context) error {
	result, err := h.scraper.Test(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RunOnce godoc
// @Summary Scrape one source now
// @Description Picks one of the selected sources at random. Returns 204 when nothing is selected.
// @Tags scraper
// @Produce json
// @Success 200 {object} service.ScrapeResult
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /scraper/run [post]
func (h *ScraperHandler) RunOnce(c echo.Context) error {
	result, err := h.scraper.RunOnce(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if result == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, result)
}

// Status godoc
// @Summary Get scraper status
// @Tags scraper
// @Produce json
// @Success 200 {object} service.ScraperStatus
// @Router /scraper/status [get]
func (h *ScraperHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.scraper.Status())
}
