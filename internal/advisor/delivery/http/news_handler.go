package http

import (
	"net/http"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	newsSourceFeed = "feed"
	newsSourceAI   = "ai"
)

// NewsHandler handles HTTP requests for crypto news.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetNews)
}

// GetNews godoc
// @Summary Get crypto news
// @Description Headlines from the configured RSS feeds, or a Gemini generated digest
// @Tags news
// @Produce  json
// @Param   source  query    string false    "feed (default) or ai"
// @Success 200 {object} dto.NewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /news [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	ctx := c.Request().Context()
	switch c.QueryParam("source") {
	case "", newsSourceFeed:
		return c.JSON(http.StatusOK, h.newsService.GetNews(ctx))
	case newsSourceAI:
		return c.JSON(http.StatusOK, dto.NewsResponse{Items: h.newsService.GetAINews(ctx)})
	default:
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unknown news source"})
	}
}
