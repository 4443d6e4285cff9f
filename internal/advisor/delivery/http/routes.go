package http

import (
	"net/http"

	"crypto-advisor/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler of the advisor API.
type Handlers struct {
	Market         *MarketHandler
	Recommendation *RecommendationHandler
	Chat           *ChatHandler
	News           *NewsHandler
	Portfolio      *PortfolioHandler
}

// RegisterRoutes mounts the API under /api/v1 together with the health and metrics endpoints.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	apiV1 := e.Group("/api/v1")
	h.Market.RegisterRoutes(apiV1.Group("/market"))
	h.Recommendation.RegisterRoutes(apiV1.Group("/recommendations"))
	h.Chat.RegisterRoutes(apiV1.Group("/chat"))
	h.News.RegisterRoutes(apiV1.Group("/news"))
	h.Portfolio.RegisterUserRoutes(apiV1.Group("/users"))
	h.Portfolio.RegisterInvestmentRoutes(apiV1.Group("/investments"))
}
