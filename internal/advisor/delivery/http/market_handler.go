package http

import (
	"net/http"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler handles HTTP requests for market data and sentiment.
type MarketHandler struct {
	marketService    service.MarketService
	sentimentService service.SentimentService
	logger           *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService service.MarketService, sentimentService service.SentimentService, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{marketService: marketService, sentimentService: sentimentService, logger: logger}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/assets", h.GetAssets)
	g.GET("/assets/:id", h.GetAsset)
	g.POST("/refresh", h.Refresh)
	g.GET("/sentiment", h.GetSentiment)
}

func toAssetList(snapshot *dto.MarketSnapshot) dto.AssetListResponse {
	return dto.AssetListResponse{
		Assets:    snapshot.Assets,
		Fallback:  snapshot.Fallback,
		FetchedAt: snapshot.FetchedAt,
	}
}

// GetAssets godoc
// @Summary Get top assets
// @Description Top crypto assets by market cap. Serves a fixed fallback list when the provider is unavailable.
// @Tags market
// @Produce  json
// @Success 200 {object} dto.AssetListResponse
// @Router /market/assets [get]
func (h *MarketHandler) GetAssets(c echo.Context) error {
	snapshot := h.marketService.GetTopAssets(c.Request().Context())
	return c.JSON(http.StatusOK, toAssetList(snapshot))
}

// GetAsset godoc
// @Summary Get one asset
// @Description Get an asset from the current market snapshot by its id
// @Tags market
// @Produce  json
// @Param   id  path    string true    "Asset ID (e.g. bitcoin)"
// @Success 200 {object} dto.Asset
// @Failure 404 {object} dto.ErrorResponse
// @Router /market/assets/{id} [get]
func (h *MarketHandler) GetAsset(c echo.Context) error {
	asset, err := h.marketService.GetAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, asset)
}

// Refresh godoc
// @Summary Refresh market data
// @Description Fetch live market data now and replace the cached snapshot
// @Tags market
// @Produce  json
// @Success 200 {object} dto.AssetListResponse
// @Router /market/refresh [post]
func (h *MarketHandler) Refresh(c echo.Context) error {
	snapshot := h.marketService.Refresh(c.Request().Context())
	return c.JSON(http.StatusOK, toAssetList(snapshot))
}

// GetSentiment godoc
// @Summary Get market sentiment
// @Description Market sentiment from the fixed mock snapshot or from Gemini analysis
// @Tags market
// @Produce  json
// @Param   source  query    string false    "mock or ai"
// @Success 200 {object} dto.MarketSentiment
// @Failure 400 {object} dto.ErrorResponse
// @Router /market/sentiment [get]
func (h *MarketHandler) GetSentiment(c echo.Context) error {
	sentiment, err := h.sentimentService.Current(c.Request().Context(), c.QueryParam("source"))
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, sentiment)
}
