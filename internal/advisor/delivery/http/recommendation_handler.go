package http

import (
	"net/http"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RecommendationHandler handles HTTP requests for portfolio recommendations.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
	logger                *logger.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService, logger *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService, logger: logger}
}

// RegisterRoutes registers the recommendation routes to the Echo group.
func (h *RecommendationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateRecommendation)
}

// CreateRecommendation godoc
// @Summary Create a portfolio recommendation
// @Description Allocate percentages across the top assets (or the given asset ids) for a risk profile and timeframe
// @Tags recommendations
// @Accept  json
// @Produce  json
// @Param   request  body    dto.RecommendationRequest   true    "Recommendation inputs"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendationHandler) CreateRecommendation(c echo.Context) error {
	var req dto.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	resp, err := h.recommendationService.Recommend(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
