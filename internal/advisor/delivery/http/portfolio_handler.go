package http

import (
	"net/http"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for user profiles and investments.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterUserRoutes registers the per-user routes to the Echo group.
func (h *PortfolioHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/:id/profile", h.GetProfile)
	g.GET("/:id/investments", h.GetInvestments)
	g.GET("/:id/portfolio", h.GetPortfolio)
}

// RegisterInvestmentRoutes registers the investment routes to the Echo group.
func (h *PortfolioHandler) RegisterInvestmentRoutes(g *echo.Group) {
	g.POST("", h.ExecuteInvestment)
	g.POST("/:id/feedback", h.SubmitFeedback)
}

// GetProfile godoc
// @Summary Get a user profile
// @Tags users
// @Produce  json
// @Param   id  path    string true    "User ID"
// @Success 200 {object} dto.UserProfile
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/profile [get]
func (h *PortfolioHandler) GetProfile(c echo.Context) error {
	profile, err := h.portfolioService.GetUserProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetInvestments godoc
// @Summary Get investment history
// @Tags users
// @Produce  json
// @Param   id  path    string true    "User ID"
// @Success 200 {array} dto.InvestmentRecord
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/investments [get]
func (h *PortfolioHandler) GetInvestments(c echo.Context) error {
	records, err := h.portfolioService.GetInvestmentHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, records)
}

// GetPortfolio godoc
// @Summary Get portfolio summary
// @Description Total value, profit and value-weighted performance of the user's investments
// @Tags users
// @Produce  json
// @Param   id  path    string true    "User ID"
// @Success 200 {object} dto.PortfolioSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	summary, err := h.portfolioService.Summary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ExecuteInvestment godoc
// @Summary Execute an investment
// @Description Record a new active position at the given price
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   request  body    dto.ExecuteInvestmentRequest   true    "Investment"
// @Success 201 {object} dto.ExecuteInvestmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /investments [post]
func (h *PortfolioHandler) ExecuteInvestment(c echo.Context) error {
	var req dto.ExecuteInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	resp, err := h.portfolioService.ExecuteInvestment(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// SubmitFeedback godoc
// @Summary Submit investment feedback
// @Description Store the outcome of an investment and an optional 1-5 rating
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Investment ID"
// @Param   request  body    dto.FeedbackRequest   true    "Feedback"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /investments/{id}/feedback [post]
func (h *PortfolioHandler) SubmitFeedback(c echo.Context) error {
	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	resp, err := h.portfolioService.SubmitFeedback(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
