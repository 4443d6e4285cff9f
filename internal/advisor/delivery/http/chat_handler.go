package http

import (
	"net/http"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/service"
	"crypto-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles HTTP requests for chat sessions.
type ChatHandler struct {
	chatService service.ChatService
	logger      *logger.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

// RegisterRoutes registers the chat routes to the Echo group.
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sessions", h.CreateSession)
	g.GET("/sessions/:id/messages", h.GetMessages)
	g.DELETE("/sessions/:id", h.DeleteSession)
	g.POST("/sessions/:id/advisor", h.SendAdvisorMessage)
	g.POST("/sessions/:id/assistant", h.SendAssistantMessage)
}

// CreateSession godoc
// @Summary Start a chat session
// @Description Start a session on the advisor or assistant channel. The session opens with a welcome message.
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   request  body    dto.CreateSessionRequest   false    "Session options"
// @Success 201 {object} dto.ChatSession
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/sessions [post]
func (h *ChatHandler) CreateSession(c echo.Context) error {
	var req dto.CreateSessionRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return invalidPayload(c)
		}
	}

	session, err := h.chatService.StartSession(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, session)
}

// GetMessages godoc
// @Summary Get session messages
// @Description Get the ordered transcript of a chat session
// @Tags chat
// @Produce  json
// @Param   id  path    string true    "Session ID"
// @Success 200 {array} dto.ChatMessage
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/messages [get]
func (h *ChatHandler) GetMessages(c echo.Context) error {
	session, err := h.chatService.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, session.Messages)
}

// DeleteSession godoc
// @Summary End a chat session
// @Description Discard a chat session and its transcript
// @Tags chat
// @Param   id  path    string true    "Session ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(c echo.Context) error {
	if err := h.chatService.EndSession(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SendAdvisorMessage godoc
// @Summary Ask the AI advisor
// @Description Relay a message to Gemini. Provider failures produce an apology reply, not an error.
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Session ID"
// @Param   request  body    dto.SendMessageRequest   true    "Message"
// @Success 200 {object} dto.ChatReply
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/advisor [post]
func (h *ChatHandler) SendAdvisorMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	reply, err := h.chatService.SendAdvisorMessage(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, reply)
}

// SendAssistantMessage godoc
// @Summary Ask the investment assistant
// @Description Classify a message and answer it from portfolio, market and recommendation data
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Session ID"
// @Param   request  body    dto.SendMessageRequest   true    "Message"
// @Success 200 {object} dto.ChatReply
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/assistant [post]
func (h *ChatHandler) SendAssistantMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	reply, err := h.chatService.SendAssistantMessage(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return errorJSON(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, reply)
}
