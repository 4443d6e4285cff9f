package service

import (
	"context"
	"fmt"
	"strings"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/internal/advisor/intent"
	"crypto-advisor/internal/advisor/repository"
	"crypto-advisor/pkg/common"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/utils"

	"github.com/google/uuid"
)

const (
	advisorWelcomeText   = "Hello! I'm your AI Crypto Advisor powered by Gemini AI. How can I help with your investment decisions today?"
	assistantWelcomeText = "Hello! I'm your AI investment assistant. I can help you analyze your portfolio, provide market insights, and answer your investment questions. What would you like to know today?"
)

// ChatService manages chat sessions and answers messages through the AI relay
// or the intent-driven assistant.
type ChatService interface {
	StartSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.ChatSession, error)
	GetSession(ctx context.Context, id string) (*dto.ChatSession, error)
	EndSession(ctx context.Context, id string) error
	SendAdvisorMessage(ctx context.Context, sessionID, text string) (*dto.ChatReply, error)
	SendAssistantMessage(ctx context.Context, sessionID, text string) (*dto.ChatReply, error)
}

// NewChatService creates a new chat service.
func NewChatService(
	sessionRepo repository.ChatSessionRepository,
	relay Relay,
	assistant Assistant,
	log *logger.Logger,
) ChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		relay:       relay,
		assistant:   assistant,
		logger:      log,
	}
}

type chatService struct {
	sessionRepo repository.ChatSessionRepository
	relay       Relay
	assistant   Assistant
	logger      *logger.Logger
}

// StartSession creates a session holding a single welcome message.
func (s *chatService) StartSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.ChatSession, error) {
	channel := req.Channel
	if channel == "" {
		channel = dto.ChannelAssistant
	}
	welcome := assistantWelcomeText
	switch channel {
	case dto.ChannelAssistant:
	case dto.ChannelAdvisor:
		welcome = advisorWelcomeText
	default:
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, channel)
	}

	userID := req.UserID
	if userID == "" {
		userID = common.DefaultUserID
	}

	session := &dto.ChatSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Channel:   channel,
		CreatedAt: utils.TimeNowUTC(),
		Messages:  []dto.ChatMessage{newMessage(dto.MessageTypeBot, welcome)},
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create chat session", logger.ErrorField(err))
		return nil, err
	}
	return session, nil
}

func (s *chatService) GetSession(ctx context.Context, id string) (*dto.ChatSession, error) {
	return s.sessionRepo.Get(ctx, id)
}

// EndSession discards the session and its transcript.
func (s *chatService) EndSession(ctx context.Context, id string) error {
	return s.sessionRepo.Delete(ctx, id)
}

// SendAdvisorMessage relays text to the AI advisor. Relay failures produce
// the apology reply, not an error.
func (s *chatService) SendAdvisorMessage(ctx context.Context, sessionID, text string) (*dto.ChatReply, error) {
	text, err := validateMessage(text)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessionRepo.Get(ctx, sessionID); err != nil {
		return nil, err
	}

	reply, _ := s.relay.Ask(ctx, text)
	metrics.ChatMessages.WithLabelValues(string(dto.ChannelAdvisor), "").Inc()

	return s.record(ctx, sessionID, newMessage(dto.MessageTypeUser, text), newMessage(dto.MessageTypeBot, reply))
}

// SendAssistantMessage classifies text and answers it from local data.
func (s *chatService) SendAssistantMessage(ctx context.Context, sessionID, text string) (*dto.ChatReply, error) {
	text, err := validateMessage(text)
	if err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kind := intent.Classify(text)
	metrics.ChatMessages.WithLabelValues(string(dto.ChannelAssistant), string(kind)).Inc()

	answer := s.assistant.Answer(ctx, session.UserID, kind)
	reply := newMessage(dto.MessageTypeBot, answer.Text)
	reply.Intent = string(kind)
	if answer.Data != nil {
		reply.Data = answer.Data
	}

	return s.record(ctx, sessionID, newMessage(dto.MessageTypeUser, text), reply)
}

func (s *chatService) record(ctx context.Context, sessionID string, userMsg, reply dto.ChatMessage) (*dto.ChatReply, error) {
	if err := s.sessionRepo.Append(ctx, sessionID, userMsg, reply); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store chat messages", logger.ErrorField(err), logger.StringField("session_id", sessionID))
		return nil, err
	}
	return &dto.ChatReply{SessionID: sessionID, UserMessage: userMsg, Reply: reply}, nil
}

func validateMessage(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text must not be empty", ErrInvalidInput)
	}
	return text, nil
}

func newMessage(kind dto.MessageType, text string) dto.ChatMessage {
	return dto.ChatMessage{
		ID:        uuid.NewString(),
		Type:      kind,
		Text:      text,
		Timestamp: utils.TimeNowUTC(),
	}
}
