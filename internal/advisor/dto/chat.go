package dto

import "time"

// MessageType tells who authored a chat message.
type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeBot  MessageType = "bot"
)

// ChatChannel picks the welcome message of a session.
type ChatChannel string

const (
	ChannelAdvisor   ChatChannel = "advisor"
	ChannelAssistant ChatChannel = "assistant"
)

// ChatMessage is one entry of a chat session transcript.
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
	Intent    string      `json:"intent,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// ChatSession is an explicit conversation created at session start and
// discarded at session end.
type ChatSession struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Channel   ChatChannel   `json:"channel"`
	CreatedAt time.Time     `json:"created_at"`
	Messages  []ChatMessage `json:"messages"`
}

// CreateSessionRequest is the optional body of POST /chat/sessions.
type CreateSessionRequest struct {
	UserID  string      `json:"user_id,omitempty"`
	Channel ChatChannel `json:"channel,omitempty"`
}

// SendMessageRequest is the body of the advisor and assistant endpoints.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ChatReply carries the stored user message and the reply produced for it.
type ChatReply struct {
	SessionID   string      `json:"session_id"`
	UserMessage ChatMessage `json:"user_message"`
	Reply       ChatMessage `json:"reply"`
}
