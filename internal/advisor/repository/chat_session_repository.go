package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/common"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// sessionHeader is what is stored under the session key; messages live in a separate list.
type sessionHeader struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Channel   dto.ChatChannel `json:"channel"`
	CreatedAt time.Time       `json:"created_at"`
}

func sessionKey(id string) string {
	return fmt.Sprintf(common.RedisKeyChatSession, id)
}

func messagesKey(id string) string {
	return sessionKey(id) + ":messages"
}

// redisChatSessionRepository stores each session as a header key plus a Redis
// list of JSON messages. Both keys share the session TTL, renewed on append.
type redisChatSessionRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisChatSessionRepository creates a Redis-backed ChatSessionRepository.
func NewRedisChatSessionRepository(redisClient *redis.Client, ttl time.Duration) ChatSessionRepository {
	return &redisChatSessionRepository{redisClient: redisClient, ttl: ttl}
}

func (r *redisChatSessionRepository) Create(ctx context.Context, session *dto.ChatSession) error {
	header, err := json.Marshal(sessionHeader{ID: session.ID, UserID: session.UserID, Channel: session.Channel, CreatedAt: session.CreatedAt})
	if err != nil {
		return err
	}

	pipe := r.redisClient.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), header, r.ttl)
	if len(session.Messages) > 0 {
		values, err := encodeMessages(session.Messages)
		if err != nil {
			return err
		}
		pipe.RPush(ctx, messagesKey(session.ID), values...)
		pipe.Expire(ctx, messagesKey(session.ID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

func (r *redisChatSessionRepository) Get(ctx context.Context, id string) (*dto.ChatSession, error) {
	raw, err := r.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read chat session: %w", err)
	}

	var header sessionHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("failed to decode chat session: %w", err)
	}

	items, err := r.redisClient.LRange(ctx, messagesKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}

	messages := make([]dto.ChatMessage, 0, len(items))
	for _, item := range items {
		var m dto.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		messages = append(messages, m)
	}

	return &dto.ChatSession{
		ID:        header.ID,
		UserID:    header.UserID,
		Channel:   header.Channel,
		CreatedAt: header.CreatedAt,
		Messages:  messages,
	}, nil
}

func (r *redisChatSessionRepository) Append(ctx context.Context, id string, messages ...dto.ChatMessage) error {
	exists, err := r.redisClient.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to check chat session: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	values, err := encodeMessages(messages)
	if err != nil {
		return err
	}

	pipe := r.redisClient.TxPipeline()
	pipe.RPush(ctx, messagesKey(id), values...)
	pipe.Expire(ctx, messagesKey(id), r.ttl)
	pipe.Expire(ctx, sessionKey(id), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat messages: %w", err)
	}
	return nil
}

func (r *redisChatSessionRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.redisClient.Del(ctx, sessionKey(id), messagesKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeMessages(messages []dto.ChatMessage) ([]interface{}, error) {
	values := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		raw, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to encode chat message: %w", err)
		}
		values = append(values, raw)
	}
	return values, nil
}

// memoryChatSessionRepository keeps sessions in process memory. Used when Redis is disabled.
type memoryChatSessionRepository struct {
	mu       sync.Mutex
	sessions *cache.Cache
	ttl      time.Duration
}

// NewMemoryChatSessionRepository creates an in-process ChatSessionRepository.
func NewMemoryChatSessionRepository(ttl time.Duration) ChatSessionRepository {
	return &memoryChatSessionRepository{
		sessions: cache.New(ttl, 10*time.Minute),
		ttl:      ttl,
	}
}

func (r *memoryChatSessionRepository) Create(_ context.Context, session *dto.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	stored.Messages = append([]dto.ChatMessage(nil), session.Messages...)
	r.sessions.Set(session.ID, &stored, r.ttl)
	return nil
}

func (r *memoryChatSessionRepository) Get(_ context.Context, id string) (*dto.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.sessions.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	stored := v.(*dto.ChatSession)
	out := *stored
	out.Messages = append([]dto.ChatMessage(nil), stored.Messages...)
	return &out, nil
}

func (r *memoryChatSessionRepository) Append(_ context.Context, id string, messages ...dto.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.sessions.Get(id)
	if !ok {
		return ErrNotFound
	}
	stored := v.(*dto.ChatSession)
	stored.Messages = append(stored.Messages, messages...)
	r.sessions.Set(id, stored, r.ttl)
	return nil
}

func (r *memoryChatSessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions.Get(id); !ok {
		return ErrNotFound
	}
	r.sessions.Delete(id)
	return nil
}
