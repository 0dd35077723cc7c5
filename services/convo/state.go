package convo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const statePrefix = "convo:state:"

// StateStore persists per-session conversations between message
// exchanges. A session's state has exactly one owner at a time.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (*Conversation, error)
	Set(ctx context.Context, sessionID string, conv *Conversation) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStateStore keeps conversation state in Redis with a TTL so
// abandoned sessions age out.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

// Get loads the session's conversation, or a fresh one if none exists.
func (s *RedisStateStore) Get(ctx context.Context, sessionID string) (*Conversation, error) {
	data, err := s.client.Get(ctx, statePrefix+sessionID).Result()
	if err == redis.Nil {
		return NewConversation(), nil
	}
	if err != nil {
		return nil, err
	}
	var conv Conversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, err
	}
	if conv.State == nil {
		conv.State = NewConversation().State
	}
	return &conv, nil
}

func (s *RedisStateStore) Set(ctx context.Context, sessionID string, conv *Conversation) error {
	b, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statePrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, statePrefix+sessionID).Err()
}
