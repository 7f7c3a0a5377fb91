// File: services/quote/store.go
package quote

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"movelink/models"
	"movelink/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds draft snapshots between wizard actions.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.QuoteDraft, error)
	Set(ctx context.Context, sessionID string, draft *models.QuoteDraft) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps drafts in Redis under a key prefix with a TTL,
// refreshed on every write so an active session never expires mid-wizard.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteDraft, error) {
	key := utils.QuoteSessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var draft models.QuoteDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, draft *models.QuoteDraft) error {
	key := utils.QuoteSessionPrefix + sessionID
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	key := utils.QuoteSessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// MemorySessionStore is the in-process fallback used by tests and local
// development without Redis.
type MemorySessionStore struct {
	mu     sync.RWMutex
	drafts map[string]models.QuoteDraft
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{drafts: make(map[string]models.QuoteDraft)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &draft, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, sessionID string, draft *models.QuoteDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = *draft
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
