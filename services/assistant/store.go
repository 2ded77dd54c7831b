package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"brewvoice/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a session id has no stored snapshot.
var ErrSessionNotFound = errors.New("session not found or expired")

// SessionStore persists session snapshots between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	Set(ctx context.Context, snapshot *models.SessionSnapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps snapshots in Redis with a TTL. An expired
// snapshot simply starts the customer over with a fresh order.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "assistant:session:" + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}
	var snapshot models.SessionSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse session snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, snapshot *models.SessionSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(snapshot.Session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session snapshot: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session snapshot: %w", err)
	}
	return nil
}

// MemorySessionStore is an in-process SessionStore for tests and
// single-node development without Redis.
type MemorySessionStore struct {
	mu        sync.Mutex
	snapshots map[string]models.SessionSnapshot
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{snapshots: make(map[string]models.SessionSnapshot)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.snapshots[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &snapshot, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, snapshot *models.SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.Session.SessionID] = *snapshot
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}
