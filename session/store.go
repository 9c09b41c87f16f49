package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a session id has no stored record, either
// because it expired or because it was destroyed on logout or upstream 401.
var ErrNotFound = errors.New("session not found")

const storeKeyPrefix = "console_session:"

// Store persists encrypted session records keyed by session id.
type Store interface {
	Set(ctx context.Context, id, encrypted string, ttl time.Duration) error
	Get(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, id, encrypted string, ttl time.Duration) error {
	return s.client.Set(ctx, storeKeyPrefix+id, encrypted, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	val, err := s.client.Get(ctx, storeKeyPrefix+id).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, storeKeyPrefix+id).Err()
}

// MemoryStore is the fallback used when Redis is unreachable. Sessions do not
// survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	encrypted string
	expiresAt time.Time
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

func (s *MemoryStore) Set(ctx context.Context, id, encrypted string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = memoryRecord{
		encrypted: encrypted,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	if time.Now().After(rec.expiresAt) {
		s.mu.Lock()
		delete(s.records, id)
		s.mu.Unlock()
		return "", ErrNotFound
	}
	return rec.encrypted, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
