package oauth2

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// StateStore persists one-time CSRF states with a TTL. Consume removes the
// state, so a replayed callback fails validation.
type StateStore interface {
	Save(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

const redisStateKeyPrefix = "oauth2:state:"

// RedisStateStore is the Redis-backed StateStore for deployments with more
// than one instance.
type RedisStateStore struct {
	client redis.UniversalClient
}

var _ StateStore = (*RedisStateStore)(nil)

// NewRedisStateStore returns a StateStore backed by the given Redis client.
func NewRedisStateStore(client redis.UniversalClient) *RedisStateStore {
	return &RedisStateStore{client: client}
}

// Save stores the state with the given TTL.
func (s *RedisStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	return s.client.Set(ctx, redisStateKeyPrefix+state, 1, ttl).Err()
}

// Consume atomically reads and deletes the state. Returns false for unknown
// or already consumed states.
func (s *RedisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, redisStateKeyPrefix+state).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MemoryStateStore is an in-memory StateStore for single-instance and test use.
type MemoryStateStore struct {
	mu   sync.Mutex
	m    map[string]time.Time
	nowF func() time.Time
}

var _ StateStore = (*MemoryStateStore)(nil)

// NewMemoryStateStore returns an empty in-memory state store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		m:    make(map[string]time.Time),
		nowF: time.Now,
	}
}

// Save stores the state until its TTL elapses.
func (s *MemoryStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[state] = s.nowF().Add(ttl)
	return nil
}

// Consume removes the state and reports whether it was present and unexpired.
func (s *MemoryStateStore) Consume(ctx context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok := s.m[state]
	if !ok {
		return false, nil
	}
	delete(s.m, state)
	return expiresAt.After(s.nowF()), nil
}
