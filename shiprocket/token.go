package shiprocket

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTokenKey is the redis key the shared auth token is held under
const DefaultTokenKey = "shiprocket:auth-token"

// TokenStore caches the Shiprocket bearer token between calls
type TokenStore interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// MemoryTokenStore holds the token for a single process
type MemoryTokenStore struct {
	mu     sync.Mutex
	token  string
	expiry time.Time
	now    func() time.Time
}

// NewMemoryTokenStore returns an empty in-process token cache
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{now: time.Now}
}

// Get returns the cached token if one is held and has not expired
func (s *MemoryTokenStore) Get(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" || !s.expiry.After(s.now()) {
		return "", false, nil
	}
	return s.token, true, nil
}

// Set replaces the cached token
func (s *MemoryTokenStore) Set(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiry = s.now().Add(ttl)
	return nil
}

// Delete drops the cached token
func (s *MemoryTokenStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiry = time.Time{}
	return nil
}

// RedisTokenStore shares one token between every replica pointed at the same
// redis. Expiry is left to the key TTL.
type RedisTokenStore struct {
	client *redis.Client
	key    string
}

// NewRedisTokenStore returns a store using the given client. An empty key
// falls back to DefaultTokenKey.
func NewRedisTokenStore(client *redis.Client, key string) *RedisTokenStore {
	if key == "" {
		key = DefaultTokenKey
	}
	return &RedisTokenStore{client: client, key: key}
}

// Get returns the token if the key exists
func (s *RedisTokenStore) Get(ctx context.Context) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading shiprocket token from redis: [%w]", err)
	}
	return token, token != "", nil
}

// Set stores the token with the given TTL
func (s *RedisTokenStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("error writing shiprocket token to redis: [%w]", err)
	}
	return nil
}

// Delete removes the key
func (s *RedisTokenStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("error deleting shiprocket token from redis: [%w]", err)
	}
	return nil
}
