package localcart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists the local mirror so it survives client restarts.
type Store interface {
	Load(ctx context.Context, ownerKey string) ([]Entry, error)
	Save(ctx context.Context, ownerKey string, entries []Entry) error
	Clear(ctx context.Context, ownerKey string) error
}

const (
	keyPrefix = "localcart:"
	entryTTL  = 30 * 24 * time.Hour
)

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Load(ctx context.Context, ownerKey string) ([]Entry, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+ownerKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *redisStore) Save(ctx context.Context, ownerKey string, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+ownerKey, raw, entryTTL).Err()
}

func (s *redisStore) Clear(ctx context.Context, ownerKey string) error {
	return s.rdb.Del(ctx, keyPrefix+ownerKey).Err()
}

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]Entry
}

func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]Entry)}
}

func (s *memoryStore) Load(_ context.Context, ownerKey string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, len(s.data[ownerKey]))
	copy(entries, s.data[ownerKey])
	return entries, nil
}

func (s *memoryStore) Save(_ context.Context, ownerKey string, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	s.data[ownerKey] = cp
	return nil
}

func (s *memoryStore) Clear(_ context.Context, ownerKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, ownerKey)
	return nil
}
