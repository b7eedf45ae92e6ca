package repository

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// NewMemoryStore creates a process local store. Values never expire.
func NewMemoryStore() KVStore {
	return &memoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

type memoryStore struct {
	cache *cache.Cache
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	b := v.([]byte)
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	b := make([]byte, len(value))
	copy(b, value)
	s.cache.Set(key, b, cache.NoExpiration)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
