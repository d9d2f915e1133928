package kvstore

import (
	"context"
	"sync"
)

// MemoryRepository keeps key-value pairs in a map. Nothing survives a
// restart; it backs tests and the "memory" storage backend.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
