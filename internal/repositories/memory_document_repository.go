package repositories

import (
	"context"
	"sync"
)

// MemoryDocumentRepo keeps documents in process memory.
type MemoryDocumentRepo struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryDocumentRepo constructs an empty MemoryDocumentRepo.
func NewMemoryDocumentRepo() *MemoryDocumentRepo {
	return &MemoryDocumentRepo{docs: make(map[string][]byte)}
}

func (r *MemoryDocumentRepo) GetDocument(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	body, ok := r.docs[key]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return append([]byte(nil), body...), nil
}

func (r *MemoryDocumentRepo) PutDocument(_ context.Context, key string, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = append([]byte(nil), body...)
	return nil
}

func (r *MemoryDocumentRepo) DeleteDocument(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, key)
	return nil
}

var (
	_ DocumentRepository = (*DocumentRepo)(nil)
	_ DocumentRepository = (*RedisDocumentRepo)(nil)
	_ DocumentRepository = (*MemoryDocumentRepo)(nil)
)
