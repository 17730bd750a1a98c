package memory

import (
	"context"
	"sort"
	"sync"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/storage"
)

// PreviewStore is an in-memory implementation of storage.PreviewStore.
type PreviewStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Preview // keyed by parameters key
}

// NewPreviewStore creates a new in-memory preview store.
func NewPreviewStore() *PreviewStore {
	return &PreviewStore{
		data: make(map[string]*domain.Preview),
	}
}

// Insert adds a new preview. Returns ErrDuplicateKey if key exists.
func (s *PreviewStore) Insert(_ context.Context, p *domain.Preview) error {
	if p == nil || p.Key == "" || p.Schedule == nil || p.Series == nil || p.Summary == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.Key]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[p.Key] = p
	return nil
}

// GetByKey retrieves a preview by key. Returns ErrNotFound if not exists.
func (s *PreviewStore) GetByKey(_ context.Context, key string) (*domain.Preview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[key]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return p, nil
}

// Keys returns all stored keys in ascending order.
func (s *PreviewStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Len returns the number of stored previews.
func (s *PreviewStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data), nil
}

var _ storage.PreviewStore = (*PreviewStore)(nil)
