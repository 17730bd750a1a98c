package storage

import (
	"context"

	"tokenomics-lab/internal/domain"
)

// PreviewStore memoizes computed previews keyed by the parameters key.
// Stored previews are shared and must be treated as read-only.
type PreviewStore interface {
	// Insert adds a preview. Returns ErrDuplicateKey if the key exists.
	Insert(ctx context.Context, p *domain.Preview) error

	// GetByKey retrieves a preview by its parameters key. Returns ErrNotFound if not exists.
	GetByKey(ctx context.Context, key string) (*domain.Preview, error)

	// Keys returns all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)

	// Len returns the number of stored previews.
	Len(ctx context.Context) (int, error)
}
