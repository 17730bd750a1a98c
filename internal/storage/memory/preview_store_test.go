package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/storage"
)

func newPreview(key string) *domain.Preview {
	return &domain.Preview{
		Key:      key,
		Schedule: &domain.ScheduleResult{},
		Series:   &domain.ScheduleSeries{},
		Summary:  &domain.Summary{Epochs: 3},
	}
}

func TestPreviewStore_InsertAndGet(t *testing.T) {
	store := NewPreviewStore()
	ctx := context.Background()

	p := newPreview("abc")
	require.NoError(t, store.Insert(ctx, p))

	got, err := store.GetByKey(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Equal(t, 3, got.Summary.Epochs)
}

func TestPreviewStore_DuplicateKey(t *testing.T) {
	store := NewPreviewStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, newPreview("abc")))

	err := store.Insert(ctx, newPreview("abc"))
	assert.True(t, errors.Is(err, storage.ErrDuplicateKey), "got %v", err)
}

func TestPreviewStore_NotFound(t *testing.T) {
	store := NewPreviewStore()

	_, err := store.GetByKey(context.Background(), "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)
}

func TestPreviewStore_InvalidInput(t *testing.T) {
	store := NewPreviewStore()
	ctx := context.Background()

	tests := []struct {
		name string
		p    *domain.Preview
	}{
		{"nil", nil},
		{"empty key", newPreview("")},
		{"missing schedule", &domain.Preview{Key: "k", Series: &domain.ScheduleSeries{}, Summary: &domain.Summary{}}},
		{"missing summary", &domain.Preview{Key: "k", Schedule: &domain.ScheduleResult{}, Series: &domain.ScheduleSeries{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(store.Insert(ctx, tt.p), storage.ErrInvalidInput))
		})
	}
}

func TestPreviewStore_KeysSorted(t *testing.T) {
	store := NewPreviewStore()
	ctx := context.Background()

	for _, k := range []string{"c", "a", "b"} {
		require.NoError(t, store.Insert(ctx, newPreview(k)))
	}

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPreviewStore_ConcurrentInsert(t *testing.T) {
	store := NewPreviewStore()
	ctx := context.Background()

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		duplicates int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Insert(ctx, newPreview(fmt.Sprintf("k%d", i%10)))
			if errors.Is(err, storage.ErrDuplicateKey) {
				mu.Lock()
				duplicates++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 40, duplicates)
}
