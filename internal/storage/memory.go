package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/KayanRoberto/strata-cashflow/internal/common"
)

// MemoryStore is an in-memory service.BlobStore used in tests and for
// throwaway runs. It is not safe for concurrent use; the application is
// single-threaded by design.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Read returns the blob stored under key.
func (m *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	value, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %q: %w", key, common.ErrNotFound)
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Write replaces the blob stored under key.
func (m *MemoryStore) Write(ctx context.Context, key string, data []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w: data", ErrNilParameter)
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

// Delete removes the blob stored under key.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	delete(m.blobs, key)
	return nil
}

// Keys lists every key currently stored.
func (m *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(m.blobs))
	for key := range m.blobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
