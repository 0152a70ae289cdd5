// Package service defines the contracts between the core and its
// collaborators.
package service

import "context"

// Storage keys for the persisted blobs. Consumers must treat each blob
// as a full replacement on every write.
const (
	KeyTransactions = "financial_transactions"
	KeyCategories   = "financial_categories"
	KeyGoals        = "financial_goals"
	KeyGamification = "gamification_data"
)

// BlobStore is the persistence port for the ledger and gamification
// state. Each key holds one JSON-serialized list or document; writes
// always replace the whole value.
type BlobStore interface {
	// Read returns the blob stored under key, or ErrNotFound-wrapped
	// error when the key has never been written.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the blob stored under key.
	Write(ctx context.Context, key string, data []byte) error

	// Delete removes the blob stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key currently stored.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}
