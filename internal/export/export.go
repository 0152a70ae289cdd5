// Package export implements the out-of-core collaborators for data
// export and full reset.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/common"
	"github.com/KayanRoberto/strata-cashflow/internal/service"
)

// Backup is the single JSON document produced by an export: the four
// persisted blobs plus the export timestamp.
type Backup struct {
	ExportDate   time.Time       `json:"exportDate"`
	Transactions json.RawMessage `json:"transactions"`
	Categories   json.RawMessage `json:"categories"`
	Goals        json.RawMessage `json:"goals"`
	Gamification json.RawMessage `json:"gamification"`
}

// Snapshot collects every persisted blob into a Backup. Blobs that
// were never written export as JSON null.
func Snapshot(ctx context.Context, blobs service.BlobStore) (*Backup, error) {
	backup := &Backup{ExportDate: time.Now()}

	for key, dst := range map[string]*json.RawMessage{
		service.KeyTransactions: &backup.Transactions,
		service.KeyCategories:   &backup.Categories,
		service.KeyGoals:        &backup.Goals,
		service.KeyGamification: &backup.Gamification,
	} {
		data, err := blobs.Read(ctx, key)
		if errors.Is(err, common.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", key, err)
		}
		*dst = data
	}

	return backup, nil
}

// Write renders the backup as indented JSON.
func (b *Backup) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Reset deletes every persisted blob. The next ledger construction
// reseeds the default category catalog.
func Reset(ctx context.Context, blobs service.BlobStore) error {
	keys, err := blobs.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list blobs for reset: %w", err)
	}

	for _, key := range keys {
		if err := blobs.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}

	slog.Info("reset all persisted data", "blobs_removed", len(keys))
	return nil
}
