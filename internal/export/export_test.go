package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/KayanRoberto/strata-cashflow/internal/ledger"
	"github.com/KayanRoberto/strata-cashflow/internal/service"
	"github.com/KayanRoberto/strata-cashflow/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CollectsAllBlobs(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()

	// Construct a ledger so categories get seeded.
	_, err := ledger.NewStore(ctx, blobs)
	require.NoError(t, err)
	require.NoError(t, blobs.Write(ctx, service.KeyTransactions, []byte(`[{"id":"t1"}]`)))
	require.NoError(t, blobs.Write(ctx, service.KeyGamification, []byte(`{"achievements":[]}`)))

	backup, err := Snapshot(ctx, blobs)
	require.NoError(t, err)

	assert.False(t, backup.ExportDate.IsZero())
	assert.JSONEq(t, `[{"id":"t1"}]`, string(backup.Transactions))
	assert.NotEmpty(t, backup.Categories)
	assert.Nil(t, backup.Goals, "never-written blob exports as null")

	var buf bytes.Buffer
	require.NoError(t, backup.Write(&buf))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "exportDate")
	assert.Contains(t, decoded, "transactions")
}

func TestReset_ClearsEverythingAndReseeds(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()

	store, err := ledger.NewStore(ctx, blobs)
	require.NoError(t, err)
	_, err = store.AddGoal(ctx, ledger.GoalInput{Name: "Viagem", Type: "accumulated", TargetAmount: 100})
	require.NoError(t, err)

	require.NoError(t, Reset(ctx, blobs))

	keys, err := blobs.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	// A fresh ledger reloads default categories and nothing else.
	fresh, err := ledger.NewStore(ctx, blobs)
	require.NoError(t, err)
	assert.Len(t, fresh.Categories(), 10)
	assert.Empty(t, fresh.Goals())
	assert.Empty(t, fresh.Transactions())
}
