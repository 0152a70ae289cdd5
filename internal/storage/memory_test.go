package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/KayanRoberto/strata-cashflow/internal/common"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Read(ctx, "missing")
	require.True(t, errors.Is(err, common.ErrNotFound))

	require.NoError(t, store.Write(ctx, "k", []byte(`{"a":1}`)))

	got, err := store.Read(ctx, "k")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Read(ctx, "k")
	require.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, "k", []byte("abc")))

	got, err := store.Read(ctx, "k")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := store.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

func TestMemoryStore_Keys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, "b", []byte("1")))
	require.NoError(t, store.Write(ctx, "a", []byte("2")))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, keys)
}
