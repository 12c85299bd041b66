package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing document loads as nil", func(t *testing.T) {
		store, err := NewFileSnapshotStore(t.TempDir())
		require.NoError(t, err)

		data, err := store.Load(ctx, "ordemFacilDados")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileSnapshotStore(dir)
		require.NoError(t, err)

		payload := []byte(`{"ordens":[]}`)
		require.NoError(t, store.Save(ctx, "ordemFacilDados", payload))

		data, err := store.Load(ctx, "ordemFacilDados")
		require.NoError(t, err)
		assert.Equal(t, payload, data)

		// One file per key, named after it.
		_, err = os.Stat(filepath.Join(dir, "ordemFacilDados.json"))
		require.NoError(t, err)
	})

	t.Run("save replaces the whole document", func(t *testing.T) {
		store, err := NewFileSnapshotStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "serviceProdutoItems", []byte(`[{"id":1}]`)))
		require.NoError(t, store.Save(ctx, "serviceProdutoItems", []byte(`[]`)))

		data, err := store.Load(ctx, "serviceProdutoItems")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), data)
	})

	t.Run("no leftover temp files", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileSnapshotStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, "ordemFacilDados", []byte("{}")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "ordemFacilDados.json", entries[0].Name())
	})
}

func TestMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySnapshotStore()

	data, err := store.Load(ctx, "ordemFacilDados")
	require.NoError(t, err)
	assert.Nil(t, data)

	payload := []byte(`{"ordens":[]}`)
	require.NoError(t, store.Save(ctx, "ordemFacilDados", payload))

	got, err := store.Load(ctx, "ordemFacilDados")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// The store hands out copies, not aliases into its own buffer.
	got[0] = 'x'
	again, err := store.Load(ctx, "ordemFacilDados")
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}
