package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	return store
}

func TestStore_AppendAssignsMonotonicOrdinals(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Append("x = 1")
	require.NoError(t, err)
	second, err := store.Append("y = 2")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Ordinal())
	assert.Equal(t, 2, second.Ordinal())
}

func TestStore_Lookup(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Append("x = 1")
	require.NoError(t, err)

	text, ok := store.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "x = 1", text)

	_, ok = store.Lookup(2)
	assert.False(t, ok)

	_, ok = store.Lookup(0)
	assert.False(t, ok)
}

func TestStore_CurrentOrdinal(t *testing.T) {
	store := newTestStore(t)

	ordinal, err := store.CurrentOrdinal()
	require.NoError(t, err)
	assert.Equal(t, 1, ordinal, "empty history: the invoking cell is the first execution")

	_, err = store.Append("x = 1")
	require.NoError(t, err)
	_, err = store.Append("y = 2")
	require.NoError(t, err)

	ordinal, err = store.CurrentOrdinal()
	require.NoError(t, err)
	assert.Equal(t, 3, ordinal)
}

func TestStore_SnapshotPreservesOrder(t *testing.T) {
	store := newTestStore(t)

	for _, source := range []string{"a", "b", "c"} {
		_, err := store.Append(source)
		require.NoError(t, err)
	}

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, IndexedLog{"a", "b", "c"}, snapshot)

	text, ok := snapshot.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "b", text)
}

func TestStore_RecentEntries(t *testing.T) {
	store := newTestStore(t)

	for _, source := range []string{"a", "b", "c", "d"} {
		_, err := store.Append(source)
		require.NoError(t, err)
	}

	entries, err := store.RecentEntries(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "c", entries[0].Source)
	assert.Equal(t, "d", entries[1].Source)
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Append("x = 1")
	require.NoError(t, err)
	require.NoError(t, store.Reset())

	_, ok := store.Lookup(1)
	assert.False(t, ok)
}

func TestStore_AsResolverSource(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Append("x = 1")
	require.NoError(t, err)

	resolver := NewResolver(store, nil)

	text, err := resolver.ResolvePrevious(2)
	require.NoError(t, err)
	assert.Equal(t, "x = 1", text)
}
