package docstores

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSet_WritesDocumentAsJSON(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	err := store.Set(ctx, "pageViews_se", "doc1", map[string]any{
		"path":       "/loppsidor/vasaloppet/",
		"timeOnPage": 12.5,
	})
	require.NoError(t, err)

	fullPath := filepath.Join(store.(*fileStore).dir, "pageViews_se", "doc1.json")
	content, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/loppsidor/vasaloppet/","timeOnPage":12.5}`, string(content))
}

func TestSet_FullyOverwritesPriorDocument(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	err := store.Set(ctx, "processed_analytics", "latest", map[string]any{"old": true, "kept": false})
	require.NoError(t, err)

	err = store.Set(ctx, "processed_analytics", "latest", map[string]any{"new": true})
	require.NoError(t, err)

	docs, err := store.GetAll(ctx, "processed_analytics")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	// Prior content must be fully replaced, not merged
	assert.Equal(t, map[string]any{"new": true}, docs[0].Fields)
}

func TestSet_InvalidNames(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	invalidNames := []string{"", ".", "..", "../escape", "a/b", "/abs"}

	for _, name := range invalidNames {
		err := store.Set(ctx, name, "doc", map[string]any{})
		assert.ErrorIs(t, err, ErrInvalidName, "collection %q should be rejected", name)

		err = store.Set(ctx, "collection", name, map[string]any{})
		assert.ErrorIs(t, err, ErrInvalidName, "document ID %q should be rejected", name)
	}
}

func TestGetAll_MissingCollectionReadsAsEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	docs, err := store.GetAll(context.Background(), "pageViews_xx")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGetAll_ReturnsDocumentsSortedByID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "pageViews_se", "b", map[string]any{"n": 2}))
	require.NoError(t, store.Set(ctx, "pageViews_se", "a", map[string]any{"n": 1}))
	require.NoError(t, store.Set(ctx, "pageViews_se", "c", map[string]any{"n": 3}))

	docs, err := store.GetAll(ctx, "pageViews_se")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestQuery_StringRangeFilters(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "pageViews_se", "in1", map[string]any{"path": "/loppsidor/a/"}))
	require.NoError(t, store.Set(ctx, "pageViews_se", "in2", map[string]any{"path": "/loppsidor/z/"}))
	require.NoError(t, store.Set(ctx, "pageViews_se", "out", map[string]any{"path": "/om-oss/"}))

	docs, err := store.Query(ctx, "pageViews_se",
		Filter{Field: "path", Op: OpGreaterOrEqual, Value: "/loppsidor/"},
		Filter{Field: "path", Op: OpLessOrEqual, Value: "/loppsidor/"},
	)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "in1", docs[0].ID)
	assert.Equal(t, "in2", docs[1].ID)
}

func TestQuery_MissingFieldDoesNotMatch(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "pageViews_se", "no-path", map[string]any{"referrer": "x"}))

	docs, err := store.Query(ctx, "pageViews_se",
		Filter{Field: "path", Op: OpGreaterOrEqual, Value: "/"})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestQuery_NumericEquality(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "pageViews_se", "d1", map[string]any{"timeOnPage": 30}))
	require.NoError(t, store.Set(ctx, "pageViews_se", "d2", map[string]any{"timeOnPage": 31}))

	// JSON decoding yields float64; the filter value is an int
	docs, err := store.Query(ctx, "pageViews_se",
		Filter{Field: "timeOnPage", Op: OpEqual, Value: 30})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestNewFileStore_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStore("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}
