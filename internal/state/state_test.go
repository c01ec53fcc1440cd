package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitAndMiss(t *testing.T) {
	cache, err := Open(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	hash := Hash("document body v1")

	unchanged, err := cache.Unchanged(ctx, "uae-cit-article-1", hash)
	require.NoError(t, err)
	assert.False(t, unchanged, "unknown slug must be a miss")

	require.NoError(t, cache.Record(ctx, "uae-cit-article-1", "articles", hash, "run-1"))

	unchanged, err = cache.Unchanged(ctx, "uae-cit-article-1", hash)
	require.NoError(t, err)
	assert.True(t, unchanged)

	unchanged, err = cache.Unchanged(ctx, "uae-cit-article-1", Hash("document body v2"))
	require.NoError(t, err)
	assert.False(t, unchanged, "changed content must be a miss")
}

func TestRecordOverwrites(t *testing.T) {
	cache, err := Open(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Record(ctx, "s", "articles", Hash("v1"), "run-1"))
	require.NoError(t, cache.Record(ctx, "s", "articles", Hash("v2"), "run-2"))

	unchanged, err := cache.Unchanged(ctx, "s", Hash("v2"))
	require.NoError(t, err)
	assert.True(t, unchanged)

	n, err := cache.CountByKind(ctx, "articles")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHashDeterministic(t *testing.T) {
	assert.Equal(t, Hash("same"), Hash("same"))
	assert.NotEqual(t, Hash("a"), Hash("b"))
}
