//nolint:testpackage // Testing internal store requires same package access
package corpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiseai/quote-engine/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RebuildAndLoadAll(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	quotes := []domain.Quote{
		{Text: "first", Author: "Alice", Tags: "wisdom", Emotion: domain.EmotionWisdom},
		{Text: "second", Author: "Bob", Emotion: domain.EmotionHope},
	}
	require.NoError(t, store.Rebuild(ctx, quotes))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Insertion order is preserved.
	assert.Equal(t, "first", loaded[0].Text)
	assert.Equal(t, "Alice", loaded[0].Author)
	assert.Equal(t, "wisdom", loaded[0].Tags)
	assert.Equal(t, domain.EmotionWisdom, loaded[0].Emotion)
	assert.Equal(t, "second", loaded[1].Text)
}

func TestStore_RebuildReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Rebuild(ctx, []domain.Quote{
		{Text: "old", Author: "A", Emotion: domain.EmotionGeneral},
	}))
	require.NoError(t, store.Rebuild(ctx, []domain.Quote{
		{Text: "new one", Author: "B", Emotion: domain.EmotionGeneral},
		{Text: "new two", Author: "C", Emotion: domain.EmotionGeneral},
	}))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	for _, q := range loaded {
		assert.NotEqual(t, "old", q.Text)
	}
}

func TestStore_CountByEmotion(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Rebuild(ctx, []domain.Quote{
		{Text: "a", Author: "A", Emotion: domain.EmotionGrief},
		{Text: "b", Author: "B", Emotion: domain.EmotionGrief},
		{Text: "c", Author: "C", Emotion: domain.EmotionHope},
	}))

	counts, err := store.CountByEmotion(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		domain.EmotionGrief: 2,
		domain.EmotionHope:  1,
	}, counts)
}

func TestStore_EmptyCorpus(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
