package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("http://cdn.local/film/")

	t.Run("Upload", func(t *testing.T) {
		key, err := store.Upload(ctx, "video/1_a.mp4", strings.NewReader("frames"), 6, "video/mp4")
		require.NoError(t, err)
		assert.Equal(t, "video/1_a.mp4", key)

		data, contentType, ok := store.Object(key)
		require.True(t, ok)
		assert.Equal(t, "frames", string(data))
		assert.Equal(t, "video/mp4", contentType)
	})

	t.Run("Upload refuses existing key", func(t *testing.T) {
		_, err := store.Upload(ctx, "video/1_a.mp4", strings.NewReader("other"), 5, "video/mp4")
		assert.ErrorIs(t, err, ErrObjectExists)

		data, _, _ := store.Object("video/1_a.mp4")
		assert.Equal(t, "frames", string(data), "existing object is untouched")
	})

	t.Run("PublicURL", func(t *testing.T) {
		url, err := store.PublicURL(ctx, "video/1_a.mp4")
		require.NoError(t, err)
		assert.Equal(t, "http://cdn.local/film/video/1_a.mp4", url)

		_, err = store.PublicURL(ctx, "video/missing.mp4")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, []string{"video/1_a.mp4", "video/never-existed.mp4"}))
		assert.Empty(t, store.Keys())
	})
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://h/b/k", joinURL("http://h/b", "k"))
	assert.Equal(t, "http://h/b/k/x", joinURL("http://h/b/", "/k/x"))
}
