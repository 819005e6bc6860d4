package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"film-catalog/internal/apperror"
	"film-catalog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestBlobKey(t *testing.T) {
	tests := []struct {
		name     string
		kind     BlobKind
		original string
		want     string
		wantErr  bool
	}{
		{"plain", BlobVideo, "clip.mp4", "video/1700000000000_clip.mp4", false},
		{"directories are dropped", BlobThumbnail, "/tmp/upload/poster.jpg", "thumbnail/1700000000000_poster.jpg", false},
		{"windows path", BlobThumbnail, `C:\Users\me\poster.jpg`, "thumbnail/1700000000000_poster.jpg", false},
		{"empty", BlobVideo, "", "", true},
		{"directory only", BlobVideo, "dir/", "video/1700000000000_dir", false},
		{"root", BlobVideo, "/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := BlobKey(tt.kind, tt.original, fixedNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestBlobServiceStore(t *testing.T) {
	ctx := context.Background()

	t.Run("stores data with declared type", func(t *testing.T) {
		store := storage.NewMemoryStore("http://cdn")
		blobs := newTestBlobService(t, store)

		key, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", ContentType: "video/mp4", Data: []byte("frames")})
		require.NoError(t, err)
		assert.Equal(t, "video/1700000000000_clip.mp4", key)

		data, contentType, ok := store.Object(key)
		require.True(t, ok)
		assert.Equal(t, "frames", string(data))
		assert.Equal(t, "video/mp4", contentType)
	})

	t.Run("sniffs generic content type", func(t *testing.T) {
		store := storage.NewMemoryStore("http://cdn")
		blobs := newTestBlobService(t, store)

		key, err := blobs.Store(ctx, BlobThumbnail, Upload{OriginalName: "poster", ContentType: "application/octet-stream", Data: pngHeader})
		require.NoError(t, err)

		_, contentType, _ := store.Object(key)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("removes staging file after store", func(t *testing.T) {
		store := storage.NewMemoryStore("http://cdn")
		blobs := newTestBlobService(t, store)

		staged := filepath.Join(t.TempDir(), "staged.png")
		require.NoError(t, os.WriteFile(staged, pngHeader, 0o600))

		key, err := blobs.Store(ctx, BlobThumbnail, Upload{OriginalName: "poster.png", StagingPath: staged})
		require.NoError(t, err)

		data, contentType, ok := store.Object(key)
		require.True(t, ok)
		assert.Equal(t, pngHeader, data)
		assert.Equal(t, "image/png", contentType)
		assert.NoFileExists(t, staged)
	})

	t.Run("existing key is a conflict", func(t *testing.T) {
		store := storage.NewMemoryStore("http://cdn")
		blobs := newTestBlobService(t, store)

		_, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", Data: []byte("first")})
		require.NoError(t, err)

		staged := filepath.Join(t.TempDir(), "second.mp4")
		require.NoError(t, os.WriteFile(staged, []byte("second"), 0o600))

		_, err = blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", StagingPath: staged})
		assert.ErrorIs(t, err, apperror.ErrConflict)

		data, _, _ := store.Object("video/1700000000000_clip.mp4")
		assert.Equal(t, "first", string(data))
		assert.FileExists(t, staged, "staging file is kept when nothing was stored")
	})

	t.Run("backend fault is internal", func(t *testing.T) {
		store := new(mockStore)
		store.On("Upload", mock.Anything, "video/1700000000000_clip.mp4", mock.Anything, int64(6), "video/mp4").
			Return("", errors.New("connection reset"))
		blobs := newTestBlobService(t, store)

		_, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", ContentType: "video/mp4", Data: []byte("frames")})
		require.ErrorIs(t, err, apperror.ErrInternal)
		assert.NotContains(t, err.Error(), "connection reset")
		store.AssertExpectations(t)
	})

	t.Run("upload runs under the storage timeout", func(t *testing.T) {
		store := new(mockStore)
		store.On("Upload", mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= time.Second
		}), mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("video/k", nil)
		blobs := newTestBlobService(t, store)

		key, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", Data: []byte("frames")})
		require.NoError(t, err)
		assert.Equal(t, "video/k", key, "the backend's key is returned")
		store.AssertExpectations(t)
	})

	t.Run("empty upload", func(t *testing.T) {
		blobs := newTestBlobService(t, storage.NewMemoryStore("http://cdn"))
		_, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4"})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestBlobServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("failures are swallowed", func(t *testing.T) {
		store := new(mockStore)
		store.On("Remove", mock.Anything, []string{"video/a", "thumbnail/b"}).Return(errors.New("bucket unreachable"))
		blobs := newTestBlobService(t, store)

		assert.NotPanics(t, func() {
			blobs.Remove(ctx, "video/a", "", "thumbnail/b")
		})
		store.AssertExpectations(t)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		store := new(mockStore)
		blobs := newTestBlobService(t, store)

		blobs.Remove(ctx, "", "")
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("cancelled caller still removes", func(t *testing.T) {
		store := storage.NewMemoryStore("http://cdn")
		blobs := newTestBlobService(t, store)
		key, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", Data: []byte("frames")})
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		blobs.Remove(cancelled, key)
		assert.Empty(t, store.Keys())
	})
}

func TestBlobServicePublicURL(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore("http://cdn/film")
	blobs := newTestBlobService(t, store)

	key, err := blobs.Store(ctx, BlobVideo, Upload{OriginalName: "clip.mp4", Data: []byte("frames")})
	require.NoError(t, err)

	url, err := blobs.PublicURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/film/video/1700000000000_clip.mp4", url)

	_, err = blobs.PublicURL(ctx, "video/missing.mp4")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = blobs.PublicURL(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestBlobServiceDiscard(t *testing.T) {
	blobs := newTestBlobService(t, storage.NewMemoryStore("http://cdn"))

	staged := filepath.Join(t.TempDir(), "orphan.mp4")
	require.NoError(t, os.WriteFile(staged, []byte("frames"), 0o600))

	blobs.Discard(nil, &Upload{Data: []byte("x")}, &Upload{StagingPath: staged}, &Upload{StagingPath: staged})
	assert.NoFileExists(t, staged)
}
