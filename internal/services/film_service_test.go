package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"film-catalog/internal/apperror"
	"film-catalog/internal/models"
	"film-catalog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type filmServiceFixture struct {
	service FilmService
	films   *mockFilmRepository
	store   *storage.MemoryStore
}

func newFilmServiceFixture(t *testing.T) *filmServiceFixture {
	t.Helper()
	films := new(mockFilmRepository)
	store := storage.NewMemoryStore("http://cdn/film")
	return &filmServiceFixture{
		service: NewFilmService(films, newTestBlobService(t, store), testLogger()),
		films:   films,
		store:   store,
	}
}

func stage(t *testing.T, name, content string) *Upload {
	t.Helper()
	staged := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(staged, []byte(content), 0o600))
	return &Upload{OriginalName: name, StagingPath: staged}
}

func TestCreateFilm(t *testing.T) {
	ctx := context.Background()
	input := models.FilmInput{Title: "Alpha", Duration: 10, GenreIDs: []uint{1}}

	t.Run("stores media before the row", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		video := stage(t, "alpha.mp4", "frames")
		thumbnail := stage(t, "alpha.jpg", "pixels")

		f.films.On("Create", mock.Anything, input, "video/1700000000000_alpha.mp4", ptr("thumbnail/1700000000000_alpha.jpg")).
			Run(func(args mock.Arguments) {
				_, _, ok := f.store.Object(args.String(2))
				assert.True(t, ok, "video is durable before the row is written")
			}).
			Return(&models.Film{ID: 1, Title: "Alpha"}, nil)

		film, err := f.service.CreateFilm(ctx, input, *video, thumbnail)
		require.NoError(t, err)
		assert.Equal(t, uint(1), film.ID)
		assert.Equal(t, []string{"thumbnail/1700000000000_alpha.jpg", "video/1700000000000_alpha.mp4"}, f.store.Keys())
		assert.NoFileExists(t, video.StagingPath)
		assert.NoFileExists(t, thumbnail.StagingPath)
		f.films.AssertExpectations(t)
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		video := stage(t, "alpha.mp4", "frames")
		thumbnail := stage(t, "alpha.jpg", "pixels")

		_, err := f.service.CreateFilm(ctx, models.FilmInput{Title: "", Duration: 10}, *video, thumbnail)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Empty(t, f.store.Keys())
		assert.NoFileExists(t, video.StagingPath)
		assert.NoFileExists(t, thumbnail.StagingPath)
		f.films.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("video is required", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		_, err := f.service.CreateFilm(ctx, input, Upload{}, nil)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("failed row write removes stored media", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		f.films.On("Create", mock.Anything, input, mock.Anything, mock.Anything).
			Return(nil, apperror.NotFound("genre ids not found: [1]"))

		_, err := f.service.CreateFilm(ctx, input, *stage(t, "alpha.mp4", "frames"), stage(t, "alpha.jpg", "pixels"))
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Empty(t, f.store.Keys())
	})

	t.Run("failed thumbnail removes stored video", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		// Occupy the thumbnail key so the second store conflicts.
		_, err := f.store.Upload(ctx, "thumbnail/1700000000000_alpha.jpg", bytesReader("old"), 3, "image/jpeg")
		require.NoError(t, err)

		_, err = f.service.CreateFilm(ctx, input, *stage(t, "alpha.mp4", "frames"), stage(t, "alpha.jpg", "pixels"))
		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Equal(t, []string{"thumbnail/1700000000000_alpha.jpg"}, f.store.Keys())
		f.films.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateFilm(t *testing.T) {
	ctx := context.Background()

	t.Run("stale media removed after commit", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		_, err := f.store.Upload(ctx, "video/1_old.mp4", bytesReader("old"), 3, "video/mp4")
		require.NoError(t, err)

		f.films.On("Update", mock.Anything, uint(7), mock.MatchedBy(func(u models.FilmUpdate) bool {
			return u.VideoPath != nil && *u.VideoPath == "video/1700000000000_new.mp4" && u.ThumbnailPath == nil
		})).Return(&models.Film{ID: 7}, []string{"video/1_old.mp4"}, nil)

		film, err := f.service.UpdateFilm(ctx, 7, models.FilmUpdate{}, stage(t, "new.mp4", "frames"), nil)
		require.NoError(t, err)
		assert.Equal(t, uint(7), film.ID)
		assert.Equal(t, []string{"video/1700000000000_new.mp4"}, f.store.Keys())
	})

	t.Run("failed update removes new media and keeps old", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		_, err := f.store.Upload(ctx, "video/1_old.mp4", bytesReader("old"), 3, "video/mp4")
		require.NoError(t, err)

		f.films.On("Update", mock.Anything, uint(7), mock.Anything).
			Return(nil, nil, apperror.NotFound("film not found"))

		_, err = f.service.UpdateFilm(ctx, 7, models.FilmUpdate{}, stage(t, "new.mp4", "frames"), stage(t, "new.jpg", "pixels"))
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, []string{"video/1_old.mp4"}, f.store.Keys())
	})

	t.Run("invalid update stores nothing", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		video := stage(t, "new.mp4", "frames")

		_, err := f.service.UpdateFilm(ctx, 7, models.FilmUpdate{Duration: ptr(0)}, video, nil)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Empty(t, f.store.Keys())
		assert.NoFileExists(t, video.StagingPath)
		f.films.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("association lists pass through", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		update := models.FilmUpdate{GenreIDs: &[]uint{}}
		f.films.On("Update", mock.Anything, uint(7), update).Return(&models.Film{ID: 7}, nil, nil)

		_, err := f.service.UpdateFilm(ctx, 7, update, nil, nil)
		require.NoError(t, err)
		f.films.AssertExpectations(t)
	})
}

func TestDeleteFilm(t *testing.T) {
	ctx := context.Background()

	t.Run("removes media after delete", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		for _, key := range []string{"video/1_a.mp4", "thumbnail/1_a.jpg"} {
			_, err := f.store.Upload(ctx, key, bytesReader("x"), 1, "")
			require.NoError(t, err)
		}
		f.films.On("Delete", mock.Anything, uint(3)).Return([]string{"video/1_a.mp4", "thumbnail/1_a.jpg"}, nil)

		require.NoError(t, f.service.DeleteFilm(ctx, 3))
		assert.Empty(t, f.store.Keys())
	})

	t.Run("failed delete keeps media", func(t *testing.T) {
		f := newFilmServiceFixture(t)
		_, err := f.store.Upload(ctx, "video/1_a.mp4", bytesReader("x"), 1, "")
		require.NoError(t, err)
		f.films.On("Delete", mock.Anything, uint(3)).Return(nil, apperror.Internal(errors.New("db down"), "delete film"))

		assert.ErrorIs(t, f.service.DeleteFilm(ctx, 3), apperror.ErrInternal)
		assert.Equal(t, []string{"video/1_a.mp4"}, f.store.Keys())
	})

	t.Run("removal failure does not fail the delete", func(t *testing.T) {
		films := new(mockFilmRepository)
		store := new(mockStore)
		service := NewFilmService(films, newTestBlobService(t, store), testLogger())

		films.On("Delete", mock.Anything, uint(3)).Return([]string{"video/1_a.mp4"}, nil)
		store.On("Remove", mock.Anything, []string{"video/1_a.mp4"}).Return(errors.New("bucket unreachable"))

		assert.NoError(t, service.DeleteFilm(ctx, 3))
		store.AssertExpectations(t)
	})
}

func TestSearchFilmsClampsPaging(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, DefaultPageLimit},
		{"negative", -3, -1, 1, DefaultPageLimit},
		{"within range", 2, 25, 2, 25},
		{"limit capped", 1, 1000, 1, MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFilmServiceFixture(t)
			f.films.On("Search", mock.Anything, mock.MatchedBy(func(s models.FilmSearch) bool {
				return s.Page == tt.wantPage && s.Limit == tt.wantLimit && s.Text == "alp"
			})).Return(&models.FilmPage{Items: []models.Film{}, Page: tt.wantPage, Limit: tt.wantLimit}, nil)

			page, err := f.service.SearchFilms(context.Background(), models.FilmSearch{Text: "alp", Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, page.Limit)
			f.films.AssertExpectations(t)
		})
	}
}

func TestMediaURLs(t *testing.T) {
	ctx := context.Background()
	f := newFilmServiceFixture(t)
	_, err := f.store.Upload(ctx, "video/1_a.mp4", bytesReader("x"), 1, "")
	require.NoError(t, err)

	f.films.On("FindByID", mock.Anything, uint(1)).Return(&models.Film{ID: 1, VideoPath: "video/1_a.mp4"}, nil)
	f.films.On("FindByID", mock.Anything, uint(2)).Return(nil, apperror.NotFound("film not found"))

	url, err := f.service.VideoURL(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/film/video/1_a.mp4", url)

	_, err = f.service.ThumbnailURL(ctx, 1)
	assert.ErrorIs(t, err, apperror.ErrNotFound, "film without thumbnail")

	_, err = f.service.VideoURL(ctx, 2)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = f.service.ThumbnailURL(ctx, 2)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
