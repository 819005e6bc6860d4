package repository

import (
	"context"
	"testing"

	"film-catalog/internal/apperror"
	"film-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	drama := c.genre(t, "Drama")
	comedy := c.genre(t, "Comedy")

	_, err := c.genres.Create(ctx, "Drama")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = c.genres.Update(ctx, comedy.ID, ptr("Drama"))
	assert.ErrorIs(t, err, apperror.ErrConflict)

	renamed, err := c.genres.Update(ctx, drama.ID, ptr("Drama"))
	require.NoError(t, err)
	assert.Equal(t, "Drama", renamed.Name)

	film := c.film(t, models.FilmInput{Title: "Alpha", Duration: 10, GenreIDs: []uint{drama.ID, comedy.ID}}, "video/1_alpha.mp4")

	require.NoError(t, c.genres.Delete(ctx, drama.ID))

	got, err := c.films.FindByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{comedy.ID}, tagIDs(got.Genres))

	genres, err := c.genres.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{comedy.ID}, tagIDs(genres))

	assert.ErrorIs(t, c.genres.Delete(ctx, drama.ID), apperror.ErrNotFound)
	_, err = c.genres.Update(ctx, drama.ID, ptr("Thriller"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
