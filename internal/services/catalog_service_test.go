package services

import (
	"context"
	"testing"
	"time"

	"film-catalog/internal/apperror"
	"film-catalog/internal/config"
	"film-catalog/internal/database"
	"film-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(gdb))

	return database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()

	db := newTestDatabase(t)
	associations := repository.NewAssociationRepository()
	return NewCatalogService(
		repository.NewArtistRepository(db, associations),
		repository.NewGenreRepository(db, associations),
		testLogger(),
	)
}

func TestCatalogServiceArtists(t *testing.T) {
	ctx := context.Background()
	service := newCatalogService(t)

	artist, err := service.CreateArtist(ctx, "Keanu Reeves")
	require.NoError(t, err)

	_, err = service.CreateArtist(ctx, "Keanu Reeves")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	updated, err := service.UpdateArtist(ctx, artist.ID, ptr("Keanu Charles Reeves"))
	require.NoError(t, err)
	assert.Equal(t, "Keanu Charles Reeves", updated.Name)

	artists, err := service.ListArtists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)

	require.NoError(t, service.DeleteArtist(ctx, artist.ID))
	assert.ErrorIs(t, service.DeleteArtist(ctx, artist.ID), apperror.ErrNotFound)
}

func TestCatalogServiceGenres(t *testing.T) {
	ctx := context.Background()
	service := newCatalogService(t)

	genres, err := service.ListGenres(ctx)
	require.NoError(t, err)
	assert.NotNil(t, genres)
	assert.Empty(t, genres)

	genre, err := service.CreateGenre(ctx, "Drama")
	require.NoError(t, err)

	_, err = service.CreateGenre(ctx, " ")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = service.UpdateGenre(ctx, 42, ptr("Comedy"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, service.DeleteGenre(ctx, genre.ID))
}
