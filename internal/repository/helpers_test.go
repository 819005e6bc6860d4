package repository

import (
	"context"
	"testing"
	"time"

	"film-catalog/internal/config"
	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testCatalog struct {
	db      *database.Database
	artists ArtistRepository
	genres  GenreRepository
	films   FilmRepository
}

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func newTestCatalog(t *testing.T) *testCatalog {
	t.Helper()

	db := newTestDatabase(t)
	associations := NewAssociationRepository()
	return &testCatalog{
		db:      db,
		artists: NewArtistRepository(db, associations),
		genres:  NewGenreRepository(db, associations),
		films:   NewFilmRepository(db, associations),
	}
}

func (c *testCatalog) artist(t *testing.T, name string) *models.Artist {
	t.Helper()
	artist, err := c.artists.Create(context.Background(), name)
	require.NoError(t, err)
	return artist
}

func (c *testCatalog) genre(t *testing.T, name string) *models.Genre {
	t.Helper()
	genre, err := c.genres.Create(context.Background(), name)
	require.NoError(t, err)
	return genre
}

func (c *testCatalog) film(t *testing.T, input models.FilmInput, video string) *models.Film {
	t.Helper()
	film, err := c.films.Create(context.Background(), input, video, nil)
	require.NoError(t, err)
	return film
}

func tagIDs[T models.Artist | models.Genre](tags []T) []uint {
	ids := make([]uint, 0, len(tags))
	for _, tag := range tags {
		switch v := any(tag).(type) {
		case models.Artist:
			ids = append(ids, v.ID)
		case models.Genre:
			ids = append(ids, v.ID)
		}
	}
	return ids
}

func filmTitles(films []models.Film) []string {
	titles := make([]string, 0, len(films))
	for _, film := range films {
		titles = append(titles, film.Title)
	}
	return titles
}

func ptr[T any](v T) *T {
	return &v
}
