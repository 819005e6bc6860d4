package services

import (
	"context"

	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogService manages the artists and genres films are tagged with.
type CatalogService interface {
	CreateArtist(ctx context.Context, name string) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uint, name *string) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error
	ListArtists(ctx context.Context) ([]models.Artist, error)

	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	UpdateGenre(ctx context.Context, id uint, name *string) (*models.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

type catalogService struct {
	artists repository.ArtistRepository
	genres  repository.GenreRepository
	logger  *logrus.Logger
}

func NewCatalogService(artists repository.ArtistRepository, genres repository.GenreRepository, logger *logrus.Logger) CatalogService {
	return &catalogService{
		artists: artists,
		genres:  genres,
		logger:  logger,
	}
}

func (s *catalogService) CreateArtist(ctx context.Context, name string) (*models.Artist, error) {
	artist, err := s.artists.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"artistID": artist.ID, "name": artist.Name}).Info("Artist created")
	return artist, nil
}

func (s *catalogService) UpdateArtist(ctx context.Context, id uint, name *string) (*models.Artist, error) {
	artist, err := s.artists.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"artistID": artist.ID, "name": artist.Name}).Info("Artist updated")
	return artist, nil
}

// DeleteArtist also detaches the artist from every film.
func (s *catalogService) DeleteArtist(ctx context.Context, id uint) error {
	if err := s.artists.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("artistID", id).Info("Artist deleted")
	return nil
}

func (s *catalogService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.artists.FindAll(ctx)
}

func (s *catalogService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	genre, err := s.genres.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"genreID": genre.ID, "name": genre.Name}).Info("Genre created")
	return genre, nil
}

func (s *catalogService) UpdateGenre(ctx context.Context, id uint, name *string) (*models.Genre, error) {
	genre, err := s.genres.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"genreID": genre.ID, "name": genre.Name}).Info("Genre updated")
	return genre, nil
}

func (s *catalogService) DeleteGenre(ctx context.Context, id uint) error {
	if err := s.genres.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("genreID", id).Info("Genre deleted")
	return nil
}

func (s *catalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}
