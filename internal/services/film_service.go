package services

import (
	"context"

	"film-catalog/internal/apperror"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type FilmService interface {
	CreateFilm(ctx context.Context, input models.FilmInput, video Upload, thumbnail *Upload) (*models.Film, error)
	UpdateFilm(ctx context.Context, id uint, update models.FilmUpdate, video, thumbnail *Upload) (*models.Film, error)
	DeleteFilm(ctx context.Context, id uint) error
	GetFilm(ctx context.Context, id uint) (*models.Film, error)
	SearchFilms(ctx context.Context, search models.FilmSearch) (*models.FilmPage, error)
	VideoURL(ctx context.Context, id uint) (string, error)
	ThumbnailURL(ctx context.Context, id uint) (string, error)
}

type filmService struct {
	films  repository.FilmRepository
	blobs  *BlobService
	logger *logrus.Logger
}

func NewFilmService(films repository.FilmRepository, blobs *BlobService, logger *logrus.Logger) FilmService {
	return &filmService{
		films:  films,
		blobs:  blobs,
		logger: logger,
	}
}

// CreateFilm stores the media first and writes the row last. When the row
// write fails the freshly stored blobs are removed again.
func (s *filmService) CreateFilm(ctx context.Context, input models.FilmInput, video Upload, thumbnail *Upload) (*models.Film, error) {
	if err := input.Validate(); err != nil {
		s.blobs.Discard(&video, thumbnail)
		return nil, err
	}
	if video.empty() {
		s.blobs.Discard(thumbnail)
		return nil, apperror.InvalidArgument("video file is required")
	}

	videoKey, err := s.blobs.Store(ctx, BlobVideo, video)
	if err != nil {
		s.blobs.Discard(&video, thumbnail)
		return nil, err
	}
	stored := []string{videoKey}

	var thumbnailKey *string
	if !thumbnail.empty() {
		key, err := s.blobs.Store(ctx, BlobThumbnail, *thumbnail)
		if err != nil {
			s.blobs.Discard(thumbnail)
			s.blobs.Remove(ctx, stored...)
			return nil, err
		}
		thumbnailKey = &key
		stored = append(stored, key)
	}

	film, err := s.films.Create(ctx, input, videoKey, thumbnailKey)
	if err != nil {
		s.blobs.Remove(ctx, stored...)
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"filmID": film.ID,
		"title":  film.Title,
	}).Info("Film created")
	return film, nil
}

// UpdateFilm stores replacement media, updates the row and only then drops
// the media the film no longer references.
func (s *filmService) UpdateFilm(ctx context.Context, id uint, update models.FilmUpdate, video, thumbnail *Upload) (*models.Film, error) {
	if err := update.Validate(); err != nil {
		s.blobs.Discard(video, thumbnail)
		return nil, err
	}

	var fresh []string
	if !video.empty() {
		key, err := s.blobs.Store(ctx, BlobVideo, *video)
		if err != nil {
			s.blobs.Discard(video, thumbnail)
			return nil, err
		}
		update.VideoPath = &key
		fresh = append(fresh, key)
	}
	if !thumbnail.empty() {
		key, err := s.blobs.Store(ctx, BlobThumbnail, *thumbnail)
		if err != nil {
			s.blobs.Discard(thumbnail)
			s.blobs.Remove(ctx, fresh...)
			return nil, err
		}
		update.ThumbnailPath = &key
		fresh = append(fresh, key)
	}

	film, stale, err := s.films.Update(ctx, id, update)
	if err != nil {
		s.blobs.Remove(ctx, fresh...)
		return nil, err
	}
	s.blobs.Remove(ctx, stale...)

	s.logger.WithField("filmID", film.ID).Info("Film updated")
	return film, nil
}

func (s *filmService) DeleteFilm(ctx context.Context, id uint) error {
	keys, err := s.films.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.blobs.Remove(ctx, keys...)

	s.logger.WithField("filmID", id).Info("Film deleted")
	return nil
}

func (s *filmService) GetFilm(ctx context.Context, id uint) (*models.Film, error) {
	return s.films.FindByID(ctx, id)
}

func (s *filmService) SearchFilms(ctx context.Context, search models.FilmSearch) (*models.FilmPage, error) {
	if search.Page < 1 {
		search.Page = 1
	}
	if search.Limit < 1 {
		search.Limit = DefaultPageLimit
	}
	if search.Limit > MaxPageLimit {
		search.Limit = MaxPageLimit
	}
	return s.films.Search(ctx, search)
}

func (s *filmService) VideoURL(ctx context.Context, id uint) (string, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.blobs.PublicURL(ctx, film.VideoPath)
}

func (s *filmService) ThumbnailURL(ctx context.Context, id uint) (string, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if film.ThumbnailPath == nil || *film.ThumbnailPath == "" {
		return "", apperror.NotFound("film %d has no thumbnail", id)
	}
	return s.blobs.PublicURL(ctx, *film.ThumbnailPath)
}
