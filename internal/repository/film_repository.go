package repository

import (
	"context"

	"film-catalog/internal/apperror"
	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmRepository interface {
	// Create writes the film row and its non-empty association sets in one
	// transaction and returns the hydrated film.
	Create(ctx context.Context, input models.FilmInput, videoPath string, thumbnailPath *string) (*models.Film, error)
	// Update applies the supplied fields and returns the hydrated film along
	// with the blob keys it no longer references.
	Update(ctx context.Context, id uint, update models.FilmUpdate) (*models.Film, []string, error)
	// Delete removes the film and its associations and returns the blob keys
	// it referenced.
	Delete(ctx context.Context, id uint) ([]string, error)
	FindByID(ctx context.Context, id uint) (*models.Film, error)
	Search(ctx context.Context, search models.FilmSearch) (*models.FilmPage, error)
}

type filmRepository struct {
	baseRepository
	associations AssociationRepository
}

func NewFilmRepository(db *database.Database, associations AssociationRepository) FilmRepository {
	return &filmRepository{
		baseRepository: newBaseRepository(db),
		associations:   associations,
	}
}

func (r *filmRepository) Create(ctx context.Context, input models.FilmInput, videoPath string, thumbnailPath *string) (*models.Film, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if videoPath == "" {
		return nil, apperror.InvalidArgument("video is required")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	film := &models.Film{
		Title:         input.Title,
		Description:   input.Description,
		Duration:      input.Duration,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
		Published:     input.Published,
	}

	var created *models.Film
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(film).Error; err != nil {
			return err
		}
		if len(input.ArtistIDs) > 0 {
			if err := r.associations.Replace(tx, film.ID, ArtistAxis, input.ArtistIDs); err != nil {
				return err
			}
		}
		if len(input.GenreIDs) > 0 {
			if err := r.associations.Replace(tx, film.ID, GenreAxis, input.GenreIDs); err != nil {
				return err
			}
		}

		var err error
		created, err = hydrated(tx, film.ID)
		return err
	})
	if err != nil {
		return nil, translateError(err, "film", "create film")
	}
	return created, nil
}

func (r *filmRepository) Update(ctx context.Context, id uint, update models.FilmUpdate) (*models.Film, []string, error) {
	if err := update.Validate(); err != nil {
		return nil, nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var updated *models.Film
	var stale []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var film models.Film
		if err := tx.First(&film, id).Error; err != nil {
			return err
		}

		changes, replaced := filmChanges(&film, update)
		if len(changes) > 0 {
			if err := tx.Model(&film).Updates(changes).Error; err != nil {
				return err
			}
		} else if update.ArtistIDs != nil || update.GenreIDs != nil {
			if err := tx.Model(&film).Update("updated_at", tx.NowFunc()).Error; err != nil {
				return err
			}
		}

		if update.ArtistIDs != nil {
			if err := r.associations.Replace(tx, film.ID, ArtistAxis, *update.ArtistIDs); err != nil {
				return err
			}
		}
		if update.GenreIDs != nil {
			if err := r.associations.Replace(tx, film.ID, GenreAxis, *update.GenreIDs); err != nil {
				return err
			}
		}

		loaded, err := hydrated(tx, film.ID)
		if err != nil {
			return err
		}
		updated, stale = loaded, replaced
		return nil
	})
	if err != nil {
		return nil, nil, translateError(err, "film", "update film")
	}
	return updated, stale, nil
}

// filmChanges builds the column map for update and lists the blob keys the
// update replaces.
func filmChanges(film *models.Film, update models.FilmUpdate) (map[string]interface{}, []string) {
	changes := map[string]interface{}{}
	var replaced []string

	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Duration != nil {
		changes["duration"] = *update.Duration
	}
	if update.Published != nil {
		changes["published"] = *update.Published
	}
	if update.VideoPath != nil && *update.VideoPath != film.VideoPath {
		changes["video_path"] = *update.VideoPath
		replaced = append(replaced, film.VideoPath)
	}
	if update.ThumbnailPath != nil {
		current := ""
		if film.ThumbnailPath != nil {
			current = *film.ThumbnailPath
		}
		if *update.ThumbnailPath != current {
			changes["thumbnail_path"] = *update.ThumbnailPath
			if current != "" {
				replaced = append(replaced, current)
			}
		}
	}

	return changes, replaced
}

func (r *filmRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var film models.Film
		if err := tx.First(&film, id).Error; err != nil {
			return err
		}
		if err := r.associations.Clear(tx, film.ID, ArtistAxis); err != nil {
			return err
		}
		if err := r.associations.Clear(tx, film.ID, GenreAxis); err != nil {
			return err
		}
		if err := tx.Delete(&film).Error; err != nil {
			return err
		}
		keys = film.BlobKeys()
		return nil
	})
	if err != nil {
		return nil, translateError(err, "film", "delete film")
	}
	return keys, nil
}

func (r *filmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	film, err := hydrated(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, translateError(err, "film", "load film")
	}
	return film, nil
}

// hydrated loads a film with its tags. Mutations call it on their own
// transaction so a failed reload rolls the write back.
func hydrated(db *gorm.DB, id uint) (*models.Film, error) {
	var film models.Film
	if err := withTags(db).First(&film, id).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

// withTags preloads artists and genres with only their id and name.
func withTags(db *gorm.DB) *gorm.DB {
	tagColumns := func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name").Order("id")
	}
	return db.Preload("Artists", tagColumns).Preload("Genres", tagColumns)
}
