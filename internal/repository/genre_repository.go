package repository

import (
	"context"

	"film-catalog/internal/apperror"
	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, name string) (*models.Genre, error)
	Update(ctx context.Context, id uint, name *string) (*models.Genre, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	baseRepository
	associations AssociationRepository
}

func NewGenreRepository(db *database.Database, associations AssociationRepository) GenreRepository {
	return &genreRepository{
		baseRepository: newBaseRepository(db),
		associations:   associations,
	}
}

func (r *genreRepository) Create(ctx context.Context, name string) (*models.Genre, error) {
	if err := models.ValidateName("genre", name); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	if err := r.ensureNameFree(db, name, 0); err != nil {
		return nil, err
	}

	genre := &models.Genre{Name: name}
	if err := db.Create(genre).Error; err != nil {
		return nil, translateError(err, "genre", "create genre")
	}
	return genre, nil
}

func (r *genreRepository) Update(ctx context.Context, id uint, name *string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var genre models.Genre
	if err := db.First(&genre, id).Error; err != nil {
		return nil, translateError(err, "genre", "load genre")
	}

	if name == nil || *name == genre.Name {
		return &genre, nil
	}
	if err := models.ValidateName("genre", *name); err != nil {
		return nil, err
	}
	if err := r.ensureNameFree(db, *name, genre.ID); err != nil {
		return nil, err
	}

	if err := db.Model(&genre).Update("name", *name).Error; err != nil {
		return nil, translateError(err, "genre", "update genre")
	}
	genre.Name = *name
	return &genre, nil
}

func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var genre models.Genre
		if err := tx.First(&genre, id).Error; err != nil {
			return err
		}
		if err := r.associations.RemoveTag(tx, GenreAxis, genre.ID); err != nil {
			return err
		}
		return tx.Delete(&genre).Error
	})
	return translateError(err, "genre", "delete genre")
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, translateError(err, "genre", "load genre")
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	genres := []models.Genre{}
	if err := r.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, translateError(err, "genre", "list genres")
	}
	return genres, nil
}

func (r *genreRepository) ensureNameFree(db *gorm.DB, name string, exceptID uint) error {
	var count int64
	query := db.Model(&models.Genre{}).Where("name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return translateError(err, "genre", "check genre name")
	}
	if count > 0 {
		return apperror.Conflict("genre with name %q already exists", name)
	}
	return nil
}
