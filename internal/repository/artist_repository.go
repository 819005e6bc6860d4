package repository

import (
	"context"

	"film-catalog/internal/apperror"
	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, name string) (*models.Artist, error)
	Update(ctx context.Context, id uint, name *string) (*models.Artist, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
}

type artistRepository struct {
	baseRepository
	associations AssociationRepository
}

func NewArtistRepository(db *database.Database, associations AssociationRepository) ArtistRepository {
	return &artistRepository{
		baseRepository: newBaseRepository(db),
		associations:   associations,
	}
}

func (r *artistRepository) Create(ctx context.Context, name string) (*models.Artist, error) {
	if err := models.ValidateName("artist", name); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	if err := r.ensureNameFree(db, name, 0); err != nil {
		return nil, err
	}

	artist := &models.Artist{Name: name}
	if err := db.Create(artist).Error; err != nil {
		return nil, translateError(err, "artist", "create artist")
	}
	return artist, nil
}

func (r *artistRepository) Update(ctx context.Context, id uint, name *string) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var artist models.Artist
	if err := db.First(&artist, id).Error; err != nil {
		return nil, translateError(err, "artist", "load artist")
	}

	if name == nil || *name == artist.Name {
		return &artist, nil
	}
	if err := models.ValidateName("artist", *name); err != nil {
		return nil, err
	}
	if err := r.ensureNameFree(db, *name, artist.ID); err != nil {
		return nil, err
	}

	if err := db.Model(&artist).Update("name", *name).Error; err != nil {
		return nil, translateError(err, "artist", "update artist")
	}
	artist.Name = *name
	return &artist, nil
}

func (r *artistRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		if err := r.associations.RemoveTag(tx, ArtistAxis, artist.ID); err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	return translateError(err, "artist", "delete artist")
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, translateError(err, "artist", "load artist")
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	artists := []models.Artist{}
	if err := r.db.WithContext(ctx).Order("id").Find(&artists).Error; err != nil {
		return nil, translateError(err, "artist", "list artists")
	}
	return artists, nil
}

func (r *artistRepository) ensureNameFree(db *gorm.DB, name string, exceptID uint) error {
	var count int64
	query := db.Model(&models.Artist{}).Where("name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return translateError(err, "artist", "check artist name")
	}
	if count > 0 {
		return apperror.Conflict("artist with name %q already exists", name)
	}
	return nil
}
