package repository

import (
	"fmt"
	"sort"

	"film-catalog/internal/apperror"
	"film-catalog/internal/models"

	"gorm.io/gorm"
)

// Axis describes one film tag relation: the join table and the tag table it
// points to.
type Axis struct {
	Name      string
	JoinTable string
	TagTable  string
	TagColumn string

	joinModel func() interface{}
	joinRows  func(filmID uint, tagIDs []uint) interface{}
}

var (
	ArtistAxis = Axis{
		Name:      "artist",
		JoinTable: "film_artists",
		TagTable:  "artists",
		TagColumn: "artist_id",
		joinModel: func() interface{} { return &models.FilmArtist{} },
		joinRows: func(filmID uint, tagIDs []uint) interface{} {
			rows := make([]models.FilmArtist, 0, len(tagIDs))
			for _, id := range tagIDs {
				rows = append(rows, models.FilmArtist{FilmID: filmID, ArtistID: id})
			}
			return &rows
		},
	}

	GenreAxis = Axis{
		Name:      "genre",
		JoinTable: "film_genres",
		TagTable:  "genres",
		TagColumn: "genre_id",
		joinModel: func() interface{} { return &models.FilmGenre{} },
		joinRows: func(filmID uint, tagIDs []uint) interface{} {
			rows := make([]models.FilmGenre, 0, len(tagIDs))
			for _, id := range tagIDs {
				rows = append(rows, models.FilmGenre{FilmID: filmID, GenreID: id})
			}
			return &rows
		},
	}
)

// AssociationRepository owns the film_artists and film_genres rows. Every
// write takes the caller's transaction so association changes commit
// together with the entity change that caused them.
type AssociationRepository interface {
	// Replace swaps the film's set on axis for tagIDs. Unknown ids fail
	// with NotFound before anything is written.
	Replace(tx *gorm.DB, filmID uint, axis Axis, tagIDs []uint) error
	Clear(tx *gorm.DB, filmID uint, axis Axis) error
	// RemoveTag drops every association that references the tag.
	RemoveTag(tx *gorm.DB, axis Axis, tagID uint) error

	// NameMatchClause is a correlated predicate on films that holds when an
	// associated tag's name satisfies match("t.name").
	NameMatchClause(axis Axis, match func(column string) string) string
	// AnyTagClause holds when the film has at least one tag from the
	// slice bound to its single placeholder.
	AnyTagClause(axis Axis) string
}

type associationRepository struct{}

func NewAssociationRepository() AssociationRepository {
	return &associationRepository{}
}

func (r *associationRepository) Replace(tx *gorm.DB, filmID uint, axis Axis, tagIDs []uint) error {
	ids := uniqueIDs(tagIDs)
	if err := r.ensureTagsExist(tx, axis, ids); err != nil {
		return err
	}

	if err := r.Clear(tx, filmID, axis); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := tx.Create(axis.joinRows(filmID, ids)).Error; err != nil {
		return fmt.Errorf("failed to write %s: %w", axis.JoinTable, err)
	}
	return nil
}

func (r *associationRepository) Clear(tx *gorm.DB, filmID uint, axis Axis) error {
	if err := tx.Where("film_id = ?", filmID).Delete(axis.joinModel()).Error; err != nil {
		return fmt.Errorf("failed to clear %s: %w", axis.JoinTable, err)
	}
	return nil
}

func (r *associationRepository) RemoveTag(tx *gorm.DB, axis Axis, tagID uint) error {
	if err := tx.Where(axis.TagColumn+" = ?", tagID).Delete(axis.joinModel()).Error; err != nil {
		return fmt.Errorf("failed to cascade %s delete: %w", axis.Name, err)
	}
	return nil
}

func (r *associationRepository) NameMatchClause(axis Axis, match func(column string) string) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s j JOIN %s t ON t.id = j.%s WHERE j.film_id = films.id AND %s)",
		axis.JoinTable, axis.TagTable, axis.TagColumn, match("t.name"),
	)
}

func (r *associationRepository) AnyTagClause(axis Axis) string {
	return fmt.Sprintf("films.id IN (SELECT film_id FROM %s WHERE %s IN ?)", axis.JoinTable, axis.TagColumn)
}

func (r *associationRepository) ensureTagsExist(tx *gorm.DB, axis Axis, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	var found []uint
	if err := tx.Table(axis.TagTable).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("failed to look up %s ids: %w", axis.Name, err)
	}
	if len(found) == len(ids) {
		return nil
	}

	present := make(map[uint]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var missing []uint
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return apperror.NotFound("%s ids not found: %v", axis.Name, missing)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
