package repository

import (
	"context"
	"fmt"
	"strings"

	"film-catalog/internal/models"

	"gorm.io/gorm"
)

const (
	SortCreatedAt = "created_at"
	SortTitle     = "title"
	SortDuration  = "duration"

	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

var sortColumns = map[string]string{
	SortCreatedAt: "films.created_at",
	SortTitle:     "films.title",
	SortDuration:  "films.duration",
}

// ResolveSort maps a requested sort onto the allow-list. Unknown fields sort
// by creation time, newest first, whatever order was asked for.
func ResolveSort(sortBy, order string) (column, direction string) {
	column, ok := sortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return sortColumns[SortCreatedAt], OrderDesc
	}
	if strings.EqualFold(strings.TrimSpace(order), OrderAsc) {
		return column, OrderAsc
	}
	return column, OrderDesc
}

// Search pages through films matching every supplied filter. Page and
// limit are used as given; callers clamp them.
func (r *filmRepository) Search(ctx context.Context, search models.FilmSearch) (*models.FilmPage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.filtered(ctx, search).Count(&total).Error; err != nil {
		return nil, translateError(err, "film", "count films")
	}

	column, direction := ResolveSort(search.SortBy, search.Order)
	offset := (search.Page - 1) * search.Limit

	films := []models.Film{}
	err := withTags(r.filtered(ctx, search)).
		Order(fmt.Sprintf("%s %s, films.id %s", column, direction, direction)).
		Offset(offset).
		Limit(search.Limit).
		Find(&films).Error
	if err != nil {
		return nil, translateError(err, "film", "search films")
	}

	return &models.FilmPage{
		Items: films,
		Total: total,
		Page:  search.Page,
		Limit: search.Limit,
	}, nil
}

// filtered builds a fresh query so the count and the page never share
// statement state. Tag filters are subqueries, so a film matching through
// several associations is still one row.
func (r *filmRepository) filtered(ctx context.Context, search models.FilmSearch) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Film{})

	if text := strings.TrimSpace(search.Text); text != "" {
		match, pattern := r.containsMatcher(text)
		query = query.Where(
			fmt.Sprintf("(%s OR %s OR %s OR %s)",
				match("films.title"),
				match("films.description"),
				r.associations.NameMatchClause(ArtistAxis, match),
				r.associations.NameMatchClause(GenreAxis, match),
			),
			pattern, pattern, pattern, pattern,
		)
	}

	if len(search.GenreIDs) > 0 {
		query = query.Where(r.associations.AnyTagClause(GenreAxis), search.GenreIDs)
	}
	if len(search.ArtistIDs) > 0 {
		query = query.Where(r.associations.AnyTagClause(ArtistAxis), search.ArtistIDs)
	}
	if search.Published != nil {
		query = query.Where("films.published = ?", *search.Published)
	}

	return query
}

// containsMatcher returns a case-insensitive substring predicate builder
// for the active dialect and the bound pattern it expects.
func (r *filmRepository) containsMatcher(text string) (func(column string) string, string) {
	escaped := escapeLike(text)
	if r.db.Dialect() == "postgres" {
		return func(column string) string {
			return column + ` ILIKE ? ESCAPE '\'`
		}, "%" + escaped + "%"
	}
	return func(column string) string {
		return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
	}, "%" + strings.ToLower(escaped) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
