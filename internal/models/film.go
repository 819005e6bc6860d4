package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"film-catalog/internal/apperror"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
	MaxNameLength        = 255
)

type Film struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title         string    `gorm:"size:255;not null;index" json:"title" example:"The Matrix"`
	Description   string    `gorm:"type:text" json:"description" example:"A hacker learns the truth about reality."`
	Duration      int       `gorm:"not null" json:"duration" example:"136"`
	VideoPath     string    `gorm:"size:255;not null" json:"video_path" example:"video/1700000000000_matrix.mp4"`
	ThumbnailPath *string   `gorm:"size:255" json:"thumbnail_path" example:"thumbnail/1700000000000_matrix.jpg"`
	Published     bool      `gorm:"not null;default:false;index" json:"published" example:"false"`
	Artists       []Artist  `gorm:"many2many:film_artists;" json:"artists"`
	Genres        []Genre   `gorm:"many2many:film_genres;" json:"genres"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Film) TableName() string {
	return "films"
}

// BlobKeys lists the storage keys the film references.
func (f *Film) BlobKeys() []string {
	keys := []string{f.VideoPath}
	if f.ThumbnailPath != nil && *f.ThumbnailPath != "" {
		keys = append(keys, *f.ThumbnailPath)
	}
	return keys
}

// FilmInput holds the attributes of a new film. Media keys are supplied
// separately once the blobs are stored.
type FilmInput struct {
	Title       string
	Description string
	Duration    int
	Published   bool
	ArtistIDs   []uint
	GenreIDs    []uint
}

func (in FilmInput) Validate() error {
	if err := validateTitle(in.Title); err != nil {
		return err
	}
	if err := validateDescription(in.Description); err != nil {
		return err
	}
	return validateDuration(in.Duration)
}

// FilmUpdate is a partial update. A nil field is left untouched. For the
// association lists a non-nil pointer to an empty slice clears the set.
type FilmUpdate struct {
	Title         *string
	Description   *string
	Duration      *int
	Published     *bool
	VideoPath     *string
	ThumbnailPath *string
	ArtistIDs     *[]uint
	GenreIDs      *[]uint
}

func (u FilmUpdate) Validate() error {
	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return err
		}
	}
	if u.Description != nil {
		if err := validateDescription(*u.Description); err != nil {
			return err
		}
	}
	if u.Duration != nil {
		if err := validateDuration(*u.Duration); err != nil {
			return err
		}
	}
	if u.VideoPath != nil && *u.VideoPath == "" {
		return apperror.InvalidArgument("video path cannot be empty")
	}
	return nil
}

// ValidateName checks an artist or genre name.
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.InvalidArgument("%s name is required", kind)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return apperror.InvalidArgument("%s name must be at most %d characters", kind, MaxNameLength)
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperror.InvalidArgument("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return apperror.InvalidArgument("title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return apperror.InvalidArgument("description must be at most %d characters", MaxDescriptionLength)
	}
	return nil
}

func validateDuration(duration int) error {
	if duration <= 0 {
		return apperror.InvalidArgument("duration must be a positive integer")
	}
	return nil
}

// FilmSearch describes a search request.
type FilmSearch struct {
	Text      string
	Page      int
	Limit     int
	GenreIDs  []uint
	ArtistIDs []uint
	SortBy    string
	Order     string
	Published *bool
}

type FilmPage struct {
	Items []Film `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
