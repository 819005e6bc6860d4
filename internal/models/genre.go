package models

import "time"

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func (Genre) TableName() string {
	return "genres"
}

type FilmGenre struct {
	FilmID  uint `gorm:"primaryKey" json:"film_id"`
	GenreID uint `gorm:"primaryKey;index" json:"genre_id"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}
