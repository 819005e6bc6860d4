package models

import "time"

type Artist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func (Artist) TableName() string {
	return "artists"
}

type FilmArtist struct {
	FilmID   uint `gorm:"primaryKey" json:"film_id"`
	ArtistID uint `gorm:"primaryKey;index" json:"artist_id"`
}

func (FilmArtist) TableName() string {
	return "film_artists"
}
