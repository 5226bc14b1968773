package models

import (
	"strings"
	"time"

	"venue-booking/internal/errs"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 uint          `gorm:"primaryKey" json:"id" example:"1"`
	Name               string        `gorm:"not null;index" json:"name" example:"Daft Punk"`
	City               string        `gorm:"size:120" json:"city" example:"Paris"`
	State              string        `gorm:"size:120" json:"state" example:"NY"`
	Phone              string        `gorm:"size:120" json:"phone"`
	ImageLink          string        `gorm:"size:500" json:"image_link"`
	FacebookLink       string        `gorm:"size:120" json:"facebook_link"`
	Website            string        `gorm:"size:120" json:"website"`
	SeekingVenue       bool          `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string        `gorm:"size:120" json:"seeking_description"`
	Genres             []ArtistGenre `gorm:"foreignKey:ArtistID" json:"-"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}

func (a *Artist) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(a.Name) == "" {
		return errs.Constraint("artist name is required")
	}
	return nil
}

func (a *Artist) GenreNames() []string {
	names := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		names = append(names, g.Genre)
	}
	return names
}

func (a *Artist) SetGenres(genres []string) {
	a.Genres = make([]ArtistGenre, 0, len(genres))
	for _, g := range normalizeGenres(genres) {
		a.Genres = append(a.Genres, ArtistGenre{ArtistID: a.ID, Genre: g})
	}
}
