package models

import (
	"strings"
	"time"

	"venue-booking/internal/errs"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint         `gorm:"primaryKey" json:"id" example:"1"`
	Name               string       `gorm:"not null;index" json:"name" example:"The Fillmore"`
	City               string       `gorm:"size:120;index:idx_venues_area" json:"city" example:"San Francisco"`
	State              string       `gorm:"size:120;index:idx_venues_area" json:"state" example:"CA"`
	Address            string       `gorm:"size:120;not null" json:"address" example:"1805 Geary Blvd"`
	Phone              string       `gorm:"size:120" json:"phone" example:"415-346-6000"`
	ImageLink          string       `gorm:"size:500" json:"image_link"`
	FacebookLink       string       `gorm:"size:120" json:"facebook_link"`
	Website            string       `gorm:"size:120" json:"website"`
	SeekingTalent      bool         `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string       `gorm:"size:120" json:"seeking_description"`
	Genres             []VenueGenre `gorm:"foreignKey:VenueID" json:"-"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

func (v *Venue) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(v.Name) == "" {
		return errs.Constraint("venue name is required")
	}
	return nil
}

// GenreNames returns the venue's genres in stored order.
func (v *Venue) GenreNames() []string {
	names := make([]string, 0, len(v.Genres))
	for _, g := range v.Genres {
		names = append(names, g.Genre)
	}
	return names
}

// SetGenres replaces the genre rows that will be written with the venue.
func (v *Venue) SetGenres(genres []string) {
	v.Genres = make([]VenueGenre, 0, len(genres))
	for _, g := range normalizeGenres(genres) {
		v.Genres = append(v.Genres, VenueGenre{VenueID: v.ID, Genre: g})
	}
}
