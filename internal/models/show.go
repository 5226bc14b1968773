package models

import "time"

// Show is a booking of one artist at one venue. The synthetic id lets the
// same artist and venue pair hold several shows at different times.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	ArtistID  uint      `gorm:"index;not null" json:"artist_id" example:"1"`
	VenueID   uint      `gorm:"index;not null" json:"venue_id" example:"1"`
	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}
