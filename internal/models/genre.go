package models

import "strings"

type VenueGenre struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	VenueID uint   `gorm:"index;not null" json:"venue_id"`
	Genre   string `gorm:"not null;size:120;index" json:"genre"`
}

func (VenueGenre) TableName() string {
	return "venue_genres"
}

type ArtistGenre struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID uint   `gorm:"index;not null" json:"artist_id"`
	Genre    string `gorm:"not null;size:120;index" json:"genre"`
}

func (ArtistGenre) TableName() string {
	return "artist_genres"
}

// GenreChoices are the genres offered by the venue and artist forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// normalizeGenres trims blanks and drops duplicates while keeping the
// submitted order.
func normalizeGenres(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
