package models

import "time"

// ShowTimeLayout is the parseable form in which read models carry a show's
// start time.
const ShowTimeLayout = time.RFC3339

func FormatShowTime(t time.Time) string {
	return t.UTC().Format(ShowTimeLayout)
}

// Area groups the venues of one city and state.
type Area struct {
	City   string         `json:"city" example:"San Francisco"`
	State  string         `json:"state" example:"CA"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSummary struct {
	ID               uint   `json:"id" example:"1"`
	Name             string `json:"name" example:"The Fillmore"`
	NumUpcomingShows int    `json:"num_upcoming_shows" example:"1"`
}

type ArtistSummary struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Daft Punk"`
}

type VenueSearchResult struct {
	Count int            `json:"count" example:"1"`
	Data  []VenueSummary `json:"data"`
}

type ArtistSearchResult struct {
	Count int             `json:"count" example:"1"`
	Data  []ArtistSummary `json:"data"`
}

// ArtistShow is a show seen from its venue: the counterpart is the artist.
type ArtistShow struct {
	ArtistID        uint   `json:"artist_id" example:"1"`
	ArtistName      string `json:"artist_name" example:"Daft Punk"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time" example:"2026-10-19T20:00:00Z"`
}

// VenueShow is a show seen from its artist: the counterpart is the venue.
type VenueShow struct {
	VenueID        uint   `json:"venue_id" example:"1"`
	VenueName      string `json:"venue_name" example:"The Fillmore"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time" example:"2026-10-19T20:00:00Z"`
}

type VenueDetail struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ShowListing flattens a show with the display fields of both sides.
type ShowListing struct {
	ID              uint   `json:"id" example:"1"`
	VenueID         uint   `json:"venue_id" example:"1"`
	ArtistID        uint   `json:"artist_id" example:"1"`
	StartTime       string `json:"start_time" example:"2026-10-19T20:00:00Z"`
	ArtistName      string `json:"artist_name" example:"Daft Punk"`
	VenueName       string `json:"venue_name" example:"The Fillmore"`
	ArtistImageLink string `json:"artist_image_link"`
}

// ShowRow is one joined show row as scanned from the database. Only the
// counterpart columns selected by the query are populated.
type ShowRow struct {
	ShowID          uint
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	StartTime       time.Time
}

// IsUpcoming reports whether the show starts strictly after now. A show
// starting exactly at now is past.
func (r ShowRow) IsUpcoming(now time.Time) bool {
	return r.StartTime.After(now)
}

// NewVenueDetail splits rows into past and upcoming shows relative to now.
func NewVenueDetail(v *Venue, rows []ShowRow, now time.Time) *VenueDetail {
	d := &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.GenreNames(),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          []ArtistShow{},
		UpcomingShows:      []ArtistShow{},
	}
	for _, r := range rows {
		show := ArtistShow{
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       FormatShowTime(r.StartTime),
		}
		if r.IsUpcoming(now) {
			d.UpcomingShows = append(d.UpcomingShows, show)
		} else {
			d.PastShows = append(d.PastShows, show)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func NewArtistDetail(a *Artist, rows []ShowRow, now time.Time) *ArtistDetail {
	d := &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.GenreNames(),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          []VenueShow{},
		UpcomingShows:      []VenueShow{},
	}
	for _, r := range rows {
		show := VenueShow{
			VenueID:        r.VenueID,
			VenueName:      r.VenueName,
			VenueImageLink: r.VenueImageLink,
			StartTime:      FormatShowTime(r.StartTime),
		}
		if r.IsUpcoming(now) {
			d.UpcomingShows = append(d.UpcomingShows, show)
		} else {
			d.PastShows = append(d.PastShows, show)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}
