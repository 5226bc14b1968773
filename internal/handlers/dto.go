package handlers

import (
	"fmt"
	"strings"
	"time"

	"venue-booking/internal/models"
)

// VenueRequest is the body of the venue create and edit forms. Every field
// is written on update; omitted fields are stored empty.
type VenueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255" example:"The Fillmore"`
	City               string   `json:"city" form:"city" validate:"required,max=120" example:"San Francisco"`
	State              string   `json:"state" form:"state" validate:"required,max=120" example:"CA"`
	Address            string   `json:"address" form:"address" validate:"required,max=120" example:"1805 Geary Blvd"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120" example:"415-346-6000"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url,max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,max=120"`
	SeekingTalent      Checkbox `json:"seeking_talent" form:"seeking_talent" swaggertype:"boolean"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"omitempty,max=120"`
}

func (r *VenueRequest) toModel() *models.Venue {
	venue := &models.Venue{
		Name:               strings.TrimSpace(r.Name),
		City:               strings.TrimSpace(r.City),
		State:              strings.TrimSpace(r.State),
		Address:            strings.TrimSpace(r.Address),
		Phone:              strings.TrimSpace(r.Phone),
		ImageLink:          strings.TrimSpace(r.ImageLink),
		FacebookLink:       strings.TrimSpace(r.FacebookLink),
		Website:            strings.TrimSpace(r.Website),
		SeekingTalent:      bool(r.SeekingTalent),
		SeekingDescription: strings.TrimSpace(r.SeekingDescription),
	}
	venue.SetGenres(r.Genres)
	return venue
}

func venueRequestFrom(v *models.Venue) *VenueRequest {
	return &VenueRequest{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             v.GenreNames(),
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255" example:"Daft Punk"`
	City               string   `json:"city" form:"city" validate:"required,max=120" example:"Paris"`
	State              string   `json:"state" form:"state" validate:"required,max=120" example:"NY"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url,max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,max=120"`
	SeekingVenue       Checkbox `json:"seeking_venue" form:"seeking_venue" swaggertype:"boolean"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"omitempty,max=120"`
}

func (r *ArtistRequest) toModel() *models.Artist {
	artist := &models.Artist{
		Name:               strings.TrimSpace(r.Name),
		City:               strings.TrimSpace(r.City),
		State:              strings.TrimSpace(r.State),
		Phone:              strings.TrimSpace(r.Phone),
		ImageLink:          strings.TrimSpace(r.ImageLink),
		FacebookLink:       strings.TrimSpace(r.FacebookLink),
		Website:            strings.TrimSpace(r.Website),
		SeekingVenue:       bool(r.SeekingVenue),
		SeekingDescription: strings.TrimSpace(r.SeekingDescription),
	}
	artist.SetGenres(r.Genres)
	return artist
}

func artistRequestFrom(a *models.Artist) *ArtistRequest {
	return &ArtistRequest{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Genres:             a.GenreNames(),
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

type ShowRequest struct {
	ArtistID  uint   `json:"artist_id" form:"artist_id" validate:"required" example:"1"`
	VenueID   uint   `json:"venue_id" form:"venue_id" validate:"required" example:"1"`
	StartTime string `json:"start_time" form:"start_time" validate:"required" example:"2026-10-19 20:00:00"`
}

// showTimeLayouts are the accepted start_time inputs. The form widget posts
// the second one.
var showTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseShowTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range showTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("start_time %q is not a valid date and time", value)
}

func (r *ShowRequest) toModel() (*models.Show, error) {
	start, err := parseShowTime(r.StartTime)
	if err != nil {
		return nil, err
	}
	return &models.Show{
		ArtistID:  r.ArtistID,
		VenueID:   r.VenueID,
		StartTime: start,
	}, nil
}

// VenueResponse is a stored venue as returned after a write and in the
// edit form.
type VenueResponse struct {
	ID uint `json:"id" example:"1"`
	VenueRequest
}

func venueResponseFrom(v *models.Venue) *VenueResponse {
	return &VenueResponse{ID: v.ID, VenueRequest: *venueRequestFrom(v)}
}

type ArtistResponse struct {
	ID uint `json:"id" example:"1"`
	ArtistRequest
}

func artistResponseFrom(a *models.Artist) *ArtistResponse {
	return &ArtistResponse{ID: a.ID, ArtistRequest: *artistRequestFrom(a)}
}

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term" example:"Music"`
}

type VenueSearchResponse struct {
	SearchTerm string `json:"search_term"`
	*models.VenueSearchResult
}

type ArtistSearchResponse struct {
	SearchTerm string `json:"search_term"`
	*models.ArtistSearchResult
}
