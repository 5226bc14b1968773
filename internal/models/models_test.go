package models

import (
	"testing"
	"time"

	"venue-booking/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGenresNormalizes(t *testing.T) {
	v := &Venue{ID: 4}
	v.SetGenres([]string{" Jazz", "Rock n Roll", "", "Jazz", "Blues "})

	assert.Equal(t, []string{"Jazz", "Rock n Roll", "Blues"}, v.GenreNames())
	for _, g := range v.Genres {
		assert.Equal(t, uint(4), g.VenueID)
	}

	a := &Artist{}
	a.SetGenres(nil)
	assert.Empty(t, a.GenreNames())
}

func TestBeforeSaveRequiresName(t *testing.T) {
	assert.ErrorIs(t, (&Venue{Name: "  "}).BeforeSave(nil), errs.ErrConstraint)
	assert.NoError(t, (&Venue{Name: "The Fillmore"}).BeforeSave(nil))
	assert.ErrorIs(t, (&Artist{}).BeforeSave(nil), errs.ErrConstraint)
	assert.NoError(t, (&Artist{Name: "Daft Punk"}).BeforeSave(nil))
}

func TestNewVenueDetailPartitionsShows(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v := &Venue{ID: 1, Name: "The Fillmore", City: "San Francisco", State: "CA"}
	v.SetGenres([]string{"Jazz"})

	rows := []ShowRow{
		{ArtistID: 2, ArtistName: "Daft Punk", StartTime: now.Add(-24 * time.Hour)},
		{ArtistID: 2, ArtistName: "Daft Punk", StartTime: now},
		{ArtistID: 3, ArtistName: "Justice", StartTime: now.Add(time.Second)},
	}

	d := NewVenueDetail(v, rows, now)

	require.Len(t, d.PastShows, 2)
	require.Len(t, d.UpcomingShows, 1)
	assert.Equal(t, 2, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
	assert.Equal(t, "Justice", d.UpcomingShows[0].ArtistName)
	assert.Equal(t, "2026-10-18T12:00:01Z", d.UpcomingShows[0].StartTime)
	assert.Equal(t, []string{"Jazz"}, d.Genres)
}

func TestShowRowIsUpcoming(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"yesterday", now.Add(-24 * time.Hour), false},
		{"exactly now", now, false},
		{"one nanosecond later", now.Add(time.Nanosecond), true},
		{"same instant in another zone", now.In(time.FixedZone("EST", -5*3600)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowRow{StartTime: tt.start}.IsUpcoming(now))
		})
	}
}

func TestNewArtistDetailPartitionsShows(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rows := []ShowRow{
		{VenueID: 1, VenueName: "The Fillmore", StartTime: now},
		{VenueID: 2, VenueName: "Park Square", StartTime: now.Add(time.Nanosecond)},
	}

	d := NewArtistDetail(&Artist{ID: 9, Name: "Daft Punk"}, rows, now)

	require.Len(t, d.PastShows, 1)
	require.Len(t, d.UpcomingShows, 1)
	assert.Equal(t, "The Fillmore", d.PastShows[0].VenueName)
	assert.Equal(t, "Park Square", d.UpcomingShows[0].VenueName)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
}

func TestNewArtistDetailWithoutShows(t *testing.T) {
	d := NewArtistDetail(&Artist{ID: 9, Name: "Daft Punk"}, nil, time.Now())

	assert.NotNil(t, d.PastShows)
	assert.NotNil(t, d.UpcomingShows)
	assert.Zero(t, d.PastShowsCount)
	assert.Zero(t, d.UpcomingShowsCount)
	assert.Equal(t, []string{}, d.Genres)
}

func TestFormatShowTimeIsParseable(t *testing.T) {
	local := time.Date(2026, 1, 2, 20, 30, 0, 0, time.FixedZone("PST", -8*3600))

	s := FormatShowTime(local)
	parsed, err := time.Parse(ShowTimeLayout, s)

	require.NoError(t, err)
	assert.Equal(t, "2026-01-03T04:30:00Z", s)
	assert.True(t, parsed.Equal(local))
}
