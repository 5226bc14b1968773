package handlers

import (
	"context"
	"errors"

	"venue-booking/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockVenueService struct {
	mock.Mock
}

func (m *mockVenueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *mockVenueService) UpdateVenue(ctx context.Context, id uint, venue *models.Venue) error {
	return m.Called(ctx, id, venue).Error(0)
}

func (m *mockVenueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *mockVenueService) GetVenueByID(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *mockVenueService) ListVenuesByArea(ctx context.Context) ([]models.Area, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]models.Area)
	return areas, args.Error(1)
}

func (m *mockVenueService) SearchVenues(ctx context.Context, term string) (*models.VenueSearchResult, error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*models.VenueSearchResult)
	return result, args.Error(1)
}

func (m *mockVenueService) GetVenueDetail(ctx context.Context, id uint) (*models.VenueDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.VenueDetail)
	return detail, args.Error(1)
}

type mockArtistService struct {
	mock.Mock
}

func (m *mockArtistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistService) UpdateArtist(ctx context.Context, id uint, artist *models.Artist) error {
	return m.Called(ctx, id, artist).Error(0)
}

func (m *mockArtistService) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistService) GetArtistByID(ctx context.Context, id uint) (*models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistService) GetAllArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]models.ArtistSummary)
	return artists, args.Error(1)
}

func (m *mockArtistService) SearchArtists(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*models.ArtistSearchResult)
	return result, args.Error(1)
}

func (m *mockArtistService) GetArtistDetail(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.ArtistDetail)
	return detail, args.Error(1)
}

type mockShowService struct {
	mock.Mock
}

func (m *mockShowService) CreateShow(ctx context.Context, show *models.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *mockShowService) GetAllShows(ctx context.Context) ([]models.ShowListing, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]models.ShowListing)
	return shows, args.Error(1)
}

type mockPresigner struct {
	mock.Mock
}

func (m *mockPresigner) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	args := m.Called(ctx, filename)
	return args.String(0), args.String(1), args.Error(2)
}

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck() error { return s.err }

var errDown = errors.New("connection refused")
