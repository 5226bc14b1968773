package services

import (
	"context"
	"io"
	"time"

	"venue-booking/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockVenueRepo struct {
	mock.Mock
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *mockVenueRepo) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*models.Venue)
	return venue, args.Error(1)
}

func (m *mockVenueRepo) ListGroupedByCity(ctx context.Context, now time.Time) ([]models.Area, error) {
	args := m.Called(ctx, now)
	areas, _ := args.Get(0).([]models.Area)
	return areas, args.Error(1)
}

func (m *mockVenueRepo) SearchByName(ctx context.Context, term string, now time.Time) (*models.VenueSearchResult, error) {
	args := m.Called(ctx, term, now)
	result, _ := args.Get(0).(*models.VenueSearchResult)
	return result, args.Error(1)
}

func (m *mockVenueRepo) FindDetail(ctx context.Context, id uint, now time.Time) (*models.VenueDetail, error) {
	args := m.Called(ctx, id, now)
	detail, _ := args.Get(0).(*models.VenueDetail)
	return detail, args.Error(1)
}

type mockArtistRepo struct {
	mock.Mock
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistRepo) Update(ctx context.Context, artist *models.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistRepo) Delete(ctx context.Context, id uint, cascadeShows bool) (*models.Artist, error) {
	args := m.Called(ctx, id, cascadeShows)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*models.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistRepo) FindAll(ctx context.Context) ([]models.ArtistSummary, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]models.ArtistSummary)
	return artists, args.Error(1)
}

func (m *mockArtistRepo) SearchByName(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*models.ArtistSearchResult)
	return result, args.Error(1)
}

func (m *mockArtistRepo) FindDetail(ctx context.Context, id uint, now time.Time) (*models.ArtistDetail, error) {
	args := m.Called(ctx, id, now)
	detail, _ := args.Get(0).(*models.ArtistDetail)
	return detail, args.Error(1)
}

type mockShowRepo struct {
	mock.Mock
}

func (m *mockShowRepo) Create(ctx context.Context, show *models.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *mockShowRepo) FindAll(ctx context.Context) ([]models.ShowListing, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]models.ShowListing)
	return shows, args.Error(1)
}

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Owns(link string) bool {
	return m.Called(link).Bool(0)
}

func (m *mockImageStore) DeleteFile(objectPath string) error {
	return m.Called(objectPath).Error(0)
}
