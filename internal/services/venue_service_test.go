package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/errs"
	"venue-booking/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestVenueService(repo *mockVenueRepo, images ImageStore) *venueService {
	svc := NewVenueService(repo, images, quietLogger()).(*venueService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestVenueService_CreateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockVenueRepo)
		venue := &models.Venue{Name: "The Fillmore", City: "San Francisco", State: "CA"}
		repo.On("Create", ctx, venue).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Venue).ID = 7
		})

		err := newTestVenueService(repo, nil).CreateVenue(ctx, venue)

		require.NoError(t, err)
		assert.Equal(t, uint(7), venue.ID)
		repo.AssertExpectations(t)
	})

	t.Run("driver error becomes write failure", func(t *testing.T) {
		repo := new(mockVenueRepo)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

		err := newTestVenueService(repo, nil).CreateVenue(ctx, &models.Venue{Name: "X"})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrWriteFailure)
	})

	t.Run("constraint error keeps its category", func(t *testing.T) {
		repo := new(mockVenueRepo)
		repo.On("Create", ctx, mock.Anything).Return(errs.Constraint("venue name is required"))

		err := newTestVenueService(repo, nil).CreateVenue(ctx, &models.Venue{})

		assert.ErrorIs(t, err, errs.ErrConstraint)
		assert.NotErrorIs(t, err, errs.ErrWriteFailure)
	})
}

func TestVenueService_UpdateVenue(t *testing.T) {
	ctx := context.Background()
	oldLink := "http://localhost:9000/booking-images/old.jpg"
	newLink := "http://localhost:9000/booking-images/new.jpg"

	t.Run("missing venue is not found", func(t *testing.T) {
		repo := new(mockVenueRepo)
		repo.On("FindByID", ctx, uint(3)).Return(nil, nil)

		err := newTestVenueService(repo, nil).UpdateVenue(ctx, 3, &models.Venue{Name: "X"})

		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("replaced image is removed", func(t *testing.T) {
		repo := new(mockVenueRepo)
		images := new(mockImageStore)
		repo.On("FindByID", ctx, uint(3)).Return(&models.Venue{ID: 3, ImageLink: oldLink}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(v *models.Venue) bool {
			return v.ID == 3 && v.ImageLink == newLink
		})).Return(nil)
		images.On("Owns", oldLink).Return(true)
		images.On("DeleteFile", oldLink).Return(nil)

		err := newTestVenueService(repo, images).UpdateVenue(ctx, 3, &models.Venue{Name: "X", ImageLink: newLink})

		require.NoError(t, err)
		repo.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("unchanged image is kept", func(t *testing.T) {
		repo := new(mockVenueRepo)
		images := new(mockImageStore)
		repo.On("FindByID", ctx, uint(3)).Return(&models.Venue{ID: 3, ImageLink: oldLink}, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		err := newTestVenueService(repo, images).UpdateVenue(ctx, 3, &models.Venue{Name: "X", ImageLink: oldLink})

		require.NoError(t, err)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything)
	})

	t.Run("failed update keeps the old image", func(t *testing.T) {
		repo := new(mockVenueRepo)
		images := new(mockImageStore)
		repo.On("FindByID", ctx, uint(3)).Return(&models.Venue{ID: 3, ImageLink: oldLink}, nil)
		repo.On("Update", ctx, mock.Anything).Return(errors.New("deadlock detected"))

		err := newTestVenueService(repo, images).UpdateVenue(ctx, 3, &models.Venue{Name: "X", ImageLink: newLink})

		assert.ErrorIs(t, err, errs.ErrWriteFailure)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything)
	})
}

func TestVenueService_DeleteVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and removes stored image", func(t *testing.T) {
		repo := new(mockVenueRepo)
		images := new(mockImageStore)
		link := "http://localhost:9000/booking-images/fillmore.jpg"
		repo.On("Delete", ctx, uint(5)).Return(&models.Venue{ID: 5, Name: "The Fillmore", ImageLink: link}, nil)
		images.On("Owns", link).Return(true)
		images.On("DeleteFile", link).Return(errors.New("bucket unavailable"))

		venue, err := newTestVenueService(repo, images).DeleteVenue(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "The Fillmore", venue.Name)
		images.AssertExpectations(t)
	})

	t.Run("external image is left alone", func(t *testing.T) {
		repo := new(mockVenueRepo)
		images := new(mockImageStore)
		link := "https://images.unsplash.com/photo.jpg"
		repo.On("Delete", ctx, uint(5)).Return(&models.Venue{ID: 5, ImageLink: link}, nil)
		images.On("Owns", link).Return(false)

		_, err := newTestVenueService(repo, images).DeleteVenue(ctx, 5)

		require.NoError(t, err)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything)
	})

	t.Run("missing venue is not found", func(t *testing.T) {
		repo := new(mockVenueRepo)
		repo.On("Delete", ctx, uint(5)).Return(nil, errs.NotFound("venue 5"))

		venue, err := newTestVenueService(repo, nil).DeleteVenue(ctx, 5)

		assert.Nil(t, venue)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestVenueService_ReadsUseOneClock(t *testing.T) {
	ctx := context.Background()
	repo := new(mockVenueRepo)
	repo.On("ListGroupedByCity", ctx, fixedNow).Return([]models.Area{{City: "San Francisco", State: "CA"}}, nil)
	repo.On("SearchByName", ctx, "", fixedNow).Return(&models.VenueSearchResult{Count: 2}, nil)
	repo.On("FindDetail", ctx, uint(1), fixedNow).Return(&models.VenueDetail{ID: 1}, nil)

	svc := newTestVenueService(repo, nil)

	areas, err := svc.ListVenuesByArea(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 1)

	result, err := svc.SearchVenues(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	detail, err := svc.GetVenueDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), detail.ID)

	repo.AssertExpectations(t)
}

func TestVenueService_GetVenueByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockVenueRepo)
	repo.On("FindByID", ctx, uint(9)).Return(nil, nil)
	repo.On("FindByID", ctx, uint(10)).Return(nil, errors.New("timeout"))

	svc := newTestVenueService(repo, nil)

	venue, err := svc.GetVenueByID(ctx, 9)
	assert.NoError(t, err)
	assert.Nil(t, venue)

	_, err = svc.GetVenueByID(ctx, 10)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrNotFound)
}
