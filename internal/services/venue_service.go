package services

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/errs"
	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	// CRUD operations
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, id uint, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetVenueByID(ctx context.Context, id uint) (*models.Venue, error)

	// Read models
	ListVenuesByArea(ctx context.Context) ([]models.Area, error)
	SearchVenues(ctx context.Context, term string) (*models.VenueSearchResult, error)
	GetVenueDetail(ctx context.Context, id uint) (*models.VenueDetail, error)
}

type venueService struct {
	repo   repository.VenueRepository
	images ImageStore
	logger *logrus.Logger
	now    func() time.Time
}

// NewVenueService builds the venue service. images may be nil when object
// storage is not configured.
func NewVenueService(repo repository.VenueRepository, images ImageStore, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:   repo,
		images: images,
		logger: logger,
		now:    time.Now,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.repo.Create(ctx, venue); err != nil {
		s.logger.WithError(err).WithField("name", venue.Name).Error("Failed to create venue")
		return errs.WriteFailure("create venue", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   venue.ID,
		"name": venue.Name,
	}).Info("Venue created")
	return nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, venue *models.Venue) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to load venue for update")
		return errs.WriteFailure("update venue", err)
	}
	if existing == nil {
		return errs.NotFound("venue %d", id)
	}

	venue.ID = id
	if err := s.repo.Update(ctx, venue); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update venue")
		return errs.WriteFailure("update venue", err)
	}

	if existing.ImageLink != venue.ImageLink {
		removeImage(s.images, s.logger, existing.ImageLink)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   id,
		"name": venue.Name,
	}).Info("Venue updated")
	return nil
}

// DeleteVenue removes the venue together with its shows and genres.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete venue")
		return nil, errs.WriteFailure("delete venue", err)
	}

	removeImage(s.images, s.logger, venue.ImageLink)

	s.logger.WithFields(logrus.Fields{
		"id":   id,
		"name": venue.Name,
	}).Info("Venue deleted")
	return venue, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) ListVenuesByArea(ctx context.Context) ([]models.Area, error) {
	areas, err := s.repo.ListGroupedByCity(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*models.VenueSearchResult, error) {
	result, err := s.repo.SearchByName(ctx, term, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}
	return result, nil
}

func (s *venueService) GetVenueDetail(ctx context.Context, id uint) (*models.VenueDetail, error) {
	detail, err := s.repo.FindDetail(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get venue detail: %w", err)
	}
	return detail, nil
}

// removeImage deletes link from the store when the store owns it. Failures
// are logged only; the record change has already been committed.
func removeImage(images ImageStore, logger *logrus.Logger, link string) {
	if images == nil || link == "" || !images.Owns(link) {
		return
	}
	if err := images.DeleteFile(link); err != nil {
		logger.WithError(err).WithField("imageLink", link).Warn("Failed to delete image")
	}
}
