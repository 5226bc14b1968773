package services

import (
	"context"
	"fmt"

	"venue-booking/internal/errs"
	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type ShowService interface {
	CreateShow(ctx context.Context, show *models.Show) error
	GetAllShows(ctx context.Context) ([]models.ShowListing, error)
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
	}
}

func (s *showService) CreateShow(ctx context.Context, show *models.Show) error {
	if err := s.repo.Create(ctx, show); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"artistId": show.ArtistID,
			"venueId":  show.VenueID,
		}).Error("Failed to create show")
		return errs.WriteFailure("create show", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":        show.ID,
		"artistId":  show.ArtistID,
		"venueId":   show.VenueID,
		"startTime": show.StartTime,
	}).Info("Show created")
	return nil
}

func (s *showService) GetAllShows(ctx context.Context) ([]models.ShowListing, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}
