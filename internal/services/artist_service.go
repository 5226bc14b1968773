package services

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/config"
	"venue-booking/internal/errs"
	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	// CRUD operations
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, id uint, artist *models.Artist) error
	DeleteArtist(ctx context.Context, id uint) (*models.Artist, error)
	GetArtistByID(ctx context.Context, id uint) (*models.Artist, error)
	GetAllArtists(ctx context.Context) ([]models.ArtistSummary, error)

	// Read models
	SearchArtists(ctx context.Context, term string) (*models.ArtistSearchResult, error)
	GetArtistDetail(ctx context.Context, id uint) (*models.ArtistDetail, error)
}

type artistService struct {
	repo          repository.ArtistRepository
	images        ImageStore
	cascadeDelete bool
	logger        *logrus.Logger
	now           func() time.Time
}

func NewArtistService(repo repository.ArtistRepository, images ImageStore, cfg config.BookingConfig, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:          repo,
		images:        images,
		cascadeDelete: cfg.ArtistDeleteCascade,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *artistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if err := s.repo.Create(ctx, artist); err != nil {
		s.logger.WithError(err).WithField("name", artist.Name).Error("Failed to create artist")
		return errs.WriteFailure("create artist", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   artist.ID,
		"name": artist.Name,
	}).Info("Artist created")
	return nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, artist *models.Artist) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to load artist for update")
		return errs.WriteFailure("update artist", err)
	}
	if existing == nil {
		return errs.NotFound("artist %d", id)
	}

	artist.ID = id
	if err := s.repo.Update(ctx, artist); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update artist")
		return errs.WriteFailure("update artist", err)
	}

	if existing.ImageLink != artist.ImageLink {
		removeImage(s.images, s.logger, existing.ImageLink)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   id,
		"name": artist.Name,
	}).Info("Artist updated")
	return nil
}

// DeleteArtist removes the artist and its genres. Its shows follow only
// when ARTIST_DELETE_CASCADE is enabled.
func (s *artistService) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.repo.Delete(ctx, id, s.cascadeDelete)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete artist")
		return nil, errs.WriteFailure("delete artist", err)
	}

	removeImage(s.images, s.logger, artist.ImageLink)

	s.logger.WithFields(logrus.Fields{
		"id":           id,
		"name":         artist.Name,
		"cascadeShows": s.cascadeDelete,
	}).Info("Artist deleted")
	return artist, nil
}

func (s *artistService) GetArtistByID(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) GetAllArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	result, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return result, nil
}

func (s *artistService) GetArtistDetail(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	detail, err := s.repo.FindDetail(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get artist detail: %w", err)
	}
	return detail, nil
}
