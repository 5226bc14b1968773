package repository

import (
	"context"

	"venue-booking/internal/database"
	"venue-booking/internal/errs"
	"venue-booking/internal/models"

	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindAll(ctx context.Context) ([]models.ShowListing, error)
}

type showRepository struct {
	base
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{base: newBase(db)}
}

// Create books the show after checking, in the same transaction, that both
// the artist and the venue exist.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return errs.Constraint("artist %d does not exist", show.ArtistID)
		}
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return errs.Constraint("venue %d does not exist", show.VenueID)
		}
		if show.StartTime.IsZero() {
			return errs.Constraint("show start time is required")
		}
		return tx.Create(show).Error
	})
	return translateError(err)
}

// FindAll flattens every show whose artist and venue both still exist,
// ordered by start time.
func (r *showRepository) FindAll(ctx context.Context) ([]models.ShowListing, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.ShowRow
	err := r.db.WithContext(ctx).Table("shows").
		Select("shows.id AS show_id, shows.start_time, artists.id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, venues.id AS venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Order("shows.start_time, shows.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]models.ShowListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, models.ShowListing{
			ID:              row.ShowID,
			VenueID:         row.VenueID,
			ArtistID:        row.ArtistID,
			StartTime:       models.FormatShowTime(row.StartTime),
			ArtistName:      row.ArtistName,
			VenueName:       row.VenueName,
			ArtistImageLink: row.ArtistImageLink,
		})
	}
	return listings, nil
}
