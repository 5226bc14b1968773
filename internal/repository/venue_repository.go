package repository

import (
	"context"
	"errors"
	"time"

	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	// CRUD operations
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) (*models.Venue, error)
	FindByID(ctx context.Context, id uint) (*models.Venue, error)

	// Read models
	ListGroupedByCity(ctx context.Context, now time.Time) ([]models.Area, error)
	SearchByName(ctx context.Context, term string, now time.Time) (*models.VenueSearchResult, error)
	FindDetail(ctx context.Context, id uint, now time.Time) (*models.VenueDetail, error)
}

type venueRepository struct {
	base
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{base: newBase(db)}
}

// Create inserts the venue and its genre rows in one transaction.
func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
	return translateError(err)
}

// Update overwrites every mutable column and replaces the genre rows.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, venue.ID).Error; err != nil {
			return err
		}
		venue.CreatedAt = existing.CreatedAt

		if err := tx.Omit(clause.Associations).Save(venue).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.VenueGenre{}).Error; err != nil {
			return err
		}
		if len(venue.Genres) == 0 {
			return nil
		}
		for i := range venue.Genres {
			venue.Genres[i].ID = 0
			venue.Genres[i].VenueID = venue.ID
		}
		return tx.Create(&venue.Genres).Error
	})
	return translateError(err)
}

// Delete removes the venue together with its genres and shows and returns
// the removed row.
func (r *venueRepository) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.VenueGenre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &venue, nil
}

// FindByID returns nil, nil when no venue has the id.
func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.findByID(r.db.WithContext(ctx), id)
}

func (r *venueRepository) findByID(db *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := db.Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("venue_genres.id")
	}).Take(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) ListGroupedByCity(ctx context.Context, now time.Time) ([]models.Area, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var venues []models.Venue
	if err := db.Order("city, state, name, id").Find(&venues).Error; err != nil {
		return nil, err
	}

	counts, err := upcomingCountsByVenue(db, now, nil)
	if err != nil {
		return nil, err
	}

	areas := make([]models.Area, 0)
	for _, v := range venues {
		if n := len(areas); n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, models.Area{City: v.City, State: v.State, Venues: []models.VenueSummary{}})
		}
		area := &areas[len(areas)-1]
		area.Venues = append(area.Venues, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

func (r *venueRepository) SearchByName(ctx context.Context, term string, now time.Time) (*models.VenueSearchResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var venues []models.Venue
	err := db.Where(`name ILIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%").
		Order("name, id").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}

	result := &models.VenueSearchResult{Count: len(venues), Data: []models.VenueSummary{}}
	if len(venues) == 0 {
		return result, nil
	}

	ids := make([]uint, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	counts, err := upcomingCountsByVenue(db, now, ids)
	if err != nil {
		return nil, err
	}

	for _, v := range venues {
		result.Data = append(result.Data, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return result, nil
}

// FindDetail loads the venue and every show it hosts with one comparison
// instant, so the past and upcoming lists never overlap or miss a show.
func (r *venueRepository) FindDetail(ctx context.Context, id uint, now time.Time) (*models.VenueDetail, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	venue, err := r.findByID(db, id)
	if err != nil || venue == nil {
		return nil, err
	}

	var rows []models.ShowRow
	err = db.Table("shows").
		Select("shows.id AS show_id, shows.start_time, shows.venue_id, artists.id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", id).
		Order("shows.start_time, shows.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return models.NewVenueDetail(venue, rows, now), nil
}

// upcomingCountsByVenue counts shows starting after now per venue. Shows
// whose artist no longer exists are not counted, matching the detail lists.
// A nil ids slice counts every venue.
func upcomingCountsByVenue(db *gorm.DB, now time.Time, ids []uint) (map[uint]int, error) {
	type venueCount struct {
		VenueID uint
		Count   int
	}

	query := db.Model(&models.Show{}).
		Select("shows.venue_id AS venue_id, COUNT(*) AS count").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.start_time > ?", now)
	if ids != nil {
		query = query.Where("shows.venue_id IN ?", ids)
	}

	var rows []venueCount
	if err := query.Group("shows.venue_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.VenueID] = row.Count
	}
	return counts, nil
}
