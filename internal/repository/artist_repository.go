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

type ArtistRepository interface {
	// CRUD operations
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id uint, cascadeShows bool) (*models.Artist, error)
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.ArtistSummary, error)

	// Read models
	SearchByName(ctx context.Context, term string) (*models.ArtistSearchResult, error)
	FindDetail(ctx context.Context, id uint, now time.Time) (*models.ArtistDetail, error)
}

type artistRepository struct {
	base
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{base: newBase(db)}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
	return translateError(err)
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, artist.ID).Error; err != nil {
			return err
		}
		artist.CreatedAt = existing.CreatedAt

		if err := tx.Omit(clause.Associations).Save(artist).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", artist.ID).Delete(&models.ArtistGenre{}).Error; err != nil {
			return err
		}
		if len(artist.Genres) == 0 {
			return nil
		}
		for i := range artist.Genres {
			artist.Genres[i].ID = 0
			artist.Genres[i].ArtistID = artist.ID
		}
		return tx.Create(&artist.Genres).Error
	})
	return translateError(err)
}

// Delete removes the artist and its genres. Its shows are removed only when
// cascadeShows is set; otherwise they stay behind and drop out of listings.
func (r *artistRepository) Delete(ctx context.Context, id uint, cascadeShows bool) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		if cascadeShows {
			if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("artist_id = ?", id).Delete(&models.ArtistGenre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &artist, nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.findByID(r.db.WithContext(ctx), id)
}

func (r *artistRepository) findByID(db *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := db.Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("artist_genres.id")
	}).Take(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.ArtistSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	artists := make([]models.ArtistSummary, 0)
	err := r.db.WithContext(ctx).Model(&models.Artist{}).
		Select("id, name").
		Order("name, id").
		Scan(&artists).Error
	return artists, err
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	data := make([]models.ArtistSummary, 0)
	err := r.db.WithContext(ctx).Model(&models.Artist{}).
		Select("id, name").
		Where(`name ILIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%").
		Order("name, id").
		Scan(&data).Error
	if err != nil {
		return nil, err
	}
	return &models.ArtistSearchResult{Count: len(data), Data: data}, nil
}

func (r *artistRepository) FindDetail(ctx context.Context, id uint, now time.Time) (*models.ArtistDetail, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	artist, err := r.findByID(db, id)
	if err != nil || artist == nil {
		return nil, err
	}

	var rows []models.ShowRow
	err = db.Table("shows").
		Select("shows.id AS show_id, shows.start_time, shows.artist_id, venues.id AS venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", id).
		Order("shows.start_time, shows.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return models.NewArtistDetail(artist, rows, now), nil
}
