package handlers

import (
	"fmt"

	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service services.ArtistService
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		logger:  logger,
	}
}

// GetArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.ArtistSummary} "Artists"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists [get]
func (h *ArtistHandler) GetArtists(c *fiber.Ctx) error {
	ctx := c.Context()

	artists, err := h.service.GetAllArtists(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists)
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive substring search on artist name. An empty term matches every artist.
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search body SearchRequest false "Search term"
// @Success 200 {object} utils.StandardResponse{data=ArtistSearchResponse} "Matching artists"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	ctx := c.Context()

	term, err := parseSearch(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.SearchArtists(ctx, term)
	if err != nil {
		h.logger.WithError(err).WithField("term", term).Error("Failed to search artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", ArtistSearchResponse{
		SearchTerm:         term,
		ArtistSearchResult: result,
	})
}

// GetArtist godoc
// @Summary Get artist detail
// @Description Get an artist with past and upcoming shows
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Param format query string false "Start time display format (full, medium)"
// @Success 200 {object} utils.StandardResponse{data=models.ArtistDetail} "Artist detail"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}
	format, err := displayFormat(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetArtistDetail(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artist")
	}
	if detail == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
	}

	times := make([]*string, 0, len(detail.PastShows)+len(detail.UpcomingShows))
	for i := range detail.PastShows {
		times = append(times, &detail.PastShows[i].StartTime)
	}
	for i := range detail.UpcomingShows {
		times = append(times, &detail.UpcomingShows[i].StartTime)
	}
	if err := reformatTimes(format, times...); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to format show times")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", detail)
}

// CreateArtistForm godoc
// @Summary Artist creation form
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=Form} "Empty artist form"
// @Router /artists/create [get]
func (h *ArtistHandler) CreateArtistForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist form", artistForm("/artists/create", nil))
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param artist body ArtistRequest true "Artist"
// @Success 201 {object} utils.StandardResponse{data=ArtistResponse} "Artist listed"
// @Failure 400 {object} utils.StandardResponse "Invalid artist"
// @Failure 500 {object} utils.StandardResponse "Artist could not be listed"
// @Router /artists/create [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	failed := fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name)
	if fields := validateRequest(&req); fields != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, failed, fields)
	}

	artist := req.toModel()
	if err := h.service.CreateArtist(ctx, artist); err != nil {
		return utils.ErrorResponse(c, statusFor(err), failed)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		fmt.Sprintf("Artist %s was successfully listed!", artist.Name), artistResponseFrom(artist))
}

// EditArtistForm godoc
// @Summary Artist edit form
// @Description Get the artist form filled with the stored artist
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=Form} "Artist form"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id}/edit [get]
func (h *ArtistHandler) EditArtistForm(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.GetArtistByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artist")
	}
	if artist == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
	}

	form := artistForm(fmt.Sprintf("/artists/%d/edit", id), artistRequestFrom(artist))
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist form", form)
}

// UpdateArtist godoc
// @Summary Update an artist
// @Description Overwrite every field of an artist
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Artist ID"
// @Param artist body ArtistRequest true "Artist"
// @Success 200 {object} utils.StandardResponse{data=ArtistResponse} "Artist updated"
// @Failure 400 {object} utils.StandardResponse "Invalid artist"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse "Artist could not be updated"
// @Router /artists/{id}/edit [post]
func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var req ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	failed := fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name)
	if fields := validateRequest(&req); fields != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, failed, fields)
	}

	artist := req.toModel()
	if err := h.service.UpdateArtist(ctx, id, artist); err != nil {
		code := statusFor(err)
		if code == fiber.StatusNotFound {
			return utils.ErrorResponse(c, code, "Artist not found")
		}
		return utils.ErrorResponse(c, code, failed)
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf("Artist %s was successfully updated!", artist.Name), artistResponseFrom(artist))
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Delete an artist. Its shows are deleted too when ARTIST_DELETE_CASCADE is set.
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Artist deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse "Artist could not be deleted"
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.DeleteArtist(ctx, id)
	if err != nil {
		code := statusFor(err)
		if code == fiber.StatusNotFound {
			return utils.ErrorResponse(c, code, "Artist not found")
		}
		return utils.ErrorResponse(c, code, fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id))
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf("Artist %s was successfully deleted.", artist.Name), nil)
}
