package handlers

import (
	"fmt"

	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		logger:  logger,
	}
}

// GetVenues godoc
// @Summary List venues by area
// @Description Group every venue by city and state, with each venue's number of upcoming shows
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Area} "Venues grouped by area"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues [get]
func (h *VenueHandler) GetVenues(c *fiber.Ctx) error {
	ctx := c.Context()

	areas, err := h.service.ListVenuesByArea(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", areas)
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive substring search on venue name. An empty term matches every venue.
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search body SearchRequest false "Search term"
// @Success 200 {object} utils.StandardResponse{data=VenueSearchResponse} "Matching venues"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	ctx := c.Context()

	term, err := parseSearch(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.SearchVenues(ctx, term)
	if err != nil {
		h.logger.WithError(err).WithField("term", term).Error("Failed to search venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", VenueSearchResponse{
		SearchTerm:        term,
		VenueSearchResult: result,
	})
}

// GetVenue godoc
// @Summary Get venue detail
// @Description Get a venue with its past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Param format query string false "Start time display format (full, medium)"
// @Success 200 {object} utils.StandardResponse{data=models.VenueDetail} "Venue detail"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}
	format, err := displayFormat(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetVenueDetail(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venue")
	}
	if detail == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
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
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venue")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", detail)
}

// CreateVenueForm godoc
// @Summary Venue creation form
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=Form} "Empty venue form"
// @Router /venues/create [get]
func (h *VenueHandler) CreateVenueForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue form", venueForm("/venues/create", nil))
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param venue body VenueRequest true "Venue"
// @Success 201 {object} utils.StandardResponse{data=VenueResponse} "Venue listed"
// @Failure 400 {object} utils.StandardResponse "Invalid venue"
// @Failure 500 {object} utils.StandardResponse "Venue could not be listed"
// @Router /venues/create [post]
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	ctx := c.Context()

	var req VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	failed := fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name)
	if fields := validateRequest(&req); fields != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, failed, fields)
	}

	venue := req.toModel()
	if err := h.service.CreateVenue(ctx, venue); err != nil {
		return utils.ErrorResponse(c, statusFor(err), failed)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		fmt.Sprintf("Venue %s was successfully listed!", venue.Name), venueResponseFrom(venue))
}

// EditVenueForm godoc
// @Summary Venue edit form
// @Description Get the venue form filled with the stored venue
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=Form} "Venue form"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id}/edit [get]
func (h *VenueHandler) EditVenueForm(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.GetVenueByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venue")
	}
	if venue == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
	}

	form := venueForm(fmt.Sprintf("/venues/%d/edit", id), venueRequestFrom(venue))
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue form", form)
}

// UpdateVenue godoc
// @Summary Update a venue
// @Description Overwrite every field of a venue
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Venue ID"
// @Param venue body VenueRequest true "Venue"
// @Success 200 {object} utils.StandardResponse{data=VenueResponse} "Venue updated"
// @Failure 400 {object} utils.StandardResponse "Invalid venue"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse "Venue could not be updated"
// @Router /venues/{id}/edit [post]
func (h *VenueHandler) UpdateVenue(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	var req VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	failed := fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name)
	if fields := validateRequest(&req); fields != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, failed, fields)
	}

	venue := req.toModel()
	if err := h.service.UpdateVenue(ctx, id, venue); err != nil {
		code := statusFor(err)
		if code == fiber.StatusNotFound {
			return utils.ErrorResponse(c, code, "Venue not found")
		}
		return utils.ErrorResponse(c, code, failed)
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf("Venue %s was successfully updated!", venue.Name), venueResponseFrom(venue))
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Delete a venue together with its shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse "Venue deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse "Venue could not be deleted"
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.DeleteVenue(ctx, id)
	if err != nil {
		code := statusFor(err)
		if code == fiber.StatusNotFound {
			return utils.ErrorResponse(c, code, "Venue not found")
		}
		return utils.ErrorResponse(c, code, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf("Venue %s was successfully deleted.", venue.Name), nil)
}
