package handlers

import (
	"time"

	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		logger:  logger,
	}
}

// GetShows godoc
// @Summary List shows
// @Description Every show with its artist and venue names, ordered by start time
// @Tags shows
// @Produce json
// @Param format query string false "Start time display format (full, medium)"
// @Success 200 {object} utils.StandardResponse{data=[]models.ShowListing} "Shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows [get]
func (h *ShowHandler) GetShows(c *fiber.Ctx) error {
	ctx := c.Context()

	format, err := displayFormat(c)
	if err != nil {
		return err
	}

	shows, err := h.service.GetAllShows(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list shows")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve shows")
	}

	times := make([]*string, 0, len(shows))
	for i := range shows {
		times = append(times, &shows[i].StartTime)
	}
	if err := reformatTimes(format, times...); err != nil {
		h.logger.WithError(err).Error("Failed to format show times")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve shows")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}

// CreateShowForm godoc
// @Summary Show creation form
// @Description Empty show form with start_time defaulting to now
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=Form} "Show form"
// @Router /shows/create [get]
func (h *ShowHandler) CreateShowForm(c *fiber.Ctx) error {
	defaults := &ShowRequest{StartTime: time.Now().UTC().Format(showTimeLayouts[1])}
	return utils.SuccessResponse(c, fiber.StatusOK, "Show form", showForm(defaults))
}

// CreateShow godoc
// @Summary Create a show
// @Description Book an existing artist at an existing venue
// @Tags shows
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param show body ShowRequest true "Show"
// @Success 201 {object} utils.StandardResponse{data=models.Show} "Show listed"
// @Failure 400 {object} utils.StandardResponse "Invalid show"
// @Failure 500 {object} utils.StandardResponse "Show could not be listed"
// @Router /shows/create [post]
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	ctx := c.Context()
	const failed = "An error occurred. Show could not be listed."

	var req ShowRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateRequest(&req); fields != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, failed, fields)
	}

	show, err := req.toModel()
	if err != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, failed, map[string]string{
			"start_time": "Invalid date and time.",
		})
	}

	if err := h.service.CreateShow(ctx, show); err != nil {
		return utils.ErrorResponse(c, statusFor(err), failed)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Show was successfully listed!", show)
}
