package handlers

import (
	"time"

	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type HealthChecker interface {
	HealthCheck() error
}

type HomeHandler struct {
	db      HealthChecker
	version string
}

func NewHomeHandler(db HealthChecker, version string) *HomeHandler {
	return &HomeHandler{db: db, version: version}
}

// Index godoc
// @Summary Index
// @Description Entry points of the booking directory
// @Tags home
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router / [get]
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue booking directory", fiber.Map{
		"venues":  "/venues",
		"artists": "/artists",
		"shows":   "/shows",
		"docs":    "/swagger/index.html",
	})
}

// Health godoc
// @Summary Health check
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HomeHandler) Health(c *fiber.Ctx) error {
	status := fiber.StatusOK
	dbStatus := "healthy"
	if err := h.db.HealthCheck(); err != nil {
		status = fiber.StatusServiceUnavailable
		dbStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    "ok",
		"service":   "venue-booking",
		"version":   h.version,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
