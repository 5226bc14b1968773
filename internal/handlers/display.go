package handlers

import (
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// displayFormat reads the optional ?format= query naming how start times
// are rendered.
func displayFormat(c *fiber.Ctx) (string, error) {
	format := c.Query("format")
	if !utils.ValidDateFormat(format) {
		return "", fiber.NewError(fiber.StatusBadRequest, "format must be full or medium")
	}
	return format, nil
}

func reformatTimes(format string, times ...*string) error {
	if format == "" {
		return nil
	}
	for _, t := range times {
		formatted, err := utils.FormatDateTime(*t, format)
		if err != nil {
			return err
		}
		*t = formatted
	}
	return nil
}

// parseSearch reads search_term from a form or JSON body. A missing body
// is an empty term.
func parseSearch(c *fiber.Ctx) (string, error) {
	var req SearchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return "", err
		}
	}
	return req.SearchTerm, nil
}
