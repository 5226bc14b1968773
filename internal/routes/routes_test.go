package routes

import (
	"io"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okHealth struct{}

func (okHealth) HealthCheck() error { return nil }

func newApp(withUpload bool) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(logger)})
	h := Handlers{
		Home:   handlers.NewHomeHandler(okHealth{}, "test"),
		Venue:  handlers.NewVenueHandler(nil, logger),
		Artist: handlers.NewArtistHandler(nil, logger),
		Show:   handlers.NewShowHandler(nil, logger),
	}
	if withUpload {
		h.Upload = handlers.NewUploadHandler(nil, logger)
	}
	Setup(app, h)
	return app
}

func TestSetup(t *testing.T) {
	app := newApp(false)

	tests := []struct {
		method string
		path   string
		code   int
	}{
		{"GET", "/", fiber.StatusOK},
		{"GET", "/health", fiber.StatusOK},
		{"GET", "/venues/create", fiber.StatusOK},
		{"GET", "/artists/create", fiber.StatusOK},
		{"GET", "/nowhere", fiber.StatusNotFound},
		{"GET", "/venues/abc", fiber.StatusNotFound},
		{"PUT", "/venues/1", fiber.StatusMethodNotAllowed},
		{"GET", "/upload/presign?filename=a.jpg", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestSetupWithUpload(t *testing.T) {
	app := newApp(true)

	// a missing filename is rejected before the presigner is used
	resp, err := app.Test(httptest.NewRequest("GET", "/upload/presign", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
