package routes

import (
	"venue-booking/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Home   *handlers.HomeHandler
	Venue  *handlers.VenueHandler
	Artist *handlers.ArtistHandler
	Show   *handlers.ShowHandler
	// Upload is nil when object storage is not configured.
	Upload *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	app.Get("/", h.Home.Index)
	app.Get("/health", h.Home.Health)

	venues := app.Group("/venues")
	{
		venues.Get("/", h.Venue.GetVenues)
		venues.Post("/search", h.Venue.SearchVenues)
		venues.Get("/create", h.Venue.CreateVenueForm)
		venues.Post("/create", h.Venue.CreateVenue)
		venues.Get("/:id<int>", h.Venue.GetVenue)
		venues.Delete("/:id<int>", h.Venue.DeleteVenue)
		venues.Get("/:id<int>/edit", h.Venue.EditVenueForm)
		venues.Post("/:id<int>/edit", h.Venue.UpdateVenue)
	}

	artists := app.Group("/artists")
	{
		artists.Get("/", h.Artist.GetArtists)
		artists.Post("/search", h.Artist.SearchArtists)
		artists.Get("/create", h.Artist.CreateArtistForm)
		artists.Post("/create", h.Artist.CreateArtist)
		artists.Get("/:id<int>", h.Artist.GetArtist)
		artists.Delete("/:id<int>", h.Artist.DeleteArtist)
		artists.Get("/:id<int>/edit", h.Artist.EditArtistForm)
		artists.Post("/:id<int>/edit", h.Artist.UpdateArtist)
	}

	shows := app.Group("/shows")
	{
		shows.Get("/", h.Show.GetShows)
		shows.Get("/create", h.Show.CreateShowForm)
		shows.Post("/create", h.Show.CreateShow)
	}

	if h.Upload != nil {
		upload := app.Group("/upload")
		upload.Get("/presign", h.Upload.GetPresignedURL)
	}
}
