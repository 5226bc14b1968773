package handlers

import "venue-booking/internal/models"

// Form describes an HTML form for the client to render: its target, its
// fields and, for edit forms, the stored values.
type Form struct {
	Action string      `json:"action" example:"/venues/create"`
	Method string      `json:"method" example:"POST"`
	Fields []FormField `json:"fields"`
	Values any         `json:"values,omitempty"`
}

type FormField struct {
	Name     string   `json:"name" example:"name"`
	Label    string   `json:"label" example:"Name"`
	Type     string   `json:"type" example:"text"`
	Required bool     `json:"required"`
	Choices  []string `json:"choices,omitempty"`
}

// StateChoices are the states offered by the venue and artist forms.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

func venueForm(action string, values *VenueRequest) Form {
	form := Form{
		Action: action,
		Method: "POST",
		Fields: []FormField{
			{Name: "name", Label: "Name", Type: "text", Required: true},
			{Name: "city", Label: "City", Type: "text", Required: true},
			{Name: "state", Label: "State", Type: "select", Required: true, Choices: StateChoices},
			{Name: "address", Label: "Address", Type: "text", Required: true},
			{Name: "phone", Label: "Phone", Type: "tel"},
			{Name: "image_link", Label: "Image Link", Type: "url"},
			{Name: "genres", Label: "Genres", Type: "multiselect", Choices: models.GenreChoices},
			{Name: "facebook_link", Label: "Facebook Link", Type: "url"},
			{Name: "website", Label: "Website", Type: "url"},
			{Name: "seeking_talent", Label: "Seeking Talent", Type: "checkbox"},
			{Name: "seeking_description", Label: "Seeking Description", Type: "text"},
		},
	}
	if values != nil {
		form.Values = values
	}
	return form
}

func artistForm(action string, values *ArtistRequest) Form {
	form := Form{
		Action: action,
		Method: "POST",
		Fields: []FormField{
			{Name: "name", Label: "Name", Type: "text", Required: true},
			{Name: "city", Label: "City", Type: "text", Required: true},
			{Name: "state", Label: "State", Type: "select", Required: true, Choices: StateChoices},
			{Name: "phone", Label: "Phone", Type: "tel"},
			{Name: "image_link", Label: "Image Link", Type: "url"},
			{Name: "genres", Label: "Genres", Type: "multiselect", Choices: models.GenreChoices},
			{Name: "facebook_link", Label: "Facebook Link", Type: "url"},
			{Name: "website", Label: "Website", Type: "url"},
			{Name: "seeking_venue", Label: "Seeking Venue", Type: "checkbox"},
			{Name: "seeking_description", Label: "Seeking Description", Type: "text"},
		},
	}
	if values != nil {
		form.Values = values
	}
	return form
}

func showForm(values *ShowRequest) Form {
	form := Form{
		Action: "/shows/create",
		Method: "POST",
		Fields: []FormField{
			{Name: "artist_id", Label: "Artist ID", Type: "number", Required: true},
			{Name: "venue_id", Label: "Venue ID", Type: "number", Required: true},
			{Name: "start_time", Label: "Start Time", Type: "datetime", Required: true},
		},
	}
	if values != nil {
		form.Values = values
	}
	return form
}
