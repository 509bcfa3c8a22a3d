package messages

import (
	"github.com/angristan/homeshowcase/internal/api"
	"github.com/angristan/homeshowcase/internal/models"
)

// ServerConnectedMsg indicates a listing server answered the health probe
type ServerConnectedMsg struct {
	Client *api.Client
	Name   string
}

// DataFetchedMsg contains the listing fetched from the server
type DataFetchedMsg struct {
	Property *models.Property
}

// ErrorMsg indicates an error occurred
type ErrorMsg struct {
	Err error
}

// OpenGalleryMsg requests opening the property gallery
type OpenGalleryMsg struct {
	Index int
}

// OpenRoomMsg requests opening the viewer for a room
type OpenRoomMsg struct {
	Room *models.Room
}

// ShowFormMsg requests showing the viewing request form
type ShowFormMsg struct{}

// HideFormMsg requests hiding the viewing request form
type HideFormMsg struct{}

// SubmitViewingMsg carries a validated viewing request to send
type SubmitViewingMsg struct {
	Request *models.ViewingRequest
}

// ViewingSubmittedMsg reports the outcome of a viewing request submission
type ViewingSubmittedMsg struct {
	Request *models.ViewingRequest
	Err     error
}

// RefreshMsg requests a data refresh
type RefreshMsg struct{}
