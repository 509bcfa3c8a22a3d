package api

import (
	"context"

	"github.com/angristan/homeshowcase/internal/models"
)

// ListingClient loads the showcased listing and accepts viewing requests.
// This abstraction allows for both a real listing server and demo mode.
type ListingClient interface {
	// FetchProperty retrieves the listing with all of its rooms
	FetchProperty(ctx context.Context) (*models.Property, error)

	// SubmitViewingRequest sends a viewing request and returns the stored copy
	SubmitViewingRequest(ctx context.Context, req *models.ViewingRequest) (*models.ViewingRequest, error)

	// AssetBase is the prefix image references are resolved under
	AssetBase() string

	// Host identifies the server for display
	Host() string
}

// Compile-time checks that both clients implement ListingClient
var (
	_ ListingClient = (*Client)(nil)
	_ ListingClient = (*DemoClient)(nil)
)
