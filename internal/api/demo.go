package api

import (
	"context"
	"sync"
	"time"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/sample"
)

// DemoClient implements ListingClient for demo mode without a listing
// server. Viewing requests are kept in memory.
type DemoClient struct {
	property *models.Property
	requests []*models.ViewingRequest
	delay    time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewDemoClient creates a demo client serving the sample listing
func NewDemoClient() *DemoClient {
	d := &DemoClient{
		property: sample.Property(),
		delay:    time.Second,
		now:      time.Now,
	}
	d.property.ID = 1
	for i, room := range d.property.Rooms {
		room.ID = int64(i + 1)
		room.PropertyID = d.property.ID
	}
	return d
}

// WithDelay sets the simulated network latency
func (d *DemoClient) WithDelay(delay time.Duration) *DemoClient {
	d.delay = delay
	return d
}

// Host returns the demo server host
func (d *DemoClient) Host() string {
	return "demo.local"
}

// AssetBase returns the local asset prefix
func (d *DemoClient) AssetBase() string {
	return media.DefaultAssetBase
}

// FetchProperty returns the sample listing
func (d *DemoClient) FetchProperty(ctx context.Context) (*models.Property, error) {
	// Simulate network delay for realistic demo experience
	if err := d.wait(ctx); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	// Return a copy so callers cannot modify the demo data
	p := *d.property
	p.Rooms = make([]*models.Room, len(d.property.Rooms))
	for i, room := range d.property.Rooms {
		r := *room
		p.Rooms[i] = &r
	}

	return &p, nil
}

// SubmitViewingRequest validates and stores a viewing request in memory
func (d *DemoClient) SubmitViewingRequest(ctx context.Context, req *models.ViewingRequest) (*models.ViewingRequest, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}

	if err := req.Validate(d.now()); err != nil {
		return nil, err
	}
	if req.PropertyID != d.property.ID {
		return nil, &APIError{StatusCode: 404, Message: "Property not found"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	stored := *req
	stored.ID = int64(len(d.requests) + 1)
	stored.Status = models.StatusPending
	stored.CreatedAt = d.now().UTC()
	d.requests = append(d.requests, &stored)

	out := stored
	return &out, nil
}

// Requests returns the viewing requests received so far
func (d *DemoClient) Requests() []models.ViewingRequest {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.ViewingRequest, len(d.requests))
	for i, r := range d.requests {
		out[i] = *r
	}
	return out
}

func (d *DemoClient) wait(ctx context.Context) error {
	if d.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
