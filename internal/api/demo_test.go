package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angristan/homeshowcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoClientData(t *testing.T) {
	d := NewDemoClient().WithDelay(0)
	p, err := d.FetchProperty(context.Background())

	if err != nil {
		t.Fatalf("FetchProperty returned error: %v", err)
	}

	t.Logf("Rooms: %d, Images: %d", len(p.Rooms), len(p.AllImages()))

	if len(p.Rooms) == 0 {
		t.Error("No rooms returned")
	}

	for _, r := range p.Rooms {
		if r.ID == 0 {
			t.Errorf("Room %s has no ID", r.Name)
		}
		if len(r.Images) == 0 {
			t.Errorf("Room %s has no images", r.Name)
		}
	}

	if len(p.Images) == 0 {
		t.Error("No property images returned")
	}
}

func TestDemoClientReturnsCopies(t *testing.T) {
	d := NewDemoClient().WithDelay(0)

	p, err := d.FetchProperty(context.Background())
	require.NoError(t, err)
	p.Rooms[0].Name = "Changed"

	again, err := d.FetchProperty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Living Room", again.Rooms[0].Name)
}

func TestDemoClientSubmit(t *testing.T) {
	d := NewDemoClient().WithDelay(0)
	d.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	out, err := d.SubmitViewingRequest(context.Background(), &models.ViewingRequest{
		PropertyID:    1,
		Name:          "Anna",
		Email:         "anna@example.nl",
		Phone:         "06 1234 5678",
		PreferredDate: "2026-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, models.StatusPending, out.Status)
	assert.Len(t, d.Requests(), 1)

	_, err = d.SubmitViewingRequest(context.Background(), &models.ViewingRequest{PropertyID: 1, Name: "A"})
	assert.True(t, errors.Is(err, models.ErrInvalidRequest))

	_, err = d.SubmitViewingRequest(context.Background(), &models.ViewingRequest{
		PropertyID:    99,
		Name:          "Anna",
		Email:         "anna@example.nl",
		Phone:         "0612345678",
		PreferredDate: "2026-03-02",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDemoClientHonoursContext(t *testing.T) {
	d := NewDemoClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.FetchProperty(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
