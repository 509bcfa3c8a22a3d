package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/angristan/homeshowcase/internal/api"
	"github.com/angristan/homeshowcase/internal/config"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/messages"
	"github.com/angristan/homeshowcase/internal/tui/viewers"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoModel(t *testing.T) (Model, *api.DemoClient) {
	t.Helper()

	client := api.NewDemoClient().WithDelay(0)
	model := NewModel(&config.Config{}, client)

	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = next.(Model)

	// Simulate the fetchDataCmd directly
	fetchMsg := model.fetchDataCmd()()
	dataMsg, ok := fetchMsg.(messages.DataFetchedMsg)
	require.True(t, ok, "fetchDataCmd returned %T", fetchMsg)

	next, _ = model.Update(dataMsg)
	return next.(Model), client
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestDemoModeInit(t *testing.T) {
	model, _ := newDemoModel(t)

	assert.Equal(t, ScreenListing, model.screen)
	require.NotNil(t, model.property)
	assert.Len(t, model.property.Rooms, 7)

	view := model.View()
	assert.NotContains(t, view, "Loading")
	assert.Contains(t, view, "Nijlanstate 54")
	assert.Contains(t, view, "demo.local")
}

func TestSetupScreenWithoutServers(t *testing.T) {
	model := NewModel(&config.Config{}, nil)
	assert.Equal(t, ScreenSetup, model.screen)
	assert.Nil(t, model.client)
}

func TestLastServerSelectsClient(t *testing.T) {
	cfg := &config.Config{
		Servers:    []config.ServerConfig{{URL: "http://listing.local:8000"}},
		AssetBase:  "https://cdn.example.com/p/",
		LastServer: "http://listing.local:8000",
	}
	model := NewModel(cfg, nil)

	assert.Equal(t, ScreenListing, model.screen)
	require.NotNil(t, model.client)
	assert.Equal(t, "listing.local:8000", model.client.Host())
	assert.Equal(t, "https://cdn.example.com/p/", model.resolver.Base, "configured asset base wins")
}

func TestGalleryLocksScroll(t *testing.T) {
	model, _ := newDemoModel(t)

	model = send(model, messages.OpenGalleryMsg{Index: 1})
	require.NotNil(t, model.gallery)
	assert.True(t, model.lock.Held())
	assert.Equal(t, 1, model.gallery.Index())
	assert.Equal(t, model.property.AllImages(), model.gallery.Images())

	// Scroll input reaches the gallery, not the page
	offset := model.listingScreen.ScrollOffset()
	model = send(model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, offset, model.listingScreen.ScrollOffset())

	model = send(model, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, model.gallery.Index())

	model = send(model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, model.gallery)
	assert.Empty(t, model.overlays)
	assert.False(t, model.lock.Held())
}

func TestOpenGalleryFromListing(t *testing.T) {
	model, _ := newDemoModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, messages.OpenGalleryMsg{Index: 0}, msg)

	model = send(model, msg)
	require.NotNil(t, model.gallery)
	assert.Equal(t, viewers.StateSingle, model.gallery.State())
}

func TestOpenRoomFromListing(t *testing.T) {
	model, _ := newDemoModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.OpenRoomMsg)
	require.True(t, ok)
	assert.Equal(t, "Living Room", msg.Room.Name)

	model = send(model, msg)
	require.NotNil(t, model.room)
	assert.True(t, model.lock.Held())
	assert.Contains(t, model.View(), "Living Room")
}

func TestStackedViewersShareLock(t *testing.T) {
	model, _ := newDemoModel(t)

	model = send(model, messages.OpenRoomMsg{Room: model.property.Rooms[1]})
	model = send(model, messages.OpenGalleryMsg{Index: 0})
	assert.Equal(t, 2, model.lock.Count())

	// The gallery was opened last and takes input first
	model = send(model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, model.gallery)
	require.NotNil(t, model.room)
	assert.True(t, model.lock.Held(), "room viewer still open")

	model = send(model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, model.room)
	assert.False(t, model.lock.Held())
}

func TestOpenRoomSwitchesOpenViewer(t *testing.T) {
	model, _ := newDemoModel(t)

	model = send(model, messages.OpenRoomMsg{Room: model.property.Rooms[0]})
	model = send(model, messages.OpenRoomMsg{Room: model.property.Rooms[2]})

	require.NotNil(t, model.room)
	assert.Equal(t, model.property.Rooms[2].ID, model.room.Room().ID)
	assert.Equal(t, 1, model.lock.Count())
}

func TestViewersNeedListing(t *testing.T) {
	model := NewModel(&config.Config{}, api.NewDemoClient().WithDelay(0))

	model = send(model, messages.OpenGalleryMsg{Index: 0})
	assert.Nil(t, model.gallery)
	assert.False(t, model.lock.Held())
}

func TestNotFoundState(t *testing.T) {
	model, _ := newDemoModel(t)

	err := fmt.Errorf("fetch: %w", &api.APIError{StatusCode: 404, Message: "Property not found"})
	model = send(model, messages.ErrorMsg{Err: err})

	assert.Nil(t, model.property)
	assert.Contains(t, model.View(), "No property found")
}

func TestErrorState(t *testing.T) {
	model, _ := newDemoModel(t)

	model = send(model, messages.ErrorMsg{Err: errors.New("connection refused")})
	view := model.View()
	assert.Contains(t, view, "Something went wrong")
	assert.Contains(t, view, "connection refused")
}

func TestViewingRequestRoundTrip(t *testing.T) {
	model, client := newDemoModel(t)

	model = send(model, messages.ShowFormMsg{})
	require.True(t, model.showForm)
	assert.Contains(t, model.View(), "Request a viewing")

	req := &models.ViewingRequest{
		PropertyID:    model.property.ID,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "+31612345678",
		PreferredDate: "2999-01-01",
	}
	cmd := model.submitViewingCmd(req)
	result, ok := cmd().(messages.ViewingSubmittedMsg)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, models.StatusPending, result.Request.Status)
	assert.Len(t, client.Requests(), 1)

	model = send(model, result)
	assert.Contains(t, model.View(), "Request sent!")

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.HideFormMsg{}, cmd())

	model = send(model, messages.HideFormMsg{})
	assert.False(t, model.showForm)
}

func TestRefreshKeepsRoomViewer(t *testing.T) {
	model, _ := newDemoModel(t)
	room := model.property.Rooms[0]

	model = send(model, messages.OpenRoomMsg{Room: room})
	model = send(model, tea.KeyMsg{Type: tea.KeyEnter}) // ignored by the viewer

	fresh, err := model.client.FetchProperty(model.ctx)
	require.NoError(t, err)
	model = send(model, messages.DataFetchedMsg{Property: fresh})

	require.NotNil(t, model.room)
	assert.Same(t, fresh.RoomByID(room.ID), model.room.Room())
}

func TestRefreshUpdatesOpenGallery(t *testing.T) {
	model, _ := newDemoModel(t)
	last := model.property.AllImages().Len() - 1

	model = send(model, messages.OpenGalleryMsg{Index: last})
	require.NotNil(t, model.gallery)
	require.Equal(t, last, model.gallery.Index())

	fresh, err := model.client.FetchProperty(model.ctx)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.Images)
	fresh.Rooms = nil
	model = send(model, messages.DataFetchedMsg{Property: fresh})

	require.NotNil(t, model.gallery)
	assert.Equal(t, fresh.AllImages(), model.gallery.Images())
	assert.Equal(t, len(fresh.Images)-1, model.gallery.Index())
	assert.True(t, model.lock.Held())
}
