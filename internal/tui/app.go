package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/angristan/homeshowcase/internal/api"
	"github.com/angristan/homeshowcase/internal/config"
	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/components"
	"github.com/angristan/homeshowcase/internal/tui/messages"
	"github.com/angristan/homeshowcase/internal/tui/screens"
	"github.com/angristan/homeshowcase/internal/tui/viewers"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenSetup Screen = iota
	ScreenListing
)

// overlay identifies an open media viewer
type overlay int

const (
	overlayGallery overlay = iota
	overlayRoom
)

// Model is the main application model. It hosts the listing page and the
// media viewers opened over it, and owns the page scroll lock they share.
type Model struct {
	// Configuration
	config *config.Config

	// Listing source
	client   api.ListingClient
	property *models.Property

	// Current screen
	screen Screen

	// Screen models
	setupScreen   screens.SetupModel
	listingScreen screens.ListingModel
	formScreen    screens.FormModel
	showForm      bool

	// Media viewers, with overlays holding the open ones in open order.
	// The last entry receives input.
	lock     *media.ScrollLock
	zones    components.Zones
	resolver media.Resolver
	gallery  *viewers.GalleryModel
	room     *viewers.RoomModel
	overlays []overlay

	// Window size
	width  int
	height int

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model. A nil client falls back to the
// last configured server, and to the setup screen when there is none.
func NewModel(cfg *config.Config, client api.ListingClient) Model {
	ctx, cancel := context.WithCancel(context.Background())

	zones := components.NewZones(zone.New())

	m := Model{
		config:        cfg,
		ctx:           ctx,
		cancel:        cancel,
		lock:          media.NewScrollLock(),
		zones:         zones,
		setupScreen:   screens.NewSetupModel(),
		listingScreen: screens.NewListingModel(zones),
		formScreen:    screens.NewFormModel(),
	}

	if client == nil {
		if server, err := cfg.GetLastServer(); err == nil {
			client = api.NewClient(server.URL)
		}
	}

	if client != nil {
		m.useClient(client)
		m.screen = ScreenListing
	} else {
		m.screen = ScreenSetup
	}

	return m
}

// useClient points the listing at a new source
func (m *Model) useClient(client api.ListingClient) {
	m.client = client

	base := client.AssetBase()
	if m.config.AssetBase != "" {
		base = m.config.AssetBase
	}
	m.resolver = media.NewResolver(base)
	m.listingScreen.SetResolver(m.resolver)
	m.listingScreen.SetHost(client.Host())
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("HomeShowCase"),
	}

	// Start with appropriate screen initialization
	switch m.screen {
	case ScreenSetup:
		cmds = append(cmds, m.setupScreen.Init())
	case ScreenListing:
		cmds = append(cmds, m.listingScreen.Init(), m.fetchDataCmd())
	}

	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setupScreen.SetSize(msg.Width, msg.Height)
		m.listingScreen.SetSize(msg.Width, msg.Height)
		m.formScreen.SetSize(msg.Width, msg.Height)
		if m.gallery != nil {
			m.gallery.SetSize(msg.Width, msg.Height)
		}
		if m.room != nil {
			m.room.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		// Global key handlers
		if msg.String() == "ctrl+c" {
			m.closeViewers()
			m.cancel()
			return m, tea.Quit
		}
		return m.routeInput(msg)

	case tea.MouseMsg:
		return m.routeInput(msg)

	case messages.ServerConnectedMsg:
		m.useClient(msg.Client)
		m.config.AddServer(config.ServerConfig{URL: msg.Client.BaseURL(), Name: msg.Name})
		m.config.LastServer = msg.Client.BaseURL()
		if err := m.config.Save(); err != nil {
			slog.Warn("failed to save config", "error", err)
		}

		m.screen = ScreenListing
		m.listingScreen.SetLoading(true)
		cmds = append(cmds, m.listingScreen.Init(), m.fetchDataCmd())

	case messages.DataFetchedMsg:
		m.property = msg.Property
		m.listingScreen.SetData(msg.Property)
		if msg.Property != nil {
			m.formScreen.SetProperty(msg.Property.ID)
			m.refreshRoomViewer()
			if m.gallery != nil {
				m.gallery.SetImages(msg.Property.AllImages())
			}
		}

	case messages.ErrorMsg:
		if errors.Is(msg.Err, api.ErrNotFound) {
			m.property = nil
			m.listingScreen.SetNotFound()
		} else {
			slog.Error("listing request failed", "error", msg.Err)
			m.listingScreen.SetError(msg.Err)
		}

	case messages.OpenGalleryMsg:
		m.openGallery(msg.Index)
		return m, nil

	case messages.OpenRoomMsg:
		m.openRoom(msg.Room)
		return m, nil

	case messages.ShowFormMsg:
		if m.property == nil {
			return m, nil
		}
		if m.formScreen.Submitted() != nil {
			m.formScreen.Reset()
		}
		m.showForm = true
		return m, textinput.Blink

	case messages.HideFormMsg:
		m.showForm = false
		return m, nil

	case messages.SubmitViewingMsg:
		cmds = append(cmds, m.submitViewingCmd(msg.Request))

	case messages.RefreshMsg:
		if m.client == nil {
			return m, nil
		}
		m.listingScreen.SetLoading(true)
		cmds = append(cmds, m.listingScreen.Init(), m.fetchDataCmd())
	}

	// Everything that is not input reaches every live screen; spinners and
	// cursors ignore ticks that are not theirs.
	var cmd tea.Cmd
	if m.screen == ScreenSetup {
		m.setupScreen, cmd = m.setupScreen.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.listingScreen, cmd = m.listingScreen.Update(msg, m.lock.Held())
	cmds = append(cmds, cmd)
	m.formScreen, cmd = m.formScreen.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// routeInput sends key and mouse input to the topmost layer only
func (m Model) routeInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if top, ok := m.topOverlay(); ok {
		switch top {
		case overlayGallery:
			*m.gallery, cmd = m.gallery.Update(msg)
			if m.gallery.Closed() {
				m.dropOverlay(overlayGallery)
			}
		case overlayRoom:
			*m.room, cmd = m.room.Update(msg)
			if m.room.Closed() {
				m.dropOverlay(overlayRoom)
			}
		}
		return m, cmd
	}

	if m.showForm {
		m.formScreen, cmd = m.formScreen.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case ScreenSetup:
		m.setupScreen, cmd = m.setupScreen.Update(msg)
	case ScreenListing:
		m.listingScreen, cmd = m.listingScreen.Update(msg, m.lock.Held())
	}
	return m, cmd
}

func (m *Model) viewerOptions() viewers.Options {
	return viewers.Options{
		Lock:          m.lock,
		Resolver:      m.resolver,
		Zones:         m.zones,
		RoomArrowKeys: m.config.Viewer.RoomArrowKeys,
		Width:         m.width,
		Height:        m.height,
	}
}

// openGallery opens the property gallery at index. An open gallery jumps to
// index in single mode instead.
func (m *Model) openGallery(index int) {
	if m.property == nil {
		return
	}
	if m.gallery != nil {
		m.gallery.ToSingle(index)
		return
	}
	g := viewers.NewGalleryModel(m.property.AllImages(), index, m.viewerOptions())
	m.gallery = &g
	m.overlays = append(m.overlays, overlayGallery)
}

// openRoom opens the room viewer. An open room viewer switches rooms.
func (m *Model) openRoom(room *models.Room) {
	if room == nil {
		return
	}
	if m.room != nil {
		m.room.SetRoom(room)
		return
	}
	r := viewers.NewRoomModel(room, m.viewerOptions())
	m.room = &r
	m.overlays = append(m.overlays, overlayRoom)
}

// refreshRoomViewer points an open room viewer at the reloaded room
func (m *Model) refreshRoomViewer() {
	if m.room == nil {
		return
	}
	if fresh := m.property.RoomByID(m.room.Room().ID); fresh != nil {
		m.room.SetRoom(fresh)
	}
}

func (m Model) topOverlay() (overlay, bool) {
	if len(m.overlays) == 0 {
		return 0, false
	}
	return m.overlays[len(m.overlays)-1], true
}

func (m *Model) dropOverlay(o overlay) {
	for i, open := range m.overlays {
		if open == o {
			m.overlays = append(m.overlays[:i:i], m.overlays[i+1:]...)
			break
		}
	}
	switch o {
	case overlayGallery:
		m.gallery = nil
	case overlayRoom:
		m.room = nil
	}
}

// closeViewers closes every open viewer, releasing their leases
func (m *Model) closeViewers() {
	for len(m.overlays) > 0 {
		top := m.overlays[len(m.overlays)-1]
		switch top {
		case overlayGallery:
			m.gallery.Close()
		case overlayRoom:
			m.room.Close()
		}
		m.dropOverlay(top)
	}
}

// View renders the current screen
func (m Model) View() string {
	var view string

	if top, ok := m.topOverlay(); ok {
		switch top {
		case overlayGallery:
			view = m.gallery.View()
		case overlayRoom:
			view = m.room.View()
		}
	} else if m.showForm {
		view = m.formScreen.View()
	} else {
		switch m.screen {
		case ScreenSetup:
			view = m.setupScreen.View()
		case ScreenListing:
			view = m.listingScreen.View()
		default:
			view = "Unknown screen"
		}
	}

	return m.zones.Scan(view)
}

// fetchDataCmd creates a command to fetch the listing
func (m Model) fetchDataCmd() tea.Cmd {
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		if client == nil {
			return messages.ErrorMsg{Err: config.ErrNoServers}
		}

		property, err := client.FetchProperty(ctx)
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}

		return messages.DataFetchedMsg{Property: property}
	}
}

// submitViewingCmd creates a command to send a viewing request
func (m Model) submitViewingCmd(req *models.ViewingRequest) tea.Cmd {
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		if client == nil {
			return messages.ViewingSubmittedMsg{Err: config.ErrNoServers}
		}

		stored, err := client.SubmitViewingRequest(ctx, req)
		if err != nil {
			slog.Warn("viewing request rejected", "error", err)
			return messages.ViewingSubmittedMsg{Err: err}
		}

		slog.Info("viewing request submitted", "id", stored.ID, "date", stored.PreferredDate)
		return messages.ViewingSubmittedMsg{Request: stored}
	}
}
