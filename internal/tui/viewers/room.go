package viewers

import (
	"fmt"
	"strings"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/components"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RoomModel is the per-room photo viewer
type RoomModel struct {
	room     *models.Room
	index    int
	closed   bool
	lease    *media.Lease
	resolver media.Resolver
	zones    components.Zones
	keys     RoomKeyMap
	help     help.Model
	width    int
	height   int
}

// NewRoomModel opens a viewer on room and takes a scroll lock lease
func NewRoomModel(room *models.Room, opts Options) RoomModel {
	return RoomModel{
		room:     room,
		lease:    acquire(opts.Lock, "room"),
		resolver: opts.Resolver,
		zones:    opts.Zones.WithPrefix(),
		keys:     DefaultRoomKeyMap(opts.RoomArrowKeys),
		help:     newHelp(),
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Room returns the room on display
func (m RoomModel) Room() *models.Room {
	return m.room
}

// Index returns the current image index
func (m RoomModel) Index() int {
	return m.index
}

// Closed reports whether the viewer has been dismissed
func (m RoomModel) Closed() bool {
	return m.closed
}

// State returns the viewer state
func (m RoomModel) State() State {
	switch {
	case m.closed:
		return StateClosed
	case m.count() == 0:
		return StateNoImages
	default:
		return StateSingle
	}
}

// Keys returns the active key bindings
func (m RoomModel) Keys() RoomKeyMap {
	return m.keys
}

func (m RoomModel) count() int {
	if m.room == nil {
		return 0
	}
	return m.room.Images.Len()
}

// Next moves to the following image, wrapping after the last
func (m *RoomModel) Next() {
	m.index = media.Next(m.index, m.count())
}

// Prev moves to the previous image, wrapping before the first
func (m *RoomModel) Prev() {
	m.index = media.Prev(m.index, m.count())
}

// SelectThumbnail jumps to image i. Out-of-range indexes are ignored.
func (m *RoomModel) SelectThumbnail(i int) bool {
	if !media.InRange(i, m.count()) {
		return false
	}
	m.index = i
	return true
}

// SetRoom swaps the room on display. A different room starts again at its
// first image.
func (m *RoomModel) SetRoom(room *models.Room) {
	if room == nil {
		return
	}
	if m.room == nil || m.room.ID != room.ID {
		m.index = 0
	}
	m.room = room
	m.index = media.Clamp(m.index, m.count())
}

// Close dismisses the viewer and releases its scroll lock lease
func (m *RoomModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.lease.Release()
}

// SetSize sets the viewer dimensions
func (m *RoomModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input while the viewer is open
func (m RoomModel) Update(msg tea.Msg) (RoomModel, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.Close()
		case key.Matches(msg, m.keys.Next):
			m.Next()
		case key.Matches(msg, m.keys.Prev):
			m.Prev()
		}

	case tea.MouseMsg:
		if components.IsClick(msg) {
			m.handleClick(msg)
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *RoomModel) handleClick(msg tea.MouseMsg) {
	if m.zones.Hit("close", msg) {
		m.Close()
		return
	}
	if m.count() <= 1 {
		return
	}
	switch {
	case m.zones.Hit("prev", msg):
		m.Prev()
		return
	case m.zones.Hit("next", msg):
		m.Next()
		return
	}
	for i := 0; i < m.count(); i++ {
		if m.zones.Hit(fmt.Sprintf("thumb-%d", i), msg) {
			m.SelectThumbnail(i)
			return
		}
	}
}

// Counter returns the "N / total" label, or "" when there is nothing to
// step through
func (m RoomModel) Counter() string {
	if m.count() <= 1 {
		return ""
	}
	return fmt.Sprintf("%d / %d", m.index+1, m.count())
}

// View renders the viewer
func (m RoomModel) View() string {
	if m.closed || m.room == nil {
		return ""
	}

	width := max(m.width, 20)
	multi := m.count() > 1

	// Top bar: back button, room name, counter
	back := m.zones.Mark("close", styles.StyleNavArrow.Render("✕ Back"))
	title := styles.StyleTitle.Render(m.room.Type.Icon() + " " + m.room.Name)
	counter := ""
	if multi {
		counter = styles.StyleCounter.Render(m.Counter())
	}
	gap := max(width-lipgloss.Width(back)-lipgloss.Width(title)-lipgloss.Width(counter)-4, 1)
	bar := styles.StyleOverlayBar.Render(back + "  " + title + strings.Repeat(" ", gap) + counter)

	info := m.renderInfo(width)
	helpLine := styles.StyleHelp.Render(m.help.ShortHelpView(m.keys.ShortHelp()))

	reserved := lipgloss.Height(bar) + lipgloss.Height(info) + lipgloss.Height(helpLine)
	if multi {
		reserved += 3
	}
	frameHeight := imageHeight(m.height-reserved, 0)

	var image string
	if m.count() == 0 {
		image = components.RenderEmptyFrame("No photos of this room yet", width, frameHeight)
	} else {
		image = components.RenderImageFrame(m.resolver, m.room.Images.At(m.index), width, frameHeight)
	}

	sections := []string{bar, image}
	if multi {
		prev := m.zones.Mark("prev", styles.StyleNavArrow.Render("‹"))
		next := m.zones.Mark("next", styles.StyleNavArrow.Render("›"))
		strip := components.RenderThumbStrip(m.room.Images, m.index, width-10, m.zones, "thumb")
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", strip, " ", next)))
	}
	sections = append(sections, info, helpLine)

	return styles.StyleOverlay.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m RoomModel) renderInfo(width int) string {
	var b strings.Builder

	b.WriteString(styles.StyleTitle.Render(m.room.Name))
	if m.room.Dimensions != "" {
		b.WriteString(styles.StyleTextMuted.Render("  " + m.room.Dimensions))
	}
	b.WriteString("\n")

	if m.room.Description != "" {
		b.WriteString(styles.StyleSectionTitle.Render("About this room"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(max(width-2, 10)).Render(m.room.Description))
		b.WriteString("\n")
	}

	if len(m.room.Features) > 0 {
		b.WriteString(styles.StyleSectionTitle.Render("Features"))
		b.WriteString("\n")
		for _, f := range m.room.Features {
			b.WriteString(styles.StyleFeatureBullet.Render("• "))
			b.WriteString(styles.StyleFeature.Render(f))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
