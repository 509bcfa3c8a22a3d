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

// Mode is the gallery presentation
type Mode int

const (
	ModeSingle Mode = iota
	ModeGrid
)

func (m Mode) String() string {
	if m == ModeGrid {
		return "grid"
	}
	return "single"
}

// GalleryModel is the property-wide photo gallery. It shows one image at a
// time or every image as a grid; the arrow keys move the current index in
// both modes and the grid highlights it.
type GalleryModel struct {
	images   models.Collection
	index    int
	mode     Mode
	closed   bool
	lease    *media.Lease
	resolver media.Resolver
	zones    components.Zones
	keys     GalleryKeyMap
	help     help.Model
	width    int
	height   int
}

// NewGalleryModel opens the gallery on images at initialIndex, clamped into
// range, and takes a scroll lock lease
func NewGalleryModel(images models.Collection, initialIndex int, opts Options) GalleryModel {
	return GalleryModel{
		images:   images,
		index:    media.Clamp(initialIndex, images.Len()),
		mode:     ModeSingle,
		lease:    acquire(opts.Lock, "gallery"),
		resolver: opts.Resolver,
		zones:    opts.Zones.WithPrefix(),
		keys:     DefaultGalleryKeyMap(),
		help:     newHelp(),
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Images returns the collection on display
func (m GalleryModel) Images() models.Collection {
	return m.images
}

// Index returns the current image index
func (m GalleryModel) Index() int {
	return m.index
}

// Mode returns the presentation mode
func (m GalleryModel) Mode() Mode {
	return m.mode
}

// Closed reports whether the gallery has been dismissed
func (m GalleryModel) Closed() bool {
	return m.closed
}

// State returns the viewer state
func (m GalleryModel) State() State {
	switch {
	case m.closed:
		return StateClosed
	case m.mode == ModeGrid:
		return StateGrid
	default:
		return StateSingle
	}
}

// Next moves to the following image, wrapping after the last
func (m *GalleryModel) Next() {
	m.index = media.Next(m.index, m.images.Len())
}

// Prev moves to the previous image, wrapping before the first
func (m *GalleryModel) Prev() {
	m.index = media.Prev(m.index, m.images.Len())
}

// SelectThumbnail jumps to image i without changing mode. Out-of-range
// indexes are ignored.
func (m *GalleryModel) SelectThumbnail(i int) bool {
	if !media.InRange(i, m.images.Len()) {
		return false
	}
	m.index = i
	return true
}

// ToSingle switches to single mode showing target. An out-of-range target
// keeps the current image.
func (m *GalleryModel) ToSingle(target int) {
	m.SelectThumbnail(target)
	m.mode = ModeSingle
}

// SetImages replaces the collection after a reload, keeping the current
// index when it is still in range
func (m *GalleryModel) SetImages(images models.Collection) {
	m.images = images
	m.index = media.Clamp(m.index, images.Len())
}

// ToGrid switches to grid mode
func (m *GalleryModel) ToGrid() {
	m.mode = ModeGrid
}

// Activate opens grid thumbnail i in single mode
func (m *GalleryModel) Activate(i int) {
	m.ToSingle(i)
}

// Close dismisses the gallery and releases its scroll lock lease
func (m *GalleryModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.lease.Release()
}

// SetSize sets the gallery dimensions
func (m *GalleryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input while the gallery is open
func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
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
		case key.Matches(msg, m.keys.ToggleMode):
			if m.mode == ModeGrid {
				m.ToSingle(m.index)
			} else {
				m.ToGrid()
			}
		case key.Matches(msg, m.keys.Activate):
			if m.mode == ModeGrid {
				m.Activate(m.index)
			}
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

func (m *GalleryModel) handleClick(msg tea.MouseMsg) {
	switch {
	case m.zones.Hit("close", msg):
		m.Close()
		return
	case m.zones.Hit("mode-single", msg):
		m.ToSingle(m.index)
		return
	case m.zones.Hit("mode-grid", msg):
		m.ToGrid()
		return
	}

	if m.mode == ModeGrid {
		for i := 0; i < m.images.Len(); i++ {
			if m.zones.Hit(fmt.Sprintf("grid-%d", i), msg) {
				m.Activate(i)
				return
			}
		}
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
	for i := 0; i < m.images.Len(); i++ {
		if m.zones.Hit(fmt.Sprintf("thumb-%d", i), msg) {
			m.SelectThumbnail(i)
			return
		}
	}
}

// Counter returns the "current / total" label shown in single mode. It is
// shown even for a single image; the grid has none.
func (m GalleryModel) Counter() string {
	if m.mode != ModeSingle {
		return ""
	}
	n := m.images.Len()
	if n == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", m.index+1, n)
}

// View renders the gallery
func (m GalleryModel) View() string {
	if m.closed {
		return ""
	}

	width := max(m.width, 20)
	bar := m.renderBar(width)
	helpLine := styles.StyleHelp.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	bodyHeight := imageHeight(m.height, lipgloss.Height(bar)+lipgloss.Height(helpLine))

	var body string
	if m.mode == ModeGrid {
		body = components.RenderImageGrid(m.images, m.index, width, bodyHeight, m.zones, "grid")
	} else {
		body = m.renderSingle(width, bodyHeight)
	}

	return styles.StyleOverlay.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, bar, body, helpLine))
}

func (m GalleryModel) renderBar(width int) string {
	back := m.zones.Mark("close", styles.StyleNavArrow.Render("✕ Close"))

	singleStyle, gridStyle := styles.StyleModeButtonActive, styles.StyleModeButton
	if m.mode == ModeGrid {
		singleStyle, gridStyle = styles.StyleModeButton, styles.StyleModeButtonActive
	}
	single := m.zones.Mark("mode-single", singleStyle.Render("▣ Single"))
	grid := m.zones.Mark("mode-grid", gridStyle.Render("▦ Grid"))
	modes := single + " " + grid

	counter := styles.StyleCounter.Render(m.Counter())

	left := back + "  " + modes
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(counter)-2, 1)
	return styles.StyleOverlayBar.Render(left + strings.Repeat(" ", gap) + counter)
}

func (m GalleryModel) renderSingle(width, height int) string {
	const stripHeight = 3
	frameHeight := max(height-stripHeight, 5)

	var frame string
	if m.images.Len() == 0 {
		frame = components.RenderEmptyFrame("No photos", width-8, frameHeight)
	} else {
		frame = components.RenderImageFrame(m.resolver, m.images.At(m.index), width-8, frameHeight)
	}

	prev := m.zones.Mark("prev", styles.StyleNavArrow.Render("‹"))
	next := m.zones.Mark("next", styles.StyleNavArrow.Render("›"))
	row := lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", frame, " ", next)

	strip := components.RenderThumbStrip(m.images, m.index, width, m.zones, "thumb")
	return lipgloss.JoinVertical(lipgloss.Center, row, lipgloss.PlaceHorizontal(width, lipgloss.Center, strip))
}
