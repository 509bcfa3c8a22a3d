package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/components"
	"github.com/angristan/homeshowcase/internal/tui/messages"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListingModel is the listing page: title, hero, description and rooms,
// scrolled in a viewport
type ListingModel struct {
	property *models.Property
	resolver media.Resolver
	zones    components.Zones
	host     string

	selectedRoom int
	viewport     viewport.Model

	// Loading state
	loading  bool
	notFound bool
	err      error
	spinner  spinner.Model

	width  int
	height int
}

// NewListingModel creates the listing page
func NewListingModel(zones components.Zones) ListingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	return ListingModel{
		resolver: media.NewResolver(""),
		zones:    zones,
		viewport: vp,
		loading:  true, // Start in loading state
		spinner:  sp,
	}
}

// Init initializes the listing page
func (m ListingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetSize sets the terminal size
func (m *ListingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-3, 1) // header + help
	m.refresh()
}

// SetHost sets the server name shown in the header
func (m *ListingModel) SetHost(host string) {
	m.host = host
}

// SetResolver sets how image references are turned into locators
func (m *ListingModel) SetResolver(r media.Resolver) {
	m.resolver = r
	m.refresh()
}

// SetData shows a freshly loaded listing
func (m *ListingModel) SetData(p *models.Property) {
	m.property = p
	m.loading = false
	m.notFound = p == nil
	m.err = nil
	if p == nil || m.selectedRoom >= len(p.Rooms) {
		m.selectedRoom = 0
	}
	m.refresh()
}

// SetLoading switches the loading indicator
func (m *ListingModel) SetLoading(loading bool) {
	m.loading = loading
	if loading {
		m.err = nil
	}
}

// SetError shows the failure reason instead of the listing
func (m *ListingModel) SetError(err error) {
	m.loading = false
	m.err = err
}

// SetNotFound shows the empty state
func (m *ListingModel) SetNotFound() {
	m.loading = false
	m.err = nil
	m.notFound = true
	m.property = nil
}

// Ready reports whether the listing is loaded without error, which is when
// the media viewers may be opened
func (m ListingModel) Ready() bool {
	return !m.loading && m.err == nil && m.property != nil
}

// SelectedRoom returns the highlighted room card
func (m ListingModel) SelectedRoom() *models.Room {
	if m.property == nil || !media.InRange(m.selectedRoom, len(m.property.Rooms)) {
		return nil
	}
	return m.property.Rooms[m.selectedRoom]
}

// ScrollOffset returns the viewport offset
func (m ListingModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// Update handles messages. While scrollLocked is set an overlay is open and
// the page ignores scroll input.
func (m ListingModel) Update(msg tea.Msg, scrollLocked bool) (ListingModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "r":
			return m, func() tea.Msg { return messages.RefreshMsg{} }
		}

		if !m.Ready() {
			return m, nil
		}

		switch msg.String() {
		case "tab", "right", "l":
			m.moveRoom(1)
		case "shift+tab", "left", "h":
			m.moveRoom(-1)
		case "enter":
			if room := m.SelectedRoom(); room != nil {
				return m, openRoom(room)
			}
		case "p":
			return m, openGallery(0)
		case "v":
			return m, func() tea.Msg { return messages.ShowFormMsg{} }
		case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
			if !scrollLocked {
				m.scroll(msg.String())
			}
		}

	case tea.MouseMsg:
		if !m.Ready() {
			return m, nil
		}
		if components.IsClick(msg) {
			if cmd := m.handleClick(msg); cmd != nil {
				return m, cmd
			}
		}
		if tea.MouseEvent(msg).IsWheel() && !scrollLocked {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *ListingModel) moveRoom(delta int) {
	n := len(m.property.Rooms)
	if delta > 0 {
		m.selectedRoom = media.Next(m.selectedRoom, n)
	} else {
		m.selectedRoom = media.Prev(m.selectedRoom, n)
	}
	m.refresh()
}

func (m *ListingModel) scroll(key string) {
	switch key {
	case "up", "k":
		m.viewport.ScrollUp(1)
	case "down", "j":
		m.viewport.ScrollDown(1)
	case "pgup":
		m.viewport.HalfPageUp()
	case "pgdown":
		m.viewport.HalfPageDown()
	case "home":
		m.viewport.GotoTop()
	case "end":
		m.viewport.GotoBottom()
	}
}

func (m *ListingModel) handleClick(msg tea.MouseMsg) tea.Cmd {
	if m.zones.Hit("hero-all", msg) {
		return openGallery(0)
	}
	for i := 0; i < components.HeroSize; i++ {
		if m.zones.Hit("hero-"+strconv.Itoa(i), msg) {
			return openGallery(i)
		}
	}
	for i, room := range m.property.Rooms {
		if m.zones.Hit("room-"+strconv.Itoa(i), msg) {
			m.selectedRoom = i
			m.refresh()
			return openRoom(room)
		}
	}
	if m.zones.Hit("request-viewing", msg) {
		return func() tea.Msg { return messages.ShowFormMsg{} }
	}
	return nil
}

// refresh re-renders the page into the viewport, keeping the offset
func (m *ListingModel) refresh() {
	if m.property == nil || m.width == 0 {
		return
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.renderPage())
	m.viewport.SetYOffset(offset)
}

func (m ListingModel) renderPage() string {
	p := m.property
	width := max(m.width-2, 20)

	sections := []string{
		components.RenderTitle(p, width),
		"",
		components.RenderHero(p, m.resolver, width, m.zones),
		styles.StyleSectionTitle.Render("About this home"),
		lipgloss.NewStyle().Width(width).Render(p.Description),
	}
	if features := components.RenderFeatures(p.Features, width); features != "" {
		sections = append(sections, styles.StyleSectionTitle.Render("What this place offers"), features)
	}
	sections = append(sections,
		styles.StyleSectionTitle.Render(fmt.Sprintf("Rooms (%d)", len(p.Rooms))),
		components.RenderRoomGrid(p.Rooms, m.selectedRoom, width, m.zones),
		styles.StyleSectionTitle.Render("Interested?"),
		m.zones.Mark("request-viewing", styles.StyleNavArrow.Render("✉ Request a viewing")),
	)

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// View renders the listing page
func (m ListingModel) View() string {
	info := components.HeaderInfo{Host: m.host, Loading: m.loading}
	if m.property != nil && !m.notFound {
		info.Address = m.property.Address
		info.Price = m.property.Price
	}
	header := components.RenderHeader(m.width, info)

	var body string
	switch {
	case m.loading:
		body = m.centered(fmt.Sprintf("%s Loading listing...", m.spinner.View()))
	case m.err != nil:
		body = m.centered(styles.StyleError.Render("Something went wrong") + "\n\n" +
			styles.StyleTextMuted.Render(m.err.Error()) + "\n\n" +
			styles.StyleHelp.Render("r retry • q quit"))
	case m.notFound || m.property == nil:
		body = m.centered(styles.StyleTextMuted.Render("No property found"))
	default:
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderHelp())
}

func (m ListingModel) centered(content string) string {
	return lipgloss.Place(m.width, max(m.height-3, 1), lipgloss.Center, lipgloss.Center, content)
}

func (m ListingModel) renderHelp() string {
	keys := []string{
		styles.StyleHelpKey.Render("↑↓") + " scroll",
		styles.StyleHelpKey.Render("tab") + " room",
		styles.StyleHelpKey.Render("enter") + " open room",
		styles.StyleHelpKey.Render("p") + " photos",
		styles.StyleHelpKey.Render("v") + " request viewing",
		styles.StyleHelpKey.Render("r") + " refresh",
		styles.StyleHelpKey.Render("q") + " quit",
	}

	// For narrow terminals, show fewer keys
	if m.width < 70 {
		keys = []string{
			styles.StyleHelpKey.Render("tab") + " room",
			styles.StyleHelpKey.Render("p") + " photos",
			styles.StyleHelpKey.Render("q") + " quit",
		}
	}

	return styles.StyleHelp.Render(strings.Join(keys, "  "))
}

func openRoom(room *models.Room) tea.Cmd {
	return func() tea.Msg { return messages.OpenRoomMsg{Room: room} }
}

func openGallery(index int) tea.Cmd {
	return func() tea.Msg { return messages.OpenGalleryMsg{Index: index} }
}
