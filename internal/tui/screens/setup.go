package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angristan/homeshowcase/internal/api"
	"github.com/angristan/homeshowcase/internal/tui/messages"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SetupState represents the current setup state
type SetupState int

const (
	StateDiscovering SetupState = iota
	StateServerList
	StateManualEntry
	StateConnecting
	StateSuccess
	StateError
)

const (
	discoveryTimeout = 3 * time.Second
	probeTimeout     = 5 * time.Second
)

// SetupModel is the server selection screen shown when no listing server
// is configured
type SetupModel struct {
	state    SetupState
	servers  []api.DiscoveredServer
	selected int
	input    textinput.Model
	spinner  spinner.Model
	err      error
	message  string

	// Server being probed
	connectURL  string
	connectName string

	// Window size
	width  int
	height int
}

// NewSetupModel creates a new setup screen model
func NewSetupModel() SetupModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("192.168.1.x:%d", api.DefaultPort)
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	return SetupModel{
		state:   StateDiscovering,
		input:   ti,
		spinner: sp,
	}
}

// Init initializes the setup screen
func (m SetupModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.discoverCmd(),
	)
}

// SetSize sets the terminal size
func (m *SetupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// State returns the current setup state
func (m SetupModel) State() SetupState {
	return m.state
}

// Update handles messages
func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case StateServerList:
			switch msg.String() {
			case "up", "k":
				if m.selected > 0 {
					m.selected--
				}
			case "down", "j":
				if m.selected < len(m.servers) {
					m.selected++
				}
			case "enter":
				if m.selected < len(m.servers) {
					server := m.servers[m.selected]
					cmds = append(cmds, m.connect(server.URL, server.Name))
				} else {
					// Manual entry selected
					m.state = StateManualEntry
					m.input.Focus()
					cmds = append(cmds, textinput.Blink)
				}
			case "m":
				m.state = StateManualEntry
				m.input.Focus()
				cmds = append(cmds, textinput.Blink)
			case "r":
				m.state = StateDiscovering
				m.err = nil
				cmds = append(cmds, m.spinner.Tick, m.discoverCmd())
			}

		case StateManualEntry:
			switch msg.String() {
			case "enter":
				if addr := strings.TrimSpace(m.input.Value()); addr != "" {
					m.input.Blur()
					cmds = append(cmds, m.connect(addr, ""))
				}
			case "esc":
				m.state = StateServerList
				m.input.Blur()
			}

		case StateError:
			switch msg.String() {
			case "esc", "enter":
				m.state = StateServerList
				m.err = nil
			}
		}

	case ServersDiscoveredMsg:
		m.servers = msg.Servers
		m.selected = 0
		m.state = StateServerList

	case DiscoveryErrorMsg:
		m.state = StateServerList
		m.err = msg.Err

	case ProbeSuccessMsg:
		m.state = StateSuccess
		m.message = "Connected to " + msg.URL
		name := m.connectName
		return m, func() tea.Msg {
			return messages.ServerConnectedMsg{
				Client: api.NewClient(msg.URL),
				Name:   name,
			}
		}

	case ProbeErrorMsg:
		m.state = StateError
		m.err = msg.Err

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateManualEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *SetupModel) connect(url, name string) tea.Cmd {
	m.state = StateConnecting
	m.connectURL = url
	m.connectName = name
	return tea.Batch(m.spinner.Tick, m.probeCmd())
}

// View renders the setup screen
func (m SetupModel) View() string {
	var b strings.Builder

	// Header
	header := styles.StyleHeader.Render("  HomeShowCase  ")
	b.WriteString(lipgloss.Place(m.width, 3, lipgloss.Center, lipgloss.Top, header))
	b.WriteString("\n\n")

	// Content based on state
	var content string
	switch m.state {
	case StateDiscovering:
		content = m.renderDiscovering()
	case StateServerList:
		content = m.renderServerList()
	case StateManualEntry:
		content = m.renderManualEntry()
	case StateConnecting:
		content = m.renderConnecting()
	case StateSuccess:
		content = m.renderSuccess()
	case StateError:
		content = m.renderError()
	}

	b.WriteString(lipgloss.Place(m.width, max(m.height-6, 1), lipgloss.Center, lipgloss.Center, content))

	return b.String()
}

func (m SetupModel) renderDiscovering() string {
	return fmt.Sprintf("%s Searching for listing servers...", m.spinner.View())
}

func (m SetupModel) renderServerList() string {
	var b strings.Builder

	if len(m.servers) == 0 {
		b.WriteString(styles.StyleTextMuted.Render("No listing servers found."))
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(styles.StyleTextDim.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Found listing servers:\n\n")
		for i, server := range m.servers {
			cursor := "  "
			style := styles.StyleListItem
			if i == m.selected {
				cursor = "> "
				style = styles.StyleListItemSelected
			}
			name := server.URL
			if server.Name != "" {
				name = fmt.Sprintf("%s (%s)", server.Name, server.URL)
			}
			b.WriteString(cursor + style.Render(name))
			if server.Address != "" {
				b.WriteString(" " + styles.StyleTextMuted.Render(server.Address))
			}
			b.WriteString("\n")
		}
	}

	// Manual entry option
	cursor := "  "
	style := styles.StyleListItem
	if m.selected >= len(m.servers) {
		cursor = "> "
		style = styles.StyleListItemSelected
	}
	b.WriteString("\n" + cursor + style.Render("Enter address manually...") + "\n")

	b.WriteString("\n" + styles.StyleHelp.Render("↑/↓ navigate • enter select • r refresh • m manual"))

	return b.String()
}

func (m SetupModel) renderManualEntry() string {
	var b strings.Builder

	b.WriteString("Enter listing server address:\n\n")
	b.WriteString(styles.StyleInputFocused.Render(m.input.View()))
	b.WriteString("\n\n" + styles.StyleHelp.Render("enter confirm • esc back"))

	return b.String()
}

func (m SetupModel) renderConnecting() string {
	return fmt.Sprintf("%s Connecting to %s...", m.spinner.View(), api.NormalizeURL(m.connectURL))
}

func (m SetupModel) renderSuccess() string {
	return styles.StyleSuccess.Render("✓ " + m.message)
}

func (m SetupModel) renderError() string {
	return styles.StyleError.Render("✗ Error: "+m.err.Error()) + "\n\n" +
		styles.StyleHelp.Render("enter back")
}

// Commands

func (m SetupModel) discoverCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), discoveryTimeout)
		defer cancel()

		servers, err := api.DiscoverAll(ctx, discoveryTimeout)
		if err != nil && len(servers) == 0 {
			return DiscoveryErrorMsg{Err: err}
		}
		return ServersDiscoveredMsg{Servers: servers}
	}
}

func (m SetupModel) probeCmd() tea.Cmd {
	url := m.connectURL
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		base, err := api.Probe(ctx, url, probeTimeout)
		if err != nil {
			return ProbeErrorMsg{Err: err}
		}
		return ProbeSuccessMsg{URL: base}
	}
}

// Messages

type ServersDiscoveredMsg struct {
	Servers []api.DiscoveredServer
}

type DiscoveryErrorMsg struct {
	Err error
}

type ProbeSuccessMsg struct {
	URL string
}

type ProbeErrorMsg struct {
	Err error
}
