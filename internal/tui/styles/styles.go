package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - neutral page with a rose accent, dark overlays
var (
	// Primary colors
	ColorPrimary    = lipgloss.Color("#F43F5E") // Rose
	ColorSecondary  = lipgloss.Color("#BE123C") // Darker rose
	ColorAccent     = lipgloss.Color("#FDA4AF") // Light rose
	ColorBackground = lipgloss.Color("#111111") // Overlay background
	ColorSurface    = lipgloss.Color("#262626") // Surface color
	ColorSurfaceAlt = lipgloss.Color("#404040") // Alternate surface

	// Text colors
	ColorText        = lipgloss.Color("#FAFAFA") // Primary text
	ColorTextMuted   = lipgloss.Color("#A3A3A3") // Muted text
	ColorTextDim     = lipgloss.Color("#737373") // Dim text
	ColorTextInverse = lipgloss.Color("#111111") // Inverse text

	// State colors
	ColorSuccess = lipgloss.Color("#4ADE80") // Green
	ColorWarning = lipgloss.Color("#FACC15") // Yellow
	ColorError   = lipgloss.Color("#F87171") // Red
)

// Page styles
var (
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	StyleSectionTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				MarginTop(1)

	StylePrice = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleFeature = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleFeatureBullet = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	// Room card styles
	StyleRoomCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurfaceAlt).
			Padding(0, 1).
			MarginRight(1)

	StyleRoomCardSelected = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1).
				MarginRight(1)

	StyleBadge = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorAccent).
			Padding(0, 1)

	// Image placeholder frame
	StyleImageFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurfaceAlt).
			Foreground(ColorTextMuted).
			Align(lipgloss.Center, lipgloss.Center)

	StyleThumb = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSurfaceAlt).
			Foreground(ColorTextDim).
			Padding(0, 1)

	StyleThumbActive = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorText).
				Foreground(ColorText).
				Padding(0, 1)

	// Overlay styles
	StyleOverlay = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorText)

	StyleOverlayBar = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	StyleCounter = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleNavArrow = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(0, 1)

	StyleModeButton = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	StyleModeButtonActive = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorSurfaceAlt).
				Padding(0, 1)

	// Modal styles
	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	StyleModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Input styles
	StyleInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSurfaceAlt).
			Padding(0, 1)

	StyleInputFocused = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	StyleInputLabel = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StyleFieldError = lipgloss.NewStyle().
			Foreground(ColorError)

	// List styles
	StyleListItem = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	StyleListItemSelected = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Padding(0, 1)

	// Help styles
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Loading/spinner styles
	StyleSpinner = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Error styles
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Success styles
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Text muted style
	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StyleTextDim = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Primary style
	StylePrimary = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
