package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// HeaderInfo is what the header bar shows about the current listing
type HeaderInfo struct {
	// Street address of the loaded listing, empty while none is loaded
	Address string
	// Asking price; zero hides it
	Price int64
	// Host of the listing server, empty when disconnected
	Host string
	// Loading replaces the connection status with a loading notice
	Loading bool
}

// Status returns the connection text for the right-hand side
func (h HeaderInfo) Status() string {
	switch {
	case h.Host == "":
		return ""
	case h.Loading:
		return "↻ " + h.Host
	default:
		return "● " + h.Host
	}
}

// RenderHeader renders the header bar: app name and listing on the left,
// server status on the right
func RenderHeader(width int, info HeaderInfo) string {
	title := "HomeShowCase"
	if info.Address != "" {
		title += " · " + info.Address
	}
	status := info.Status()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.ColorText).
		Background(styles.ColorPrimary).
		Padding(0, 1)

	statusStyle := lipgloss.NewStyle().
		Foreground(styles.ColorSuccess).
		Padding(0, 1)

	if status == "" {
		status = "Disconnected"
		statusStyle = statusStyle.Foreground(styles.ColorError)
	}

	if info.Loading && info.Host != "" {
		statusStyle = statusStyle.Foreground(styles.ColorWarning)
	}

	left := titleStyle.Render(title)
	right := statusStyle.Render(status)

	// The price goes first when space runs out
	if info.Price > 0 {
		price := styles.StylePrice.Padding(0, 1).Render(FormatPrice(info.Price))
		if lipgloss.Width(left)+lipgloss.Width(price)+lipgloss.Width(right) <= width {
			left += price
		}
	}

	// Calculate spacing
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacing := width - leftWidth - rightWidth

	if spacing < 0 {
		spacing = 0
	}

	headerBg := lipgloss.NewStyle().
		Background(styles.ColorSurface).
		Width(width)

	return headerBg.Render(left + strings.Repeat(" ", spacing) + right)
}

// FormatPrice renders a price in whole euros with Dutch grouping, e.g.
// "€ 195.000"
func FormatPrice(price int64) string {
	return "€ " + strings.ReplaceAll(humanize.Comma(price), ",", ".")
}

// FormatBathrooms drops a trailing ".0"
func FormatBathrooms(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// RenderTitle renders the address line, the key facts and the price
func RenderTitle(p *models.Property, width int) string {
	var b strings.Builder

	b.WriteString(styles.StyleTitle.Render(p.Address))
	b.WriteString("\n")

	facts := []string{
		strings.TrimSpace(fmt.Sprintf("%s, %s %s", p.City, p.State, p.ZipCode)),
		fmt.Sprintf("%d bedroom", p.Bedrooms),
		fmt.Sprintf("%s bath", FormatBathrooms(p.Bathrooms)),
		fmt.Sprintf("%s sq ft", humanize.Comma(int64(p.Sqft))),
	}
	if p.YearBuilt > 0 {
		facts = append(facts, fmt.Sprintf("built %d", p.YearBuilt))
	}
	b.WriteString(styles.StyleTextMuted.Render(strings.Join(facts, " · ")))

	price := styles.StylePrice.Render(FormatPrice(p.Price))
	return lipgloss.JoinVertical(lipgloss.Left, b.String(), price)
}
