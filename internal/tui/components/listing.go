package components

import (
	"fmt"
	"strings"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// HeroSize is how many images the hero strip shows
const HeroSize = 5

// RenderHero renders the first images of the listing as a strip of frames,
// with a "show all photos" button when there are more. Frame i is marked
// as zone "hero-i"; the button as "hero-all".
func RenderHero(p *models.Property, resolver media.Resolver, width int, z Zones) string {
	hero := p.HeroImages(HeroSize)
	if hero.Len() == 0 {
		return RenderEmptyFrame("No photos", width, 5)
	}

	// First image gets half the width, the rest share the other half
	mainWidth := width / 2
	frames := []string{z.Mark("hero-0", RenderImageFrame(resolver, hero.At(0), mainWidth, 7))}

	if rest := hero.Len() - 1; rest > 0 {
		smallWidth := max((width-mainWidth)/rest, 12)
		for i := 1; i < hero.Len(); i++ {
			frames = append(frames, z.Mark(fmt.Sprintf("hero-%d", i), RenderImageFrame(resolver, hero.At(i), smallWidth, 7)))
		}
	}

	strip := lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, frames...))

	total := p.AllImages().Len()
	if total <= HeroSize {
		return strip
	}
	button := z.Mark("hero-all", styles.StyleNavArrow.Render(fmt.Sprintf("▦ Show all %d photos", total)))
	return lipgloss.JoinVertical(lipgloss.Right, strip, button)
}

// RenderFeatures renders a bulleted feature list in two columns
func RenderFeatures(features []string, width int) string {
	if len(features) == 0 {
		return ""
	}

	colWidth := max(width/2-2, 20)
	var left, right []string
	for i, f := range features {
		line := styles.StyleFeatureBullet.Render("✓ ") + styles.StyleFeature.Render(truncate(f, colWidth-2))
		if i%2 == 0 {
			left = append(left, line)
		} else {
			right = append(right, line)
		}
	}

	col := lipgloss.NewStyle().Width(colWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(strings.Join(left, "\n")),
		col.Render(strings.Join(right, "\n")),
	)
}

// RenderRoomCard renders a room tile: type icon, thumbnail file name,
// image count badge and the first two features
func RenderRoomCard(room *models.Room, selected bool, cardWidth int) string {
	inner := max(cardWidth-4, 10)

	// Thumbnail line falls back to the room type icon
	var thumb string
	if ref, ok := room.Thumbnail(); ok {
		name, _ := media.Filename(ref)
		thumb = styles.StyleTextMuted.Render("▨ " + truncate(name, inner-2))
	} else {
		thumb = styles.StyleTextDim.Render(room.Type.Icon() + " no photos")
	}
	if n := room.Images.Len(); n > 1 {
		badge := styles.StyleBadge.Render(fmt.Sprintf("▣ %d", n))
		gap := max(inner-lipgloss.Width(thumb)-lipgloss.Width(badge), 1)
		thumb += strings.Repeat(" ", gap) + badge
	}

	name := styles.StyleTitle.Render(truncate(room.Type.Icon()+" "+room.Name, inner))

	dims := styles.StyleTextDim.Render("—")
	if room.Dimensions != "" {
		dims = styles.StyleTextMuted.Render(truncate(room.Dimensions, inner))
	}

	var features []string
	for _, f := range room.TopFeatures(2) {
		features = append(features, styles.StyleFeatureBullet.Render("• ")+truncate(f, inner-2))
	}
	// Keep cards the same height
	for len(features) < 2 {
		features = append(features, "")
	}

	content := strings.Join(append([]string{thumb, name, dims}, features...), "\n")

	cardStyle := styles.StyleRoomCard
	if selected {
		cardStyle = styles.StyleRoomCardSelected
	}
	return cardStyle.Width(inner + 2).Render(content)
}

// RenderRoomGrid lays room cards out in rows. Card i is marked as zone
// "room-i".
func RenderRoomGrid(rooms []*models.Room, selected, width int, z Zones) string {
	if len(rooms) == 0 {
		return styles.StyleTextMuted.Render("No rooms listed")
	}

	// Cards are 24 to 36 columns wide
	perRow := max(width/30, 1)
	cardWidth := min(max(width/perRow-1, 24), 36)

	var rows []string
	for i := 0; i < len(rooms); i += perRow {
		end := min(i+perRow, len(rooms))
		cards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			cards = append(cards, z.Mark(fmt.Sprintf("room-%d", j), RenderRoomCard(rooms[j], j == selected, cardWidth)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
