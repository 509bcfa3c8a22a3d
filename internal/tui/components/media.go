package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

const (
	thumbCellWidth = 6
	gridCellWidth  = 24
	gridCellHeight = 4
)

// RenderImageFrame renders the placeholder frame for one image: its file
// name and resolved locator, or a notice when the reference is unusable.
func RenderImageFrame(resolver media.Resolver, ref models.ImageRef, width, height int) string {
	var content string
	locator := resolver.Resolve(ref)
	if locator == "" {
		slog.Debug("image reference unusable", "ref", string(ref))
		content = styles.StyleTextMuted.Render("image unavailable")
	} else {
		name, _ := media.Filename(ref)
		content = styles.StyleTitle.Render(truncate(name, width-4)) + "\n" +
			styles.StyleTextMuted.Render(truncate(locator, width-4))
	}

	// Border takes one cell on each side
	return styles.StyleImageFrame.
		Width(max(width-2, 10)).
		Height(max(height-2, 3)).
		Render(content)
}

// RenderEmptyFrame renders a frame with a notice instead of an image
func RenderEmptyFrame(notice string, width, height int) string {
	return styles.StyleImageFrame.
		Width(max(width-2, 10)).
		Height(max(height-2, 3)).
		Render(styles.StyleTextMuted.Render(notice))
}

// RenderThumbStrip renders numbered thumbnails in one row. When they do not
// all fit, a window around the active one is shown.
func RenderThumbStrip(images models.Collection, active, width int, z Zones, idPrefix string) string {
	n := images.Len()
	if n == 0 {
		return ""
	}

	fit := max(width/thumbCellWidth, 1)
	start, end := window(active, n, fit)

	var cells []string
	if start > 0 {
		cells = append(cells, styles.StyleTextDim.Render("‹"))
	}
	for i := start; i < end; i++ {
		style := styles.StyleThumb
		if i == active {
			style = styles.StyleThumbActive
		}
		cell := style.Render(fmt.Sprintf("%d", i+1))
		cells = append(cells, z.Mark(fmt.Sprintf("%s-%d", idPrefix, i), cell))
	}
	if end < n {
		cells = append(cells, styles.StyleTextDim.Render("›"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// RenderImageGrid renders every image as a labelled cell, scrolled so the
// highlighted row stays visible
func RenderImageGrid(images models.Collection, highlight, width, height int, z Zones, idPrefix string) string {
	n := images.Len()
	if n == 0 {
		return RenderEmptyFrame("No photos", width, height)
	}

	cols := max(width/gridCellWidth, 1)
	rows := (n + cols - 1) / cols
	visibleRows := max(height/gridCellHeight, 1)
	firstRow, lastRow := window(highlight/cols, rows, visibleRows)

	var lines []string
	for r := firstRow; r < lastRow; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= n {
				break
			}
			cells = append(cells, z.Mark(fmt.Sprintf("%s-%d", idPrefix, i), renderGridCell(images.At(i), i, i == highlight)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGridCell(ref models.ImageRef, i int, active bool) string {
	name, ok := media.Filename(ref)
	if !ok {
		name = "unavailable"
	}

	style := styles.StyleThumb
	if active {
		style = styles.StyleThumbActive
	}
	inner := gridCellWidth - 4
	label := fmt.Sprintf("#%d", i+1)
	return style.Width(inner).Render(label + "\n" + truncate(name, inner-2))
}

// window returns the [start, end) range of size fit around focus within n
func window(focus, n, fit int) (int, int) {
	if fit >= n {
		return 0, n
	}
	start := focus - fit/2
	if start < 0 {
		start = 0
	}
	if start+fit > n {
		start = n - fit
	}
	return start, start + fit
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
