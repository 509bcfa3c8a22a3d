package components

import (
	"strings"
	"testing"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    int64
		expected string
	}{
		{195000, "€ 195.000"},
		{1250000, "€ 1.250.000"},
		{950, "€ 950"},
		{0, "€ 0"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.expected {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.price, got, tt.expected)
		}
	}
}

func TestFormatBathrooms(t *testing.T) {
	assert.Equal(t, "1", FormatBathrooms(1))
	assert.Equal(t, "1.5", FormatBathrooms(1.5))
}

func TestRoomCardThumbnailAndBadge(t *testing.T) {
	room := &models.Room{
		Name:     "Living Room",
		Type:     models.RoomLiving,
		Features: []string{"Panoramic windows", "River views", "Natural light"},
		Images:   models.Collection{"/src/assets/860_2160.jpg", "/src/assets/861_2160.jpg"},
	}

	card := RenderRoomCard(room, false, 36)
	assert.Contains(t, card, "860_2160.jpg")
	assert.Contains(t, card, "▣ 2")
	assert.Contains(t, card, "Panoramic windows")
	assert.Contains(t, card, "River views")
	assert.NotContains(t, card, "Natural light", "only the first two features")
}

func TestRoomCardWithoutImagesShowsIcon(t *testing.T) {
	room := &models.Room{Name: "Attic", Type: "attic"}

	card := RenderRoomCard(room, true, 30)
	assert.Contains(t, card, models.RoomLiving.Icon()+" no photos")
	assert.NotContains(t, card, "▣")
}

func TestRoomCardSingleImageHasNoBadge(t *testing.T) {
	room := &models.Room{Name: "Hallway", Type: models.RoomHallway, Images: models.Collection{"/src/assets/853_2160.jpg"}}

	assert.NotContains(t, RenderRoomCard(room, false, 30), "▣")
}

func TestRenderHeroShowAllButton(t *testing.T) {
	resolver := media.NewResolver("")
	p := &models.Property{
		Images: models.Collection{"/a/1.jpg", "/a/2.jpg", "/a/3.jpg"},
		Rooms: []*models.Room{
			{Images: models.Collection{"/a/4.jpg", "/a/5.jpg", "/a/6.jpg"}},
		},
	}

	hero := RenderHero(p, resolver, 120, Zones{})
	assert.Contains(t, hero, "Show all 6 photos")

	p.Rooms = nil
	assert.NotContains(t, RenderHero(p, resolver, 120, Zones{}), "Show all")
}

func TestThumbStripWindowKeepsActiveVisible(t *testing.T) {
	images := make(models.Collection, 30)
	for i := range images {
		images[i] = "/a/x.jpg"
	}

	strip := RenderThumbStrip(images, 25, 60, Zones{}, "thumb")
	assert.Contains(t, strip, "26")
	assert.Contains(t, strip, "‹")
	assert.NotContains(t, strings.Fields(strip), "1")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		focus, n, fit int
		start, end    int
	}{
		{0, 3, 10, 0, 3},
		{0, 20, 5, 0, 5},
		{10, 20, 5, 8, 13},
		{19, 20, 5, 15, 20},
	}

	for _, tt := range tests {
		start, end := window(tt.focus, tt.n, tt.fit)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestZeroZonesArePassthrough(t *testing.T) {
	var z Zones

	assert.Equal(t, "label", z.Mark("id", "label"))
	assert.False(t, z.Hit("id", tea.MouseMsg{}))
	assert.Equal(t, "view", z.Scan("view"))
	assert.Equal(t, z, z.WithPrefix())
}

func TestRenderHeader(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		info     HeaderInfo
		contains []string
		excludes []string
	}{
		{
			name:     "disconnected",
			width:    80,
			info:     HeaderInfo{},
			contains: []string{"HomeShowCase", "Disconnected"},
		},
		{
			name:     "loading",
			width:    80,
			info:     HeaderInfo{Host: "listing.local:8000", Loading: true},
			contains: []string{"↻ listing.local:8000"},
			excludes: []string{"Disconnected"},
		},
		{
			name:     "listing loaded",
			width:    100,
			info:     HeaderInfo{Address: "Nijlanstate 54", Price: 195000, Host: "demo.local"},
			contains: []string{"HomeShowCase · Nijlanstate 54", "€ 195.000", "● demo.local"},
		},
		{
			name:     "narrow drops price",
			width:    48,
			info:     HeaderInfo{Address: "Nijlanstate 54", Price: 195000, Host: "demo.local"},
			contains: []string{"Nijlanstate 54", "● demo.local"},
			excludes: []string{"195.000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHeader(tt.width, tt.info)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}
