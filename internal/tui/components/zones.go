package components

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones marks clickable regions in rendered output and hit-tests mouse
// events against them. The zero value has no manager: it renders output
// unchanged and never reports a hit.
type Zones struct {
	manager *zone.Manager
	prefix  string
}

// NewZones wraps a zone manager
func NewZones(m *zone.Manager) Zones {
	return Zones{manager: m}
}

// WithPrefix returns a copy whose IDs cannot collide with other components
func (z Zones) WithPrefix() Zones {
	if z.manager == nil {
		return z
	}
	z.prefix = z.manager.NewPrefix()
	return z
}

// Mark wraps s as the zone id
func (z Zones) Mark(id, s string) string {
	if z.manager == nil {
		return s
	}
	return z.manager.Mark(z.prefix+id, s)
}

// Hit reports whether the mouse event landed inside zone id
func (z Zones) Hit(id string, msg tea.MouseMsg) bool {
	if z.manager == nil {
		return false
	}
	return z.manager.Get(z.prefix + id).InBounds(msg)
}

// Scan records zone positions and strips the markers. Call it once on the
// final frame.
func (z Zones) Scan(s string) string {
	if z.manager == nil {
		return s
	}
	return z.manager.Scan(s)
}

// IsClick reports whether msg is a completed left click
func IsClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}
