package viewers

import (
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// GalleryKeyMap holds the property gallery bindings
type GalleryKeyMap struct {
	Close      key.Binding
	Next       key.Binding
	Prev       key.Binding
	ToggleMode key.Binding
	Activate   key.Binding
}

// DefaultGalleryKeyMap returns the gallery bindings
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ToggleMode, k.Activate, k.Close}
}

// FullHelp implements help.KeyMap
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// RoomKeyMap holds the room viewer bindings. Only Close is enabled unless
// arrow navigation is switched on.
type RoomKeyMap struct {
	Close key.Binding
	Next  key.Binding
	Prev  key.Binding
}

// DefaultRoomKeyMap returns the room viewer bindings
func DefaultRoomKeyMap(arrows bool) RoomKeyMap {
	k := RoomKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
	}
	k.Next.SetEnabled(arrows)
	k.Prev.SetEnabled(arrows)
	return k
}

// ShortHelp implements help.KeyMap
func (k RoomKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close}
}

// FullHelp implements help.KeyMap
func (k RoomKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.StyleHelpKey
	h.Styles.ShortDesc = styles.StyleTextDim
	h.Styles.ShortSeparator = styles.StyleTextDim
	return h
}
