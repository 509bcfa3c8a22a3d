package models

// RoomType tags a room with its category. The set is open: values the
// client does not know are rendered like RoomLiving.
type RoomType string

const (
	RoomLiving   RoomType = "living"
	RoomBedroom  RoomType = "bedroom"
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomHallway  RoomType = "hallway"
	RoomBalcony  RoomType = "balcony"
	RoomStorage  RoomType = "storage"
)

// Room is a single room of the showcased property
type Room struct {
	// Unique identifier from the listing server
	ID int64 `json:"id"`
	// Owning property
	PropertyID int64 `json:"property_id"`
	// Display name, e.g. "Living Room"
	Name string `json:"name"`
	// Category tag
	Type RoomType `json:"room_type"`
	// Free-text description
	Description string `json:"description"`
	// Optional dimensions string, e.g. "6m x 5m"
	Dimensions string `json:"dimensions,omitempty"`
	// Ordered feature list
	Features []string `json:"features"`
	// Ordered room photos
	Images Collection `json:"images"`
	// Position in the room grid
	DisplayOrder int `json:"display_order"`
}

// Icon returns the glyph shown for a room type. Unknown types fall back to
// the living room glyph.
func (t RoomType) Icon() string {
	switch t {
	case RoomBedroom:
		return "☾"
	case RoomKitchen:
		return "♨"
	case RoomBathroom:
		return "≈"
	case RoomHallway:
		return "↔"
	case RoomBalcony:
		return "☀"
	case RoomStorage:
		return "▤"
	default:
		return "⌂"
	}
}

// Label returns a human readable name for the room type
func (t RoomType) Label() string {
	switch t {
	case RoomLiving, RoomBedroom, RoomKitchen, RoomBathroom, RoomHallway, RoomBalcony, RoomStorage:
		return string(t)
	default:
		return string(RoomLiving)
	}
}

// Thumbnail returns the first image of the room, if any
func (r *Room) Thumbnail() (ImageRef, bool) {
	if len(r.Images) == 0 {
		return "", false
	}
	return r.Images[0], true
}

// TopFeatures returns at most n features
func (r *Room) TopFeatures(n int) []string {
	if len(r.Features) <= n {
		return r.Features
	}
	return r.Features[:n]
}
