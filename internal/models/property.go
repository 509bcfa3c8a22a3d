package models

import "sort"

// Property is the showcased listing together with its rooms
type Property struct {
	ID          int64    `json:"id"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zip_code"`
	Price       int64    `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Sqft        int      `json:"sqft"`
	YearBuilt   int      `json:"year_built"`
	LotSize     *float64 `json:"lot_size,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	// Property-level photos, shown before any room photo
	Images Collection `json:"images"`
	Rooms  []*Room    `json:"rooms,omitempty"`
}

// AllImages returns the property images followed by the images of every
// room, in room order. This is the gallery's collection.
func (p *Property) AllImages() Collection {
	rooms := make([]Collection, len(p.Rooms))
	for i, r := range p.Rooms {
		rooms[i] = r.Images
	}
	return Concat(p.Images, rooms...)
}

// HeroImages returns at most n images for the hero strip
func (p *Property) HeroImages(n int) Collection {
	all := p.AllImages()
	if len(all) > n {
		return all[:n]
	}
	return all
}

// RoomByID finds a room by ID
func (p *Property) RoomByID(id int64) *Room {
	for _, r := range p.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// SortRooms orders rooms by display order, keeping ties in their current order
func (p *Property) SortRooms() {
	sort.SliceStable(p.Rooms, func(i, j int) bool {
		return p.Rooms[i].DisplayOrder < p.Rooms[j].DisplayOrder
	})
}
