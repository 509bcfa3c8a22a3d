package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProperty() *Property {
	return &Property{
		Images: Collection{"/src/assets/a.jpg", "/src/assets/b.jpg"},
		Rooms: []*Room{
			{ID: 1, Name: "Living Room", Type: RoomLiving, Images: Collection{"/src/assets/l1.jpg", "/src/assets/l2.jpg"}, DisplayOrder: 2},
			{ID: 2, Name: "Storage", Type: RoomStorage, DisplayOrder: 3},
			{ID: 3, Name: "Kitchen", Type: RoomKitchen, Images: Collection{"/src/assets/k1.jpg"}, DisplayOrder: 1},
		},
	}
}

func TestAllImagesOrder(t *testing.T) {
	p := sampleProperty()

	got := p.AllImages()

	assert.Equal(t, Collection{
		"/src/assets/a.jpg", "/src/assets/b.jpg",
		"/src/assets/l1.jpg", "/src/assets/l2.jpg",
		"/src/assets/k1.jpg",
	}, got)
}

func TestAllImagesDoesNotAlias(t *testing.T) {
	p := sampleProperty()

	got := p.AllImages()
	got[0] = "changed"

	assert.Equal(t, ImageRef("/src/assets/a.jpg"), p.Images[0])
}

func TestAllImagesEmpty(t *testing.T) {
	p := &Property{Rooms: []*Room{{ID: 1}, {ID: 2}}}

	assert.Empty(t, p.AllImages())
	assert.Equal(t, 0, p.AllImages().Len())
}

func TestHeroImages(t *testing.T) {
	p := sampleProperty()

	assert.Len(t, p.HeroImages(3), 3)
	assert.Len(t, p.HeroImages(10), 5)
}

func TestSortRooms(t *testing.T) {
	p := sampleProperty()
	p.SortRooms()

	names := []string{}
	for _, r := range p.Rooms {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Kitchen", "Living Room", "Storage"}, names)
}

func TestRoomByID(t *testing.T) {
	p := sampleProperty()

	assert.Equal(t, "Storage", p.RoomByID(2).Name)
	assert.Nil(t, p.RoomByID(42))
}

func TestRoomTypeIconFallback(t *testing.T) {
	assert.Equal(t, RoomLiving.Icon(), RoomType("sauna").Icon())
	assert.Equal(t, RoomLiving.Icon(), RoomType("").Icon())
	assert.NotEqual(t, RoomLiving.Icon(), RoomBedroom.Icon())
	assert.Equal(t, "living", RoomType("garage").Label())
	assert.Equal(t, "kitchen", RoomKitchen.Label())
}

func TestRoomThumbnail(t *testing.T) {
	p := sampleProperty()

	thumb, ok := p.Rooms[0].Thumbnail()
	assert.True(t, ok)
	assert.Equal(t, ImageRef("/src/assets/l1.jpg"), thumb)

	_, ok = p.Rooms[1].Thumbnail()
	assert.False(t, ok)
}

func TestCollectionAt(t *testing.T) {
	c := Collection{"a", "b"}

	assert.Equal(t, ImageRef("b"), c.At(1))
	assert.Equal(t, ImageRef(""), c.At(2))
	assert.Equal(t, ImageRef(""), c.At(-1))
}
