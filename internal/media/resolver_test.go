package media

import (
	"testing"

	"github.com/angristan/homeshowcase/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  models.ImageRef
		want string
	}{
		{"nested path", "/assets/", "/src/assets/846_2160.jpg", "/assets/846_2160.jpg"},
		{"bare filename", "/assets/", "house.jpg", "/assets/house.jpg"},
		{"default base", "", "/assets/living-room.jpg", "/assets/living-room.jpg"},
		{"base without slash", "http://10.0.0.5:8000/assets", "/x/y/z.png", "http://10.0.0.5:8000/assets/z.png"},
		{"empty reference", "/assets/", "", ""},
		{"trailing separator", "/assets/", "/src/assets/", ""},
		{"only separator", "/assets/", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.base)
			assert.Equal(t, tt.want, r.Resolve(tt.ref))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver("/assets/")
	ref := models.ImageRef("/src/assets/832_2160.jpg")

	assert.Equal(t, r.Resolve(ref), r.Resolve(ref))
}

func TestFilename(t *testing.T) {
	name, ok := Filename("/src/assets/860_2160.jpg")
	assert.True(t, ok)
	assert.Equal(t, "860_2160.jpg", name)

	_, ok = Filename("")
	assert.False(t, ok)
}
