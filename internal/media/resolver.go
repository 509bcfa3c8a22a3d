// Package media holds the pieces the media viewers share: image locator
// resolution, wrap-around navigation and the page scroll lock.
package media

import (
	"strings"

	"github.com/angristan/homeshowcase/internal/models"
)

// DefaultAssetBase is where the listing server publishes image files
const DefaultAssetBase = "/assets/"

// Resolver turns stored image references into displayable locators by
// rewriting their final path segment under Base.
type Resolver struct {
	Base string
}

// NewResolver returns a resolver rooted at base. An empty base uses
// DefaultAssetBase; a missing trailing slash is added.
func NewResolver(base string) Resolver {
	if base == "" {
		base = DefaultAssetBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Resolver{Base: base}
}

// Filename returns the final path segment of ref. ok is false when ref is
// empty or ends with a separator.
func Filename(ref models.ImageRef) (name string, ok bool) {
	s := string(ref)
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// Resolve returns the locator for ref, or "" when ref has no final segment
func (r Resolver) Resolve(ref models.ImageRef) string {
	name, ok := Filename(ref)
	if !ok {
		return ""
	}
	return r.Base + name
}
