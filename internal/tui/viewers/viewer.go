// Package viewers implements the two full-screen media overlays: the
// property gallery and the per-room photo viewer.
package viewers

import (
	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/tui/components"
)

// State is the lifecycle state of a viewer
type State int

const (
	StateClosed State = iota
	StateNoImages
	StateSingle
	StateGrid
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateNoImages:
		return "no images"
	case StateSingle:
		return "single"
	case StateGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Options configures a viewer when it is opened
type Options struct {
	// Lock is the page scroll lock. The viewer holds a lease on it from
	// construction until it closes. Nil disables locking.
	Lock     *media.ScrollLock
	Resolver media.Resolver
	Zones    components.Zones
	// RoomArrowKeys enables left/right in the room viewer
	RoomArrowKeys bool
	Width         int
	Height        int
}

func acquire(lock *media.ScrollLock, owner string) *media.Lease {
	if lock == nil {
		return nil
	}
	return lock.Acquire(owner)
}

// imageHeight gives the image whatever the surrounding chrome leaves over
func imageHeight(total, reserved int) int {
	return max(total-reserved, 5)
}
