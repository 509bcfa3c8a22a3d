package media

import (
	"log/slog"
	"sort"
	"sync"
)

// ScrollLock suppresses page scrolling while any overlay is open. Each
// overlay takes its own Lease; the page is locked while at least one lease
// is outstanding, so closing one of two stacked overlays keeps the lock.
type ScrollLock struct {
	leases map[uint64]string // lease id -> owner
	nextID uint64
	mu     sync.Mutex
}

// Lease is one overlay's hold on the scroll lock
type Lease struct {
	lock *ScrollLock
	id   uint64
	once sync.Once
}

// NewScrollLock creates an unlocked scroll lock
func NewScrollLock() *ScrollLock {
	return &ScrollLock{
		leases: make(map[uint64]string),
	}
}

// Acquire locks page scrolling on behalf of owner until the returned lease
// is released
func (l *ScrollLock) Acquire(owner string) *Lease {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.leases[id] = owner
	slog.Debug("scroll lock acquired", "owner", owner, "holders", len(l.leases))

	return &Lease{lock: l, id: id}
}

// Held reports whether page scrolling is currently locked
func (l *ScrollLock) Held() bool {
	return l.Count() > 0
}

// Count returns the number of outstanding leases
func (l *ScrollLock) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.leases)
}

// Owners returns the owners of outstanding leases in acquisition order
func (l *ScrollLock) Owners() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]uint64, 0, len(l.leases))
	for id := range l.leases {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	owners := make([]string, len(ids))
	for i, id := range ids {
		owners[i] = l.leases[id]
	}
	return owners
}

func (l *ScrollLock) release(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	owner := l.leases[id]
	delete(l.leases, id)
	slog.Debug("scroll lock released", "owner", owner, "holders", len(l.leases))
}

// Release gives the lease back. Releasing twice, or releasing a nil lease,
// is a no-op.
func (ls *Lease) Release() {
	if ls == nil || ls.lock == nil {
		return
	}
	ls.once.Do(func() {
		ls.lock.release(ls.id)
	})
}
