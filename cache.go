package signin

import (
	"sync"
	"time"
)

type toast struct {
	n         Notification
	expiresAt time.Time
}

// Toasts is an auto-dismissing Notifier: each notification is visible until
// its TTL runs out.
type Toasts struct {
	mu    sync.RWMutex
	items []toast
	now   func() time.Time
}

func NewToasts() *Toasts {
	return &Toasts{now: time.Now}
}

func (t *Toasts) Notify(n Notification) {
	if n.TTL <= 0 {
		n.TTL = DefaultNotificationTTL
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, toast{n: n, expiresAt: t.now().Add(n.TTL)})
}

// Current returns the newest notification that has not expired.
func (t *Toasts) Current() (Notification, bool) {
	now := t.now()
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := len(t.items) - 1; i >= 0; i-- {
		if t.items[i].expiresAt.After(now) {
			return t.items[i].n, true
		}
	}
	return Notification{}, false
}

// Purge drops expired notifications and returns how many remain.
func (t *Toasts) Purge() int {
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.items[:0]
	for _, it := range t.items {
		if it.expiresAt.After(now) {
			kept = append(kept, it)
		}
	}
	t.items = kept
	return len(kept)
}
