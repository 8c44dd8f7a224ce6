package usecase

import (
	"sync"
	"time"

	"publicaya/internal/core/domain"
)

// Notification identifiers wrap at 2^53-1 so they survive a round-trip
// through JSON number types.
const maxNotificationID = 1<<53 - 1

// NotificationCenter holds the single visible user-facing status message.
// Posting a new notification evicts the previous one; each notification is
// removed after removeDelay unless dismissed earlier, in which case it is
// hidden first and removed when the timer fires. The center is constructed
// once per process and passed to consumers.
type NotificationCenter struct {
	mu          sync.Mutex
	nextID      int64
	removeDelay time.Duration
	current     []domain.Notification
	timers      map[int64]*time.Timer
}

// NewNotificationCenter creates a center whose notifications expire after
// removeDelay.
func NewNotificationCenter(removeDelay time.Duration) *NotificationCenter {
	return &NotificationCenter{
		removeDelay: removeDelay,
		timers:      make(map[int64]*time.Timer),
	}
}

// Notify posts a notification, evicting any older one, and schedules its
// removal. It returns the assigned identifier.
func (c *NotificationCenter) Notify(kind domain.NotificationKind, title, description string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID = (c.nextID + 1) % maxNotificationID
	id := c.nextID

	n := domain.Notification{
		ID:          id,
		Kind:        kind,
		Title:       title,
		Description: description,
		Open:        true,
	}
	// capacity 1: the newest notification replaces whatever is held
	c.current = []domain.Notification{n}

	c.timers[id] = time.AfterFunc(c.removeDelay, func() { c.remove(id) })
	return id
}

// Update replaces title and description of a live notification in place.
// Unknown identifiers are ignored.
func (c *NotificationCenter) Update(id int64, title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.current {
		if c.current[i].ID == id {
			c.current[i].Title = title
			c.current[i].Description = description
		}
	}
}

// Dismiss hides a notification. The removal timer still fires later and
// takes it out for good.
func (c *NotificationCenter) Dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.current {
		if c.current[i].ID == id {
			c.current[i].Open = false
		}
	}
}

// DismissAll hides every held notification.
func (c *NotificationCenter) DismissAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.current {
		c.current[i].Open = false
	}
}

// Snapshot returns a copy of the held notifications (at most one).
func (c *NotificationCenter) Snapshot() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.current))
	copy(out, c.current)
	return out
}

// Close stops all pending removal timers.
func (c *NotificationCenter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}

func (c *NotificationCenter) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.timers, id)
	kept := c.current[:0]
	for _, n := range c.current {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.current = kept
}
