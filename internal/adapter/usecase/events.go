package usecase

import (
	"sync"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// Broadcaster fans auth-state events out to subscribers. Registrations are
// explicit objects so a consumer can release its listener on teardown
// instead of leaking it across re-initializations.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]*subscription)}
}

type subscription struct {
	id   int
	ch   chan domain.AuthEvent
	b    *Broadcaster
	once sync.Once
}

func (s *subscription) C() <-chan domain.AuthEvent { return s.ch }

// Close releases the subscription and closes its channel. Safe to call
// more than once.
func (s *subscription) Close() {
	s.once.Do(func() {
		s.b.mu.Lock()
		delete(s.b.subs, s.id)
		s.b.mu.Unlock()
		close(s.ch)
	})
}

// Subscribe registers a new listener. The returned subscription must be
// closed when the consumer goes away.
func (b *Broadcaster) Subscribe() port.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	s := &subscription{id: b.nextID, ch: make(chan domain.AuthEvent, 8), b: b}
	b.subs[s.id] = s
	return s
}

// Publish delivers an event to every live subscriber. A subscriber that
// has fallen behind its buffer misses the event rather than blocking the
// publisher.
func (b *Broadcaster) Publish(ev domain.AuthEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		select {
		case s.ch <- ev:
		default:
		}
	}
}

// Len reports the number of live subscriptions.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
