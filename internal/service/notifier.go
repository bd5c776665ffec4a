package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 50
	subscriberBuffer         = 16
)

// Notifier keeps the most recent notifications and fans events out to
// subscribers. A subscriber that falls behind loses events instead of
// blocking the sender.
type Notifier struct {
	mu     sync.Mutex
	limit  int
	recent []Notification
	subs   map[chan Event]struct{}
	now    func() time.Time
}

// NewNotifier returns a notifier retaining up to limit notifications.
func NewNotifier(limit int) *Notifier {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return &Notifier{
		limit: limit,
		subs:  make(map[chan Event]struct{}),
		now:   time.Now,
	}
}

// Notify records a notification and broadcasts it.
func (n *Notifier) Notify(level, message string) Notification {
	note := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: n.now().UTC(),
	}

	n.mu.Lock()
	n.recent = append(n.recent, note)
	if over := len(n.recent) - n.limit; over > 0 {
		n.recent = append([]Notification(nil), n.recent[over:]...)
	}
	n.mu.Unlock()

	n.Publish(Event{Type: EventNotification, Notification: &note})
	return note
}

// Recent returns retained notifications, oldest first.
func (n *Notifier) Recent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.recent))
	copy(out, n.recent)
	return out
}

// Publish delivers ev to every subscriber that has room for it.
func (n *Notifier) Publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a new listener. The returned func unsubscribes and
// closes the channel; calling it more than once is safe.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
}
