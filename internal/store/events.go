package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	CartLineAdded        EventKind = "cart.added"
	CartLineUpdated      EventKind = "cart.updated"
	CartLineRemoved      EventKind = "cart.removed"
	CartCleared          EventKind = "cart.cleared"
	FavoriteAdded        EventKind = "favorites.added"
	FavoriteRemoved      EventKind = "favorites.removed"
	NotificationAdded    EventKind = "notifications.added"
	NotificationRemoved  EventKind = "notifications.removed"
	NotificationsCleared EventKind = "notifications.cleared"
)

// Event describes one store mutation. ProductID or OrderID is set depending on Kind.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	ProductID int       `json:"product_id,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	At        time.Time `json:"at"`
}

func newEvent(kind EventKind) Event {
	return Event{ID: uuid.NewString(), Kind: kind, At: time.Now().UTC()}
}

// Publisher receives store change events.
type Publisher interface {
	Publish(Event)
}

// Broker fans events out to subscribers. Publish never blocks: a subscriber
// whose buffer is full misses the event.
type Broker struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel of events and a func that unsubscribes and closes it.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Broker) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribers reports the number of active subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func publish(p Publisher, e Event) {
	if p != nil {
		p.Publish(e)
	}
}
