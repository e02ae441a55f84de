// Package store holds the per-shopper in-memory state: cart, favorites and
// order notifications. Every mutation is published to the session's Broker.
package store

import "sync"

// Session groups the stores belonging to one shopper.
type Session struct {
	Events        *Broker
	Cart          *CartStore
	Favorites     *FavoritesStore
	Notifications *NotificationStore
}

func NewSession() *Session {
	b := NewBroker()
	return &Session{
		Events:        b,
		Cart:          NewCartStore(b),
		Favorites:     NewFavoritesStore(b),
		Notifications: NewNotificationStore(b),
	}
}

// Registry owns the sessions of all shoppers, keyed by user id.
type Registry struct {
	mu       sync.Mutex
	sessions map[int]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int]*Session)}
}

// Session returns the session for userID, creating it on first use.
func (r *Registry) Session(userID int) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		s = NewSession()
		r.sessions[userID] = s
	}
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
