package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/rogerio-castellano/pawelier/internal/models"
)

// NotificationStore keeps placed-order notifications keyed by order id.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[string]models.OrderNotification
	events        Publisher
}

func NewNotificationStore(events Publisher) *NotificationStore {
	return &NotificationStore{
		notifications: make(map[string]models.OrderNotification),
		events:        events,
	}
}

// AddNotification inserts n, replacing any notification with the same order id.
func (s *NotificationStore) AddNotification(n models.OrderNotification) {
	n.Products = slices.Clone(n.Products)

	s.mu.Lock()
	s.notifications[n.OrderID] = n
	s.mu.Unlock()

	e := newEvent(NotificationAdded)
	e.OrderID = n.OrderID
	publish(s.events, e)
}

func (s *NotificationStore) RemoveNotification(orderID string) {
	s.mu.Lock()
	_, ok := s.notifications[orderID]
	delete(s.notifications, orderID)
	s.mu.Unlock()

	if ok {
		e := newEvent(NotificationRemoved)
		e.OrderID = orderID
		publish(s.events, e)
	}
}

func (s *NotificationStore) ClearAllNotifications() {
	s.mu.Lock()
	clear(s.notifications)
	s.mu.Unlock()

	publish(s.events, newEvent(NotificationsCleared))
}

func (s *NotificationStore) Get(orderID string) (models.OrderNotification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notifications[orderID]
	return n, ok
}

func (s *NotificationStore) Contains(orderID string) bool {
	_, ok := s.Get(orderID)
	return ok
}

// Notifications returns a snapshot, newest first.
func (s *NotificationStore) Notifications() []models.OrderNotification {
	s.mu.RLock()
	out := make([]models.OrderNotification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, n)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.OrderNotification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.OrderID, a.OrderID)
	})
	return out
}

func (s *NotificationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notifications)
}
