package store

import (
	"slices"
	"sync"

	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/shopspring/decimal"
)

// CartStore maps product id to a cart line. Lines always have quantity >= 1.
type CartStore struct {
	mu     sync.RWMutex
	lines  map[int]models.CartLine
	events Publisher
}

func NewCartStore(events Publisher) *CartStore {
	return &CartStore{
		lines:  make(map[int]models.CartLine),
		events: events,
	}
}

// AddToCart merges quantity into an existing line and overwrites its size,
// or creates a new line. A non-positive quantity never creates a line but
// still overwrites the size of an existing one.
func (s *CartStore) AddToCart(product models.Product, quantity int, size string) {
	if size == "" {
		size = models.DefaultSize
	}

	s.mu.Lock()
	line, exists := s.lines[product.ID]
	switch {
	case exists:
		line.Quantity += max(quantity, 0)
		line.Size = size
	case quantity > 0:
		line = models.CartLine{Product: product, Quantity: quantity, Size: size}
	default:
		s.mu.Unlock()
		return
	}
	s.lines[product.ID] = line
	s.mu.Unlock()

	e := newEvent(CartLineAdded)
	if exists {
		e.Kind = CartLineUpdated
	}
	e.ProductID = product.ID
	publish(s.events, e)
}

// UpdateQuantity replaces the quantity of an existing line. Zero or less removes it.
func (s *CartStore) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	line, ok := s.lines[productID]
	if ok {
		line.Quantity = quantity
		s.lines[productID] = line
	}
	s.mu.Unlock()

	if ok {
		e := newEvent(CartLineUpdated)
		e.ProductID = productID
		publish(s.events, e)
	}
}

func (s *CartStore) RemoveFromCart(productID int) {
	s.mu.Lock()
	_, ok := s.lines[productID]
	delete(s.lines, productID)
	s.mu.Unlock()

	if ok {
		e := newEvent(CartLineRemoved)
		e.ProductID = productID
		publish(s.events, e)
	}
}

func (s *CartStore) ClearCart() {
	s.Drain()
}

// Drain empties the cart and returns the removed lines ordered by product id.
// Lines added after Drain stay in the cart.
func (s *CartStore) Drain() []models.CartLine {
	s.mu.Lock()
	out := make([]models.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, l)
	}
	clear(s.lines)
	s.mu.Unlock()

	sortLines(out)
	publish(s.events, newEvent(CartCleared))
	return out
}

// Line returns the line for productID, if any.
func (s *CartStore) Line(productID int) (models.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lines[productID]
	return l, ok
}

// Lines returns a snapshot ordered by product id.
func (s *CartStore) Lines() []models.CartLine {
	s.mu.RLock()
	out := make([]models.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, l)
	}
	s.mu.RUnlock()

	sortLines(out)
	return out
}

func sortLines(lines []models.CartLine) {
	slices.SortFunc(lines, func(a, b models.CartLine) int { return a.Product.ID - b.Product.ID })
}

// Total sums unit price times quantity over all lines.
func (s *CartStore) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal().Value)
	}
	return total
}

// ItemCount sums quantities across all lines.
func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}
